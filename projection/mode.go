// SPDX-License-Identifier: MIT

package projection

// Mode selects the scalar derived from each sample.
type Mode int

const (
	// Modulus shows |ψ|.
	Modulus Mode = iota
	// Real shows Re ψ.
	Real
	// Imaginary shows Im ψ.
	Imaginary
	// Density shows |ψ|².
	Density
	// Phase shows arg ψ.
	Phase
	// Complex shows |ψ| as brightness and arg ψ as hue.
	Complex
)

// DefaultMode is the mode a fresh calculator starts in.
const DefaultMode = Modulus

var modeNames = [...]string{
	Modulus:   "modulus",
	Real:      "real",
	Imaginary: "imaginary",
	Density:   "density",
	Phase:     "phase",
	Complex:   "complex",
}

var modeAdvice = [...]string{
	Real:      "Real and imaginary parts change sign: use a divergent colormap such as coolwarm or turbo.",
	Imaginary: "Real and imaginary parts change sign: use a divergent colormap such as coolwarm or turbo.",
	Modulus:   "Modulus is non-negative: use a sequential colormap such as inferno.",
	Density:   "Probability density is non-negative: use a sequential colormap such as viridis or parula.",
	Phase:     "Phase is cyclic: use a cyclic colormap such as HSL or twilight.",
	Complex:   "Complex values: map phase to hue (HSL) and modulus to brightness.",
}

// String returns the mode's name, or "" for an unknown value.
func (m Mode) String() string {
	if !m.valid() {
		return ""
	}
	return modeNames[m]
}

// Advice describes the colormap family suited to the mode.
func (m Mode) Advice() string {
	if !m.valid() {
		return ""
	}
	return modeAdvice[m]
}

func (m Mode) valid() bool {
	return m >= Modulus && m <= Complex
}

// ParseMode maps one of real, imaginary, modulus, density, phase, complex to a Mode.
func ParseMode(name string) (Mode, bool) {
	for m, n := range modeNames {
		if n == name {
			return Mode(m), true
		}
	}
	return DefaultMode, false
}

// Modes lists every mode in declaration order.
func Modes() []Mode {
	return []Mode{Modulus, Real, Imaginary, Density, Phase, Complex}
}
