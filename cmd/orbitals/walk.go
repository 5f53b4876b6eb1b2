// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/orbitals/orbital"
)

func newWalkCmd(a *app) *cobra.Command {
	var (
		from    string
		steps   int
		reverse bool
		maxN    int
	)
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Step through orbitals in (n, l, m) order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state := a.cfg.State()
			if from != "" {
				st, err := parseTriple(from)
				if err != nil {
					return err
				}
				state = orbital.Clamp(st.N, st.L, st.M)
			}
			if steps < 0 {
				return fmt.Errorf("steps must not be negative, got %d", steps)
			}

			w := cmd.OutOrStdout()
			for i := 0; i < steps; i++ {
				if reverse {
					state = state.Prev(maxN)
				} else {
					state = state.Next(maxN)
				}
				if _, err := fmt.Fprintln(w, state); err != nil {
					return err
				}
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&from, "from", "", "Starting orbital as n,l,m (default: configured orbital)")
	fl.IntVar(&steps, "steps", 1, "Number of steps")
	fl.BoolVar(&reverse, "reverse", false, "Walk backwards")
	fl.IntVar(&maxN, "max-n", orbital.MaxN, "Largest n before wrapping to 1")
	return cmd
}
