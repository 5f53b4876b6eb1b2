// SPDX-License-Identifier: MIT

// Command orbitals samples hydrogen-like orbitals from the command line.
//
//	orbitals sample --n 3 --l 2 --m 1 --mode complex --exponent 5 --out cloud.json
//	orbitals batch --orbital 1,0,0 --orbital 2,1,1 --workers 4
//	orbitals walk --from 2,1,1 --steps 5
//	orbitals modes
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/orbitals/config"
	"github.com/katalvlaran/orbitals/orbital"
)

const defaultConfigPath = "orbitals.yaml"

// app carries the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "orbitals",
		Short: "Sample hydrogen-like orbitals as point clouds",
		Long: `orbitals draws Metropolis–Hastings point clouds from |ψ_nlm|² and
projects every point to a display scalar (real, imaginary, modulus,
density, phase or complex).

Settings come from a YAML file, ORBITALS_* environment variables and
flags, in increasing precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", defaultConfigPath, "Path to the YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newSampleCmd(a),
		newBatchCmd(a),
		newWalkCmd(a),
		newModesCmd(),
	)
	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = cfg.Logging.Encoding
	zcfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel())
	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	a.logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// parseTriple reads "n,l,m".
func parseTriple(s string) (orbital.State, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return orbital.State{}, fmt.Errorf("orbital %q: want n,l,m", s)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return orbital.State{}, fmt.Errorf("orbital %q: %w", s, err)
		}
		v[i] = n
	}
	return orbital.State{N: v[0], L: v[1], M: v[2]}, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func main() {
	_ = godotenv.Load(".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
