// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/orbitals/orbital"
)

// cloudExport is the JSON layout written by sample --out.
type cloudExport struct {
	RunID          string    `json:"run_id"`
	N              int       `json:"n"`
	L              int       `json:"l"`
	M              int       `json:"m"`
	Mode           string    `json:"mode"`
	BoxSize        float64   `json:"box_size"`
	AcceptanceRate float64   `json:"acceptance_rate"`
	Positions      []float64 `json:"positions"`
	Values         []float64 `json:"values"`
	Phases         []float64 `json:"phases,omitempty"`
}

type sampleFlags struct {
	n, l, m  int
	mode     string
	points   int
	exponent float64
	seed     int64
	out      string
}

func newSampleCmd(a *app) *cobra.Command {
	var f sampleFlags
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate one point cloud",
		Long: `Generates one point cloud for the configured orbital.

Without --out a one-line summary is printed. With --out the cloud is
written as JSON with flat positions (x,y,z per point) and values
(one scalar per point); "-" writes to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSample(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&f.n, "n", 0, "Principal quantum number (1-20)")
	fl.IntVar(&f.l, "l", 0, "Angular quantum number (0..n-1)")
	fl.IntVar(&f.m, "m", 0, "Magnetic quantum number (-l..l)")
	fl.StringVar(&f.mode, "mode", "", "Visualization mode")
	fl.IntVar(&f.points, "points", 0, "Number of points")
	fl.Float64Var(&f.exponent, "exponent", 0, "Number of points as 10^exponent (at least 10000)")
	fl.Int64Var(&f.seed, "seed", 0, "Random seed")
	fl.StringVarP(&f.out, "out", "o", "", "Write the cloud as JSON to this file")
	cmd.MarkFlagsMutuallyExclusive("points", "exponent")
	return cmd
}

func (a *app) runSample(cmd *cobra.Command, f sampleFlags) error {
	fl := cmd.Flags()
	state := a.cfg.State()
	if fl.Changed("n") {
		state.N = f.n
	}
	if fl.Changed("l") {
		state.L = f.l
	}
	if fl.Changed("m") {
		state.M = f.m
	}
	mode := a.cfg.Orbital.Mode
	if fl.Changed("mode") {
		mode = f.mode
	}
	points := a.cfg.Sampling.Points
	switch {
	case fl.Changed("exponent"):
		points = orbital.SampleSize(f.exponent)
	case fl.Changed("points"):
		points = f.points
	}
	seed := a.cfg.Sampling.Seed
	if fl.Changed("seed") {
		seed = f.seed
	}

	runID := uuid.NewString()
	logger := a.logger.With(zap.String("run_id", runID))

	calc := orbital.New(
		orbital.WithSeed(seed),
		orbital.WithLogger(logger),
		orbital.WithState(state.N, state.L, state.M),
	)
	if !calc.SetVisualizationMode(mode) {
		return fmt.Errorf("unknown mode %q", mode)
	}
	res, err := calc.CalculatePointCloud(points)
	if err != nil {
		return err
	}

	got := calc.State()
	if f.out == "" {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %v mode=%s points=%d box=%g acceptance=%.3f\n",
			runID, got, calc.Mode(), len(res.Values), res.BoxSize, res.AcceptanceRate)
		return err
	}

	export := cloudExport{
		RunID:          runID,
		N:              got.N,
		L:              got.L,
		M:              got.M,
		Mode:           calc.Mode().String(),
		BoxSize:        res.BoxSize,
		AcceptanceRate: res.AcceptanceRate,
		Positions:      res.Positions,
		Values:         res.Values,
		Phases:         calc.PhaseValues(),
	}
	if f.out == "-" {
		return writeJSON(cmd.OutOrStdout(), export)
	}

	file, err := os.Create(f.out)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := writeJSON(file, export); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	logger.Info("cloud written", zap.String("path", f.out), zap.Int("points", len(res.Values)))
	return nil
}

func writeJSON(w io.Writer, v any) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("failed to encode cloud: %w", err)
	}
	return nil
}
