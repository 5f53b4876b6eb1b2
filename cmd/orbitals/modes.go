// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/orbitals/projection"
)

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List visualization modes and suggested colormaps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, m := range projection.Modes() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", m, m.Advice()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
