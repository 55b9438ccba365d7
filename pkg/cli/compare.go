/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	ver "github.com/NVIDIA/version-bypass/pkg/version"
)

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Compare two dotted versions and print -1, 0 or 1",
		ArgsUsage: "A B",
		Description: `Compares A with B segment by segment, padding the shorter version
with zeros, so 1.5 and 1.5.0 are equal.

Examples:
  bypass compare 1.5 1.5.1   # -1
  bypass compare 2.0.0 1.9.9 # 1`,
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				return fmt.Errorf("compare requires exactly two versions, got %d", cmd.NArg())
			}
			c, err := ver.Compare(cmd.Args().Get(0), cmd.Args().Get(1))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.Root().Writer, c)
			return err
		},
	}
}
