/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

func runCmd() *cli.Command {
	return &cli.Command{
		Name:                  "run",
		EnableShellCompletion: true,
		Usage:                 "Update the version recorded in product.json (default command)",
		Description: `Runs the version bypass:
  1. Fetch the latest published version (skipped with --no-fetch or --hint)
  2. Locate product.json for this platform, honouring config.ini overrides
  3. Update the version when it is below 1.5.4 or differs from the latest
  4. Back up product.json to product.json.<YYYYMMDDHHMMSS> before writing

Exits with status 1 when the run fails.`,
		Action: runAction,
	}
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	op, err := newOperation(cmd, newConsole(cmd))
	if err != nil {
		return err
	}

	ok := op.Run(ctx)
	writeMetrics(cmd)

	if !ok {
		return ErrBypassFailed
	}
	return nil
}
