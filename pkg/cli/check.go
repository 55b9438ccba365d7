/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/version-bypass/pkg/bypass"
	"github.com/NVIDIA/version-bypass/pkg/header"
	"github.com/NVIDIA/version-bypass/pkg/report"
	"github.com/NVIDIA/version-bypass/pkg/serializer"
)

// checkReport is the document printed by the check command.
type checkReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Plan   *bypass.Result `json:"plan" yaml:"plan"`
	Events []report.Event `json:"events,omitempty" yaml:"events,omitempty"`
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Show what a run would do without changing anything",
		Description: `Evaluates the update decision and prints it, together with the
messages a run would have shown. product.json is read but never written.
When --output names a file, the messages are also shown on the console.

Examples:
  bypass check --format json
  bypass check --no-fetch --format table`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			rec := report.NewRecorder(newFormatter(cmd))

			// With a file destination stdout is free, so messages go to the console too.
			var rep report.Reporter = rec
			if strings.TrimSpace(cmd.String("output")) != "" {
				rep = report.Tee(rec, newConsole(cmd))
			}

			op, err := newOperation(cmd, rep)
			if err != nil {
				return err
			}

			res, planErr := op.Plan(ctx)

			w, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			if err != nil {
				return err
			}
			defer w.Close()

			out := checkReport{
				Header: header.New(header.KindPlan, version),
				Plan:   res,
				Events: rec.Events(),
			}
			if err := w.Serialize(ctx, out); err != nil {
				return fmt.Errorf("failed to write plan: %w", err)
			}
			return planErr
		},
	}
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", outFormat)
	}
	return outFormat, nil
}
