/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	cerrors "github.com/NVIDIA/version-bypass/pkg/errors"
	"github.com/NVIDIA/version-bypass/pkg/header"
	"github.com/NVIDIA/version-bypass/pkg/serializer"
)

type candidate struct {
	Path   string `json:"path" yaml:"path"`
	Exists bool   `json:"exists" yaml:"exists"`
}

type pathsReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Platform   string            `json:"platform" yaml:"platform"`
	Resolved   string            `json:"resolved,omitempty" yaml:"resolved,omitempty"`
	ErrorCode  cerrors.ErrorCode `json:"errorCode,omitempty" yaml:"errorCode,omitempty"`
	Error      string            `json:"error,omitempty" yaml:"error,omitempty"`
	Candidates []candidate       `json:"candidates,omitempty" yaml:"candidates,omitempty"`
}

func pathsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "paths",
		EnableShellCompletion: true,
		Usage:                 "Show where product.json is looked for on this platform",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			resolver, err := newResolver(cmd)
			if err != nil {
				return err
			}

			out := pathsReport{
				Header:   header.New(header.KindPaths, version),
				Platform: resolver.Platform().String(),
			}
			if p, err := resolver.Resolve(); err != nil {
				out.ErrorCode = cerrors.CodeOf(err)
				out.Error = err.Error()
			} else {
				out.Resolved = p
			}

			if cands, err := resolver.Candidates(); err == nil {
				for _, c := range cands {
					_, statErr := os.Stat(c)
					out.Candidates = append(out.Candidates, candidate{Path: c, Exists: statErr == nil})
				}
			}

			w, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			if err != nil {
				return err
			}
			defer w.Close()
			return w.Serialize(ctx, out)
		},
	}
}
