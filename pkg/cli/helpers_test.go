/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCommands_RejectUnknownFormat(t *testing.T) {
	for _, cmdName := range []string{"check", "paths"} {
		for _, format := range []string{"xml", "csv", "toml", ""} {
			t.Run(cmdName+"_"+format, func(t *testing.T) {
				out := filepath.Join(t.TempDir(), "out")
				_, err := runRoot(t, "--no-fetch", cmdName, "--format", format, "--output", out)
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown output format")

				// Nothing is written when the format is refused.
				_, statErr := os.Stat(out)
				assert.True(t, os.IsNotExist(statErr))
			})
		}
	}
}

func TestPathsCommand_Formats(t *testing.T) {
	tests := []struct {
		format string
		want   []string
	}{
		{"yaml", []string{"kind: ProductPaths", "platform: "}},
		{"json", []string{`"kind": "ProductPaths"`, `"platform": `}},
		{"table", []string{"FIELD", "kind", "ProductPaths", "platform"}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			out := filepath.Join(t.TempDir(), "paths."+tt.format)

			_, err := runRoot(t,
				"--config", filepath.Join(t.TempDir(), "absent.ini"),
				"paths", "--format", tt.format, "--output", out)
			require.NoError(t, err)

			data, err := os.ReadFile(out)
			require.NoError(t, err)
			for _, s := range tt.want {
				assert.Contains(t, string(data), s)
			}
		})
	}
}

func TestCheckCommand_OutputFileAlsoPrintsMessages(t *testing.T) {
	requireNoCursorInstall(t)

	out := filepath.Join(t.TempDir(), "plan.yaml")
	console, err := runRoot(t, "--no-fetch", "--no-color", "--lang", "en",
		"check", "--output", out)
	require.Error(t, err)
	assert.Contains(t, console, "product.json not found in common Linux paths")

	data, rerr := os.ReadFile(out)
	require.NoError(t, rerr)
	assert.Contains(t, string(data), "kind: BypassPlan")
	assert.Contains(t, string(data), "bypass.product_json_not_found")
}
