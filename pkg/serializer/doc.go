// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package serializer writes run results in multiple output formats.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, two-space indented
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - One FIELD/VALUE row per leaf, keyed by the dotted JSON field path
//   - Fields tagged omitempty are skipped when zero
//   - Write-only
//
// # Usage
//
// Write to a file, or to stdout when the path is blank:
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, outputPath)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//	    return err
//	}
//
// Unknown formats fall back to JSON with a warning.
package serializer
