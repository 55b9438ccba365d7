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

// Package bypass rewrites the version recorded in Cursor's product.json.
//
// A run looks up the latest published version (the hint), locates
// product.json, and updates its version field when the current value is below
// defaults.FloorVersion or differs from the hint. Before any mutation the
// original file is copied byte for byte to product.json.<YYYYMMDDHHMMSS> and
// the copy is verified; the new document is then written through a temporary
// file and a rename.
//
// Run never returns an error. Every failure is reported through a
// report.Reporter and turned into false:
//
//	op := bypass.New(
//	    bypass.WithHintSource(manifest.NewClient()),
//	    bypass.WithReporter(report.NewConsole(os.Stdout)),
//	)
//	if !op.Run(ctx) {
//	    os.Exit(1)
//	}
//
// Plan evaluates the same decision without writing anything.
package bypass
