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

// Package report turns progress and outcome events into user-facing text.
//
// Every event is a level, a dotted message key such as "bypass.starting" and
// named parameters. A Formatter resolves the key through an optional localized
// Provider, then the built-in English templates, then the key itself, and
// substitutes {name} placeholders:
//
//	cat, _ := report.LoadCatalog("zh_CN.UTF-8")
//	console := report.NewConsole(os.Stdout, report.WithFormatter(report.NewFormatter(cat)))
//	console.Report(report.LevelSuccess, "bypass.version_updated", report.Params{"old": "1.0.0", "new": "1.5.4"})
//
// Console prints emoji-prefixed lines, coloured only on a terminal, and mirrors
// each event to slog. Recorder keeps events in memory.
package report
