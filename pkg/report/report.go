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

package report

import (
	"fmt"
	"log/slog"
	"sort"
	"time"
)

// Level is the severity of a reported event.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// slogLevel maps a report level onto the structured log level used when
// events are mirrored. Progress chatter stays at debug.
func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

// Params carries the named values substituted into a message template.
type Params map[string]any

// attrs returns params as sorted slog attributes.
func (p Params) attrs() []any {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, slog.Any(k, p[k]))
	}
	return out
}

// Reporter receives progress and outcome events. It returns the text that
// was displayed and never influences control flow.
type Reporter interface {
	Report(level Level, key string, params Params) string
}

// Event is a single reported message.
type Event struct {
	Time   time.Time `json:"time" yaml:"time"`
	Level  string    `json:"level" yaml:"level"`
	Key    string    `json:"key" yaml:"key"`
	Text   string    `json:"text" yaml:"text"`
	Params Params    `json:"params,omitempty" yaml:"params,omitempty"`
}

// Discard is a Reporter that formats and drops every event.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Report(_ Level, key string, params Params) string {
	return NewFormatter(nil).Format(key, params)
}
