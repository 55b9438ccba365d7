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
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/term"
)

// EnvNoColor disables colour output when set to any non-empty value.
const EnvNoColor = "NO_COLOR"

const (
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorReset  = "\033[0m"
)

var levelIcons = map[Level]string{
	LevelInfo:    "ℹ️",
	LevelSuccess: "✅",
	LevelWarning: "⚠️",
	LevelError:   "❌",
}

// keyIcons override the level icon for specific events.
var keyIcons = map[string]string{
	"bypass.downloading_version_info": "📥",
	"bypass.found_product_json":       "📄",
	"bypass.current_version":          "🏷️",
	"bypass.backup_created":           "💾",
	"bypass.update_required":          "🔄",
}

var levelColors = map[Level]string{
	LevelInfo:    colorCyan,
	LevelSuccess: colorGreen,
	LevelWarning: colorYellow,
	LevelError:   colorRed,
}

// Icon returns the emoji shown in front of an event.
func Icon(level Level, key string) string {
	if icon, ok := keyIcons[key]; ok {
		return icon
	}
	return levelIcons[level]
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithColor forces colour on or off.
func WithColor(enabled bool) ConsoleOption {
	return func(c *Console) {
		c.color = enabled
	}
}

// WithLogger sets the logger events are mirrored to. Nil disables mirroring.
func WithLogger(logger *slog.Logger) ConsoleOption {
	return func(c *Console) {
		c.logger = logger
	}
}

// WithFormatter sets the message formatter.
func WithFormatter(f *Formatter) ConsoleOption {
	return func(c *Console) {
		if f != nil {
			c.formatter = f
		}
	}
}

// Console writes one line per event to a writer and mirrors the event to slog.
type Console struct {
	mu        sync.Mutex
	out       io.Writer
	formatter *Formatter
	color     bool
	logger    *slog.Logger
}

// NewConsole creates a Console writing to out (os.Stdout when nil).
// Colour is enabled only when out is a terminal and NO_COLOR is unset.
func NewConsole(out io.Writer, opts ...ConsoleOption) *Console {
	if out == nil {
		out = os.Stdout
	}
	c := &Console{
		out:       out,
		formatter: NewFormatter(nil),
		color:     isTerminal(out) && os.Getenv(EnvNoColor) == "",
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Report implements Reporter.
func (c *Console) Report(level Level, key string, params Params) string {
	text := c.formatter.Format(key, params)
	line := Icon(level, key) + " " + text

	c.mu.Lock()
	if c.color {
		line = levelColors[level] + line + colorReset
	}
	_, _ = fmt.Fprintln(c.out, line)
	c.mu.Unlock()

	if c.logger != nil {
		args := append([]any{"key", key, "severity", level.String()}, params.attrs()...)
		c.logger.Log(context.Background(), level.slogLevel(), text, args...)
	}
	return text
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
