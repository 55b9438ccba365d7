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
	"regexp"
)

// Provider supplies localized templates by flattened key.
type Provider interface {
	Lookup(key string) (string, bool)
}

var placeholder = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// defaultTemplates are the English messages used when no provider knows a key.
var defaultTemplates = map[string]string{
	"bypass.starting":                 "Starting Cursor version bypass...",
	"bypass.downloading_version_info": "Downloading version information...",
	"bypass.latest_version_found":     "Latest version found: {version}",
	"bypass.no_versions_found":        "No versions found in the version history",
	"bypass.version_fetch_failed":     "Failed to fetch latest version: {error}",
	"bypass.localappdata_not_found":   "LOCALAPPDATA environment variable not found",
	"bypass.product_json_not_found":   "product.json not found in common Linux paths",
	"bypass.unsupported_os":           "Unsupported operating system: {system}",
	"bypass.file_not_found":           "File not found: {path}",
	"bypass.found_product_json":       "Found product.json: {path}",
	"bypass.no_write_permission":      "No write permission for file: {path}",
	"bypass.read_failed":              "Failed to read product.json: {error}",
	"bypass.current_version":          "Current version: {version}",
	"bypass.backup_created":           "Backup created: {path}",
	"bypass.backup_failed":            "Failed to create backup: {error}",
	"bypass.version_updated":          "Version updated from {old} to {new}",
	"bypass.write_failed":             "Failed to write product.json: {error}",
	"bypass.already_latest":           "Already at latest version: {version}",
	"bypass.no_update_needed":         "No update needed. Current version {version} is already >= {floor}",
	"bypass.update_required":          "Update required: {current} -> {target}",
	"bypass.bypass_failed":            "Version bypass failed: {error}",
}

// Formatter resolves message keys to display text.
type Formatter struct {
	provider Provider
}

// NewFormatter returns a Formatter backed by provider. A nil provider uses
// the built-in English templates only.
func NewFormatter(provider Provider) *Formatter {
	return &Formatter{provider: provider}
}

// Template returns the raw template for key: provider first, then the
// English defaults, then the key itself.
func (f *Formatter) Template(key string) string {
	if f != nil && f.provider != nil {
		if tmpl, ok := f.provider.Lookup(key); ok && tmpl != "" {
			return tmpl
		}
	}
	if tmpl, ok := defaultTemplates[key]; ok {
		return tmpl
	}
	return key
}

// Format renders key with params. Placeholders without a matching param are
// left as written.
func (f *Formatter) Format(key string, params Params) string {
	return expand(f.Template(key), params)
}

func expand(tmpl string, params Params) string {
	if len(params) == 0 {
		return tmpl
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		name := m[1 : len(m)-1]
		v, ok := params[name]
		if !ok {
			return m
		}
		return fmt.Sprint(v)
	})
}

// Keys returns every key with a built-in English template.
func Keys() []string {
	keys := make([]string, 0, len(defaultTemplates))
	for k := range defaultTemplates {
		keys = append(keys, k)
	}
	return keys
}
