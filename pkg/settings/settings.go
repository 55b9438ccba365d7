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

package settings

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/NVIDIA/version-bypass/pkg/defaults"
	cerrors "github.com/NVIDIA/version-bypass/pkg/errors"
)

// Section and key names of the path overrides read from config.ini.
const (
	SectionWindowsPaths = "WindowsPaths"
	KeyCursorPath       = "cursor_path"

	SectionMacPaths    = "MacPaths"
	KeyProductJSONPath = "product_json_path"
)

// Settings is a read-only view of persisted key/value sections.
type Settings interface {
	// Lookup returns the value of key in section and whether it was present.
	Lookup(section, key string) (string, bool)
}

// Static is a map-backed Settings keyed by section, then key.
type Static map[string]map[string]string

// Lookup implements Settings.
func (s Static) Lookup(section, key string) (string, bool) {
	sec, ok := s[section]
	if !ok {
		return "", false
	}
	v, ok := sec[key]
	return v, ok
}

// Empty returns Settings with no values.
func Empty() Settings {
	return Static{}
}

// File is Settings loaded from an INI file.
type File struct {
	path string
	cfg  *ini.File
}

// Path returns the file the settings were loaded from.
func (f *File) Path() string {
	return f.path
}

// Lookup implements Settings.
func (f *File) Lookup(section, key string) (string, bool) {
	if f == nil || f.cfg == nil {
		return "", false
	}
	sec, err := f.cfg.GetSection(section)
	if err != nil {
		return "", false
	}
	if !sec.HasKey(key) {
		return "", false
	}
	return sec.Key(key).String(), true
}

// Load reads the INI file at path.
// A missing file yields empty settings; an unreadable or malformed file is an error.
func Load(path string) (Settings, error) {
	if strings.TrimSpace(path) == "" {
		return Empty(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Debug("settings file not found, using defaults", "path", path)
		return Empty(), nil
	}

	// Option names are case-insensitive, section names are not.
	cfg, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:     true,
		IgnoreInlineComment: true,
	}, path)
	if err != nil {
		return nil, cerrors.WrapWithContext(cerrors.ErrCodeInvalidRequest,
			"failed to load settings", err, map[string]any{"path": path})
	}

	slog.Debug("settings loaded", "path", path, "sections", len(cfg.Sections()))
	return &File{path: path, cfg: cfg}, nil
}

// DocumentsDir returns the current user's Documents folder.
func DocumentsDir() (string, error) {
	if runtime.GOOS == "windows" {
		if profile := os.Getenv("USERPROFILE"); profile != "" {
			return filepath.Join(profile, "Documents"), nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, "Documents"), nil
}

// DefaultPath returns <Documents>/.cursor-free-vip/config.ini.
func DefaultPath() (string, error) {
	docs, err := DocumentsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(docs, defaults.SettingsDirName, defaults.SettingsFileName), nil
}
