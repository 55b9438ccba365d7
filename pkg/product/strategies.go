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

package product

import (
	"path/filepath"

	cerrors "github.com/NVIDIA/version-bypass/pkg/errors"
	"github.com/NVIDIA/version-bypass/pkg/settings"
)

const envLocalAppData = "LOCALAPPDATA"

var (
	macDefaultPath = "/Applications/Cursor.app/Contents/Resources/app/product.json"

	linuxPaths = []string{
		"/opt/Cursor/resources/app/product.json",
		"/usr/share/cursor/resources/app/product.json",
		"/usr/lib/cursor/app/product.json",
	}

	// relative to the home directory of an extracted AppImage
	linuxAppImagePath = filepath.Join("squashfs-root", "usr", "share", "cursor", "resources", "app", FileName)
)

// windowsStrategy: %LOCALAPPDATA%\Programs\Cursor\resources\app\product.json,
// or <WindowsPaths.cursor_path>\product.json.
type windowsStrategy struct{}

func (windowsStrategy) pick(e env) (string, error) {
	localAppData, ok := e.getenv(envLocalAppData)
	if !ok || localAppData == "" {
		return "", cerrors.NewWithContext(cerrors.ErrCodeEnvVarMissing,
			"LOCALAPPDATA environment variable not found",
			map[string]any{"variable": envLocalAppData})
	}

	if dir, ok := e.settings.Lookup(settings.SectionWindowsPaths, settings.KeyCursorPath); ok && dir != "" {
		return filepath.Join(dir, FileName), nil
	}
	return filepath.Join(localAppData, "Programs", "Cursor", "resources", "app", FileName), nil
}

func (w windowsStrategy) candidates(e env) ([]string, error) {
	p, err := w.pick(e)
	if err != nil {
		return nil, err
	}
	return []string{p}, nil
}

// macStrategy: the bundle path, or MacPaths.product_json_path verbatim.
type macStrategy struct{}

func (macStrategy) pick(e env) (string, error) {
	if p, ok := e.settings.Lookup(settings.SectionMacPaths, settings.KeyProductJSONPath); ok && p != "" {
		return p, nil
	}
	return macDefaultPath, nil
}

func (m macStrategy) candidates(e env) ([]string, error) {
	p, err := m.pick(e)
	if err != nil {
		return nil, err
	}
	return []string{p}, nil
}

// linuxStrategy: first existing path among the package install locations and
// an extracted AppImage under the home directory.
type linuxStrategy struct{}

func (linuxStrategy) candidates(e env) ([]string, error) {
	out := make([]string, 0, len(linuxPaths)+1)
	out = append(out, linuxPaths...)

	if home, err := e.homeDir(); err == nil && home != "" {
		extracted := filepath.Join(home, linuxAppImagePath)
		if e.exists(extracted) {
			out = append(out, extracted)
		}
	}
	return out, nil
}

func (l linuxStrategy) pick(e env) (string, error) {
	paths, err := l.candidates(e)
	if err != nil {
		return "", err
	}
	for _, p := range paths {
		if e.exists(p) {
			return p, nil
		}
	}
	return "", cerrors.NewWithContext(cerrors.ErrCodeFileNotFound,
		"product.json not found in common Linux paths",
		map[string]any{"candidates": paths})
}
