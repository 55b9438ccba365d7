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
	"fmt"
	"log/slog"
	"os"
	"runtime"

	cerrors "github.com/NVIDIA/version-bypass/pkg/errors"
	"github.com/NVIDIA/version-bypass/pkg/settings"
)

// FileName is the name of the descriptor the resolver looks for.
const FileName = "product.json"

// Platform identifies the operating system family a path strategy targets.
type Platform string

const (
	PlatformWindows Platform = "windows"
	PlatformMacOS   Platform = "darwin"
	PlatformLinux   Platform = "linux"
)

// String returns the platform identifier.
func (p Platform) String() string {
	return string(p)
}

// IsSupported reports whether a path strategy exists for p.
func (p Platform) IsSupported() bool {
	_, ok := strategies[p]
	return ok
}

// CurrentPlatform returns the platform of the running process.
func CurrentPlatform() Platform {
	return Platform(runtime.GOOS)
}

// SupportedPlatforms returns the identifiers that have a path strategy.
func SupportedPlatforms() []string {
	return []string{
		string(PlatformWindows),
		string(PlatformMacOS),
		string(PlatformLinux),
	}
}

// env is the host surface a strategy may consult.
type env struct {
	getenv   func(string) (string, bool)
	homeDir  func() (string, error)
	exists   func(string) bool
	settings settings.Settings
}

// strategy produces the single candidate path for one platform.
type strategy interface {
	// candidates lists every location the strategy would consider, in order.
	candidates(e env) ([]string, error)
	// pick returns the path the strategy settles on.
	pick(e env) (string, error)
}

var strategies = map[Platform]strategy{
	PlatformWindows: windowsStrategy{},
	PlatformMacOS:   macStrategy{},
	PlatformLinux:   linuxStrategy{},
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithPlatform overrides the detected platform.
func WithPlatform(p Platform) Option {
	return func(r *Resolver) {
		r.platform = p
	}
}

// WithSettings sets the override store. Defaults to empty settings.
func WithSettings(s settings.Settings) Option {
	return func(r *Resolver) {
		if s != nil {
			r.env.settings = s
		}
	}
}

// WithEnvLookup replaces os.LookupEnv.
func WithEnvLookup(fn func(string) (string, bool)) Option {
	return func(r *Resolver) {
		if fn != nil {
			r.env.getenv = fn
		}
	}
}

// WithHomeDir replaces os.UserHomeDir.
func WithHomeDir(fn func() (string, error)) Option {
	return func(r *Resolver) {
		if fn != nil {
			r.env.homeDir = fn
		}
	}
}

// WithExists replaces the on-disk existence check.
func WithExists(fn func(string) bool) Option {
	return func(r *Resolver) {
		if fn != nil {
			r.env.exists = fn
		}
	}
}

// Resolver locates product.json for one platform.
// It holds no state between calls; candidates are rebuilt on every Resolve.
type Resolver struct {
	platform Platform
	env      env
}

// NewResolver creates a Resolver for the current platform with the given options.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		platform: CurrentPlatform(),
		env: env{
			getenv:   os.LookupEnv,
			homeDir:  os.UserHomeDir,
			exists:   pathExists,
			settings: settings.Empty(),
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Platform returns the platform the resolver targets.
func (r *Resolver) Platform() Platform {
	return r.platform
}

// Resolve returns the path of product.json.
//
// Errors carry cerrors.ErrCodeOSNotSupported, cerrors.ErrCodeEnvVarMissing or
// cerrors.ErrCodeFileNotFound. Whatever the platform branch decides, the final
// path is checked for existence before it is returned.
func (r *Resolver) Resolve() (string, error) {
	s, err := r.strategy()
	if err != nil {
		return "", err
	}

	path, err := s.pick(r.env)
	if err != nil {
		return "", err
	}

	if !r.env.exists(path) {
		return "", cerrors.NewWithContext(cerrors.ErrCodeFileNotFound,
			fmt.Sprintf("file not found: %s", path),
			map[string]any{"path": path})
	}

	slog.Debug("resolved product.json", "platform", r.platform, "path", path)
	return path, nil
}

// Candidates returns every location the platform strategy considers, in order.
func (r *Resolver) Candidates() ([]string, error) {
	s, err := r.strategy()
	if err != nil {
		return nil, err
	}
	return s.candidates(r.env)
}

func (r *Resolver) strategy() (strategy, error) {
	s, ok := strategies[r.platform]
	if !ok {
		return nil, cerrors.NewWithContext(cerrors.ErrCodeOSNotSupported,
			fmt.Sprintf("unsupported operating system: %s", r.platform),
			map[string]any{"system": r.platform.String()})
	}
	return s, nil
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
