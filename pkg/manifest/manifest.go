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

package manifest

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/NVIDIA/version-bypass/pkg/defaults"
	cerrors "github.com/NVIDIA/version-bypass/pkg/errors"
)

//go:embed schema/version-history.schema.json
var schemaJSON []byte

const schemaURL = "version-history.schema.json"

// ErrNoVersions is returned when the manifest parses but lists no versions.
var ErrNoVersions = errors.New("no versions found in the version history")

// Source yields the latest published version, the "hint".
type Source interface {
	Latest(ctx context.Context) (string, error)
}

// Manifest is the subset of the version history document this tool reads.
type Manifest struct {
	Versions []Entry `json:"versions"`
}

// Entry is one published release.
type Entry struct {
	Version string `json:"version"`
}

// Latest returns the first listed version.
func (m *Manifest) Latest() (string, error) {
	if m == nil || len(m.Versions) == 0 {
		return "", ErrNoVersions
	}
	return m.Versions[0].Version, nil
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("parse embedded manifest schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("add manifest schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// Parse validates data against the version history schema and decodes it.
func Parse(data []byte) (*Manifest, error) {
	sch, err := loadSchema()
	if err != nil {
		return nil, err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("manifest is not valid JSON: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return nil, fmt.Errorf("manifest does not match schema: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return &m, nil
}

// Option configures a Client.
type Option func(*Client)

// WithURL overrides the manifest location.
func WithURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.url = url
		}
	}
}

// WithReader replaces the HTTP reader.
func WithReader(r *HTTPReader) Option {
	return func(c *Client) {
		if r != nil {
			c.reader = r
		}
	}
}

// Client fetches the version history over HTTP.
type Client struct {
	url    string
	reader *HTTPReader
}

// NewClient creates a Client for the default manifest URL.
func NewClient(opts ...Option) *Client {
	c := &Client{
		url:    defaults.ManifestURL,
		reader: NewHTTPReader(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the manifest location.
func (c *Client) URL() string {
	return c.url
}

// Latest performs one GET and returns the first listed version.
// Every failure carries cerrors.ErrCodeNetworkFailure; an empty list also
// matches ErrNoVersions.
func (c *Client) Latest(ctx context.Context) (string, error) {
	data, err := c.reader.ReadWithContext(ctx, c.url)
	if err != nil {
		return "", cerrors.WrapWithContext(cerrors.ErrCodeNetworkFailure,
			"failed to fetch version manifest", err, map[string]any{"url": c.url})
	}

	m, err := Parse(data)
	if err != nil {
		return "", cerrors.WrapWithContext(cerrors.ErrCodeNetworkFailure,
			"malformed version manifest", err, map[string]any{"url": c.url})
	}

	latest, err := m.Latest()
	if err != nil {
		return "", cerrors.WrapWithContext(cerrors.ErrCodeNetworkFailure,
			"empty version manifest", err, map[string]any{"url": c.url})
	}

	slog.Debug("manifest fetched", "url", c.url, "entries", len(m.Versions), "latest", latest)
	return latest, nil
}

// Static is a Source that always returns the same hint.
// The empty Static behaves like a manifest with no versions.
type Static string

// Latest implements Source.
func (s Static) Latest(_ context.Context) (string, error) {
	if s == "" {
		return "", cerrors.Wrap(cerrors.ErrCodeNetworkFailure, "no static hint", ErrNoVersions)
	}
	return string(s), nil
}
