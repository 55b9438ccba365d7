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

package bypass

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/NVIDIA/version-bypass/pkg/defaults"
	cerrors "github.com/NVIDIA/version-bypass/pkg/errors"
)

// Document is a decoded product.json together with the bytes and file
// metadata it was read from.
type Document struct {
	path    string
	raw     []byte
	mode    fs.FileMode
	modTime time.Time
	fields  map[string]any
}

// ReadDocument reads and decodes the JSON object at path.
func ReadDocument(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, cerrors.WrapWithContext(cerrors.ErrCodeReadFailure,
			"failed to stat product.json", err, map[string]any{"path": path})
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, cerrors.WrapWithContext(cerrors.ErrCodeReadFailure,
			"failed to read product.json", err, map[string]any{"path": path})
	}

	fields, err := decodeObject(raw)
	if err != nil {
		return nil, cerrors.WrapWithContext(cerrors.ErrCodeReadFailure,
			"failed to parse product.json", err, map[string]any{"path": path})
	}

	return &Document{
		path:    path,
		raw:     raw,
		mode:    info.Mode().Perm(),
		modTime: info.ModTime(),
		fields:  fields,
	}, nil
}

func decodeObject(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, fmt.Errorf("document is not a JSON object")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON object")
	}
	return fields, nil
}

// Path returns the file the document was read from.
func (d *Document) Path() string {
	return d.path
}

// Raw returns the bytes as read from disk.
func (d *Document) Raw() []byte {
	return d.raw
}

// Version returns the version field, or defaults.MissingVersion when the
// field is absent. A present non-string value is a parse error.
func (d *Document) Version() (string, error) {
	v, ok := d.fields[defaults.VersionField]
	if !ok {
		return defaults.MissingVersion, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", cerrors.NewWithContext(cerrors.ErrCodeParseError,
			fmt.Sprintf("version field has type %T, expected string", v),
			map[string]any{"path": d.path, "field": defaults.VersionField})
	}
	return s, nil
}

// SetVersion replaces the version field. No other field is touched.
func (d *Document) SetVersion(v string) {
	d.fields[defaults.VersionField] = v
}

// Get returns a top-level field.
func (d *Document) Get(key string) (any, bool) {
	v, ok := d.fields[key]
	return v, ok
}

// Marshal encodes the document with two-space indentation and without HTML
// escaping.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d.fields); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write persists the document over its original path through a sibling
// temporary file and a rename, keeping the original permission bits.
func (d *Document) Write() error {
	data, err := d.Marshal()
	if err != nil {
		return cerrors.WrapWithContext(cerrors.ErrCodeWriteFailure,
			"failed to encode product.json", err, map[string]any{"path": d.path})
	}
	if err := writeFileAtomic(d.path, data, d.mode); err != nil {
		return cerrors.WrapWithContext(cerrors.ErrCodeWriteFailure,
			"failed to write product.json", err, map[string]any{"path": d.path})
	}
	return nil
}
