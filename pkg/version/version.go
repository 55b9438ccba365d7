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

package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	goversion "github.com/hashicorp/go-version"

	cerrors "github.com/NVIDIA/version-bypass/pkg/errors"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion = errors.New("version string is empty")
	ErrNonNumeric   = errors.New("version component is not numeric")
	ErrOutOfRange   = errors.New("version component is out of range")
)

// Version is a dotted sequence of non-negative integers such as "1.5.4".
// Versions with different segment counts compare as if the shorter one were
// right-padded with zeros, so "1.5" equals "1.5.0".
type Version struct {
	raw      string
	segments []int64
	ordered  *goversion.Version
}

// Parse validates s and returns its Version.
// Every dot-separated segment must consist of ASCII digits only: empty segments,
// signs, a "v" prefix and pre-release or build suffixes are rejected.
// Errors carry cerrors.ErrCodeParseError and wrap one of the sentinel errors above.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, parseError(s, ErrEmptyVersion)
	}

	parts := strings.Split(s, ".")
	segments := make([]int64, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return Version{}, parseError(s, fmt.Errorf("%w: empty component", ErrNonNumeric))
		}
		for _, ch := range part {
			if ch < '0' || ch > '9' {
				return Version{}, parseError(s, fmt.Errorf("%w: %q", ErrNonNumeric, part))
			}
		}
		num, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return Version{}, parseError(s, fmt.Errorf("%w: %q", ErrOutOfRange, part))
		}
		segments = append(segments, num)
	}

	ordered, err := goversion.NewVersion(s)
	if err != nil {
		return Version{}, parseError(s, err)
	}

	return Version{raw: s, segments: segments, ordered: ordered}, nil
}

func parseError(s string, cause error) error {
	return cerrors.WrapWithContext(cerrors.ErrCodeParseError,
		fmt.Sprintf("invalid version %q", s), cause,
		map[string]any{"version": s})
}

// MustParse parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// IsValid reports whether s parses as a Version.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// String returns the version exactly as it was parsed.
func (v Version) String() string {
	return v.raw
}

// Segments returns a copy of the numeric segments.
func (v Version) Segments() []int64 {
	out := make([]int64, len(v.segments))
	copy(out, v.segments)
	return out
}

// Compare returns -1 if v < other, 0 if they are equal and 1 if v > other.
// The zero Version compares as "0".
func (v Version) Compare(other Version) int {
	return v.orderedOrZero().Compare(other.orderedOrZero())
}

func (v Version) orderedOrZero() *goversion.Version {
	if v.ordered != nil {
		return v.ordered
	}
	return goversion.Must(goversion.NewVersion("0"))
}

// Compare parses a and b and compares them.
// Returns -1 if a < b, 0 if a == b and 1 if a > b.
func Compare(a, b string) (int, error) {
	av, err := Parse(a)
	if err != nil {
		return 0, err
	}
	bv, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return av.Compare(bv), nil
}
