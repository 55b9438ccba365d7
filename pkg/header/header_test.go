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

package header

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	h := New(KindPlan, "1.2.3")
	assert.Equal(t, KindPlan, h.Kind)
	assert.Equal(t, APIVersion, h.APIVersion)
	assert.Equal(t, "1.2.3", h.Metadata["version"])

	_, err := time.Parse(time.RFC3339, h.Metadata["timestamp"])
	assert.NoError(t, err)
}

func TestNew_Options(t *testing.T) {
	at := time.Date(2025, 10, 19, 8, 0, 0, 0, time.FixedZone("x", 3600))
	h := New(KindPaths, "", WithTimestamp(at), WithMetadata("platform", "linux"))

	assert.Equal(t, "2025-10-19T07:00:00Z", h.Metadata["timestamp"])
	assert.Equal(t, "linux", h.Metadata["platform"])
	_, ok := h.Metadata["version"]
	assert.False(t, ok)
}

func TestKind(t *testing.T) {
	assert.True(t, KindPlan.IsValid())
	assert.True(t, KindPaths.IsValid())
	assert.False(t, Kind("Snapshot").IsValid())
	assert.Equal(t, "BypassPlan", KindPlan.String())
}
