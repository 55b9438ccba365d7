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

// Package manifest fetches the published Cursor version history and extracts
// the latest version, used as the update target ("hint").
//
// A single GET is issued with a bounded total timeout; the body is validated
// against an embedded JSON Schema before it is decoded:
//
//	c := manifest.NewClient(manifest.WithURL(url))
//	latest, err := c.Latest(ctx)
//	if err != nil {
//	    // every failure carries errors.ErrCodeNetworkFailure
//	}
//
// Static provides a fixed hint for tests and offline use.
package manifest
