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

// Package header provides the envelope shared by documents the CLI prints.
//
// Documents embed Header inline so every output starts with kind,
// apiVersion and metadata:
//
//	type plan struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    Plan *bypass.Result `json:"plan" yaml:"plan"`
//	}
//
//	p := plan{Header: header.New(header.KindPlan, version)}
package header
