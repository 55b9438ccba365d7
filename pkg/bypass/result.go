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
	"time"

	cerrors "github.com/NVIDIA/version-bypass/pkg/errors"
)

// State is a step of a bypass run.
//
//	start -> fetched_hint -> path_resolved -> file_read -> no_update_needed
//	                                                    -> backed_up -> written
//	                                                    -> backup_failed
//	                                                    -> write_failed
//
// Any other failure ends the run in aborted.
type State string

const (
	StateStart          State = "start"
	StateFetchedHint    State = "fetched_hint"
	StatePathResolved   State = "path_resolved"
	StateFileRead       State = "file_read"
	StateNoUpdateNeeded State = "no_update_needed"
	StateBackedUp       State = "backed_up"
	StateWritten        State = "written"
	StateBackupFailed   State = "backup_failed"
	StateWriteFailed    State = "write_failed"
	StateAborted        State = "aborted"
)

// Terminal reports whether a run can end in s.
func (s State) Terminal() bool {
	switch s {
	case StateNoUpdateNeeded, StateWritten, StateBackupFailed, StateWriteFailed, StateAborted:
		return true
	default:
		return false
	}
}

// Succeeded reports whether s is a successful terminal state.
func (s State) Succeeded() bool {
	return s == StateNoUpdateNeeded || s == StateWritten
}

// Result describes what a run decided and did.
type Result struct {
	RunID          string            `json:"runId" yaml:"runId"`
	Platform       string            `json:"platform" yaml:"platform"`
	Path           string            `json:"path,omitempty" yaml:"path,omitempty"`
	Writable       bool              `json:"writable" yaml:"writable"`
	Current        string            `json:"current,omitempty" yaml:"current,omitempty"`
	Hint           string            `json:"hint,omitempty" yaml:"hint,omitempty"`
	Floor          string            `json:"floor" yaml:"floor"`
	Target         string            `json:"target,omitempty" yaml:"target,omitempty"`
	UpdateRequired bool              `json:"updateRequired" yaml:"updateRequired"`
	BackupPath     string            `json:"backupPath,omitempty" yaml:"backupPath,omitempty"`
	State          State             `json:"state" yaml:"state"`
	ErrorCode      cerrors.ErrorCode `json:"errorCode,omitempty" yaml:"errorCode,omitempty"`
	Error          string            `json:"error,omitempty" yaml:"error,omitempty"`
	StartedAt      time.Time         `json:"startedAt" yaml:"startedAt"`
	Duration       time.Duration     `json:"duration" yaml:"duration"`

	err error
}

// Succeeded reports whether the run ended well.
func (r *Result) Succeeded() bool {
	return r != nil && r.State.Succeeded()
}

// Err returns the failure that ended the run, if any.
func (r *Result) Err() error {
	return r.err
}

func (r *Result) setError(err error) {
	r.err = err
	r.ErrorCode = cerrors.CodeOf(err)
	r.Error = err.Error()
}
