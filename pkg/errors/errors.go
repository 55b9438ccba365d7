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

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeEnvVarMissing indicates a required environment variable is not set.
	ErrCodeEnvVarMissing ErrorCode = "ENV_VAR_MISSING"
	// ErrCodeOSNotSupported indicates the running platform has no path strategy.
	ErrCodeOSNotSupported ErrorCode = "OS_NOT_SUPPORTED"
	// ErrCodeFileNotFound indicates the target file does not exist on disk.
	ErrCodeFileNotFound ErrorCode = "FILE_NOT_FOUND"
	// ErrCodeNoWritePermission indicates the target file cannot be written by this process.
	ErrCodeNoWritePermission ErrorCode = "NO_WRITE_PERMISSION"
	// ErrCodeReadFailure indicates the target file could not be read or decoded.
	ErrCodeReadFailure ErrorCode = "READ_FAILURE"
	// ErrCodeParseError indicates a malformed version string.
	ErrCodeParseError ErrorCode = "PARSE_ERROR"
	// ErrCodeBackupFailure indicates the backup artifact could not be created or verified.
	ErrCodeBackupFailure ErrorCode = "BACKUP_FAILURE"
	// ErrCodeWriteFailure indicates the rewritten document could not be persisted.
	ErrCodeWriteFailure ErrorCode = "WRITE_FAILURE"
	// ErrCodeNetworkFailure indicates the version manifest could not be fetched or decoded.
	//
	// Note: callers demote this code to "hint unavailable"; it never aborts a run.
	ErrCodeNetworkFailure ErrorCode = "NETWORK_FAILURE"
	// ErrCodeInvalidRequest indicates malformed or invalid input.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// StructuredError provides structured error information for better observability.
// It includes an error code for programmatic handling, a human-readable message,
// the underlying cause, and optional context for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// CodeOf returns the code of the first StructuredError in err's chain,
// or ErrCodeInternal when there is none.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}

// ContextOf returns the context map of the first StructuredError in err's chain.
// The returned map is never nil.
func ContextOf(err error) map[string]any {
	var se *StructuredError
	if stderrors.As(err, &se) && se.Context != nil {
		return se.Context
	}
	return map[string]any{}
}
