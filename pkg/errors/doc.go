// Package errors provides structured error types for better observability
// and programmatic error handling across the bypass tool.
//
// Every failure inside a bypass run is classified with an ErrorCode so the
// reporter can pick the matching message key and the caller can decide
// whether the failure is fatal (everything except ErrCodeNetworkFailure).
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeBackupFailure,
//	    "failed to create backup",
//	    cause,
//	    map[string]interface{}{
//	        "path":   productPath,
//	        "backup": backupPath,
//	    },
//	)
package errors
