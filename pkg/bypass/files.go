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
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/NVIDIA/version-bypass/pkg/defaults"
	cerrors "github.com/NVIDIA/version-bypass/pkg/errors"
)

// BackupPath returns the timestamped backup location for path.
func BackupPath(path string, at time.Time) string {
	return path + "." + at.Format(defaults.BackupTimeLayout)
}

// createBackup writes doc's original bytes to dst and verifies the copy.
// dst must not exist. A partial or mismatched copy is removed.
func createBackup(doc *Document, dst string) (err error) {
	wrap := func(msg string, cause error) error {
		return cerrors.WrapWithContext(cerrors.ErrCodeBackupFailure, msg, cause,
			map[string]any{"path": doc.path, "backup": dst})
	}

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, doc.mode)
	if err != nil {
		return wrap("failed to create backup file", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(dst)
		}
	}()

	if _, err = f.Write(doc.raw); err != nil {
		_ = f.Close()
		return wrap("failed to write backup file", err)
	}
	if err = f.Chmod(doc.mode); err != nil {
		_ = f.Close()
		return wrap("failed to set backup file mode", err)
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return wrap("failed to sync backup file", err)
	}
	if err = f.Close(); err != nil {
		return wrap("failed to close backup file", err)
	}

	if !doc.modTime.IsZero() {
		if err = os.Chtimes(dst, doc.modTime, doc.modTime); err != nil {
			return wrap("failed to preserve backup timestamps", err)
		}
	}

	copied, err := os.ReadFile(dst)
	if err != nil {
		return wrap("failed to verify backup file", err)
	}
	if !bytes.Equal(copied, doc.raw) {
		err = fmt.Errorf("backup content differs from original (%d != %d bytes)", len(copied), len(doc.raw))
		return wrap("backup verification failed", err)
	}
	return nil
}

// writeFileAtomic replaces path with data via a temporary file in the same
// directory. A symlinked path keeps its link and the target is rewritten.
func writeFileAtomic(path string, data []byte, mode fs.FileMode) (err error) {
	// Replace the link target, not the link itself.
	if resolved, rerr := filepath.EvalSymlinks(path); rerr == nil {
		path = resolved
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err = tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set mode on temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
