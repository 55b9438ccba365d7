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

//go:build windows

package bypass

import (
	"errors"

	"golang.org/x/sys/windows"

	cerrors "github.com/NVIDIA/version-bypass/pkg/errors"
)

// CheckWritable reports whether path exists and is not marked read-only.
func CheckWritable(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return cerrors.WrapWithContext(cerrors.ErrCodeNoWritePermission,
			"invalid path", err, map[string]any{"path": path})
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return cerrors.WrapWithContext(cerrors.ErrCodeNoWritePermission,
			"file attributes unavailable", err, map[string]any{"path": path})
	}
	if attrs&windows.FILE_ATTRIBUTE_READONLY != 0 {
		return cerrors.WrapWithContext(cerrors.ErrCodeNoWritePermission,
			"file is not writable", errors.New("read-only attribute set"), map[string]any{"path": path})
	}
	return nil
}
