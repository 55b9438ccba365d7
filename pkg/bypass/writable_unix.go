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

//go:build !windows

package bypass

import (
	"golang.org/x/sys/unix"

	cerrors "github.com/NVIDIA/version-bypass/pkg/errors"
)

// CheckWritable reports whether the current process may write path.
func CheckWritable(path string) error {
	if err := unix.Access(path, unix.W_OK); err != nil {
		return cerrors.WrapWithContext(cerrors.ErrCodeNoWritePermission,
			"file is not writable", err, map[string]any{"path": path})
	}
	return nil
}
