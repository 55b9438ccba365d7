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

package defaults

const (
	// FloorVersion is the version below which product.json is always bumped.
	FloorVersion = "1.5.4"

	// FallbackVersion is written when no manifest hint is available.
	FallbackVersion = "1.5.4"

	// MissingVersion is assumed when product.json has no version field.
	MissingVersion = "0.0.0"

	// VersionField is the only product.json key this tool rewrites.
	VersionField = "version"

	// ManifestURL is the published version history consulted for the latest release.
	ManifestURL = "https://raw.githubusercontent.com/flyeric0212/cursor-history-links/refs/heads/main/version-history.json"

	// BackupTimeLayout is appended to the product.json path to name a backup (YYYYMMDDHHMMSS).
	BackupTimeLayout = "20060102150405"

	// SettingsDirName is the per-user directory holding config.ini, under the Documents folder.
	SettingsDirName = ".cursor-free-vip"

	// SettingsFileName is the INI file carrying path overrides.
	SettingsFileName = "config.ini"
)
