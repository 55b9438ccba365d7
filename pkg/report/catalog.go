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

package report

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// EnvLang is consulted when no explicit language is requested.
const EnvLang = "LANG"

// supported locales, in matcher preference order. The first entry is the
// fallback.
var supported = []struct {
	tag  language.Tag
	file string
}{
	{language.English, "en"},
	{language.SimplifiedChinese, "zh_cn"},
	{language.TraditionalChinese, "zh_tw"},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		tags = append(tags, s.tag)
	}
	return language.NewMatcher(tags)
}()

// Catalog is a Provider backed by one embedded locale file.
type Catalog struct {
	locale   string
	messages map[string]string
}

// Locale returns the locale file name the catalog was loaded from.
func (c *Catalog) Locale() string {
	return c.locale
}

// Lookup implements Provider.
func (c *Catalog) Lookup(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c.messages[key]
	return v, ok
}

// Len returns the number of messages in the catalog.
func (c *Catalog) Len() int {
	return len(c.messages)
}

// MatchLocale maps a language preference such as "zh_CN.UTF-8", "zh-TW" or
// "en" onto one of the embedded locales. Unknown or empty input yields "en".
func MatchLocale(pref string) string {
	pref = normalizeLang(pref)
	if pref == "" {
		return supported[0].file
	}
	tag, err := language.Parse(pref)
	if err != nil {
		return supported[0].file
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return supported[0].file
	}
	return supported[idx].file
}

func normalizeLang(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "C" || s == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(s, "_", "-")
}

// LoadCatalog loads the embedded locale best matching pref. An empty pref
// falls back to the LANG environment variable.
func LoadCatalog(pref string) (*Catalog, error) {
	if pref == "" {
		pref = os.Getenv(EnvLang)
	}
	locale := MatchLocale(pref)

	data, err := localeFS.ReadFile(path.Join("locales", locale+".json"))
	if err != nil {
		return nil, fmt.Errorf("locale %q not embedded: %w", locale, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse locale %q: %w", locale, err)
	}

	messages := make(map[string]string)
	flatten("", raw, messages)

	slog.Debug("locale loaded", "requested", pref, "locale", locale, "messages", len(messages))
	return &Catalog{locale: locale, messages: messages}, nil
}

func flatten(prefix string, in map[string]any, out map[string]string) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			flatten(key, val, out)
		}
	}
}
