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
	"sync"
	"time"
)

// Recorder keeps every event in memory.
type Recorder struct {
	mu        sync.Mutex
	formatter *Formatter
	now       func() time.Time
	events    []Event
}

// NewRecorder creates a Recorder using f, or the English defaults when f is nil.
func NewRecorder(f *Formatter) *Recorder {
	if f == nil {
		f = NewFormatter(nil)
	}
	return &Recorder{formatter: f, now: time.Now}
}

// Report implements Reporter.
func (r *Recorder) Report(level Level, key string, params Params) string {
	text := r.formatter.Format(key, params)

	cp := make(Params, len(params))
	for k, v := range params {
		cp[k] = v
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{
		Time:   r.now().UTC(),
		Level:  level.String(),
		Key:    key,
		Text:   text,
		Params: cp,
	})
	return text
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Keys returns the recorded keys in order.
func (r *Recorder) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]string, 0, len(r.events))
	for _, e := range r.events {
		keys = append(keys, e.Key)
	}
	return keys
}

// Has reports whether key was recorded at least once.
func (r *Recorder) Has(key string) bool {
	_, ok := r.Find(key)
	return ok
}

// Find returns the first event recorded for key.
func (r *Recorder) Find(key string) (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.Key == key {
			return e, true
		}
	}
	return Event{}, false
}

// Tee fans each event out to all reporters and returns the first one's text.
func Tee(reporters ...Reporter) Reporter {
	return tee(reporters)
}

type tee []Reporter

func (t tee) Report(level Level, key string, params Params) string {
	var text string
	for i, r := range t {
		s := r.Report(level, key, params)
		if i == 0 {
			text = s
		}
	}
	return text
}
