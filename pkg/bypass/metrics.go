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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bypass_runs_total",
			Help: "Total number of bypass runs by terminal state",
		},
		[]string{"state"},
	)

	runDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bypass_run_duration_seconds",
			Help:    "Time taken by a bypass run, including the manifest fetch",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
	)

	hintFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bypass_hint_fetch_total",
			Help: "Total number of manifest hint lookups by outcome",
		},
		[]string{"result"}, // ok, empty, invalid, error, disabled
	)
)

// WriteMetricsFile writes the default registry in the text exposition
// format, suitable for the node exporter textfile collector.
func WriteMetricsFile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
