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
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/NVIDIA/version-bypass/pkg/defaults"
	cerrors "github.com/NVIDIA/version-bypass/pkg/errors"
	"github.com/NVIDIA/version-bypass/pkg/manifest"
	"github.com/NVIDIA/version-bypass/pkg/product"
	"github.com/NVIDIA/version-bypass/pkg/report"
	"github.com/NVIDIA/version-bypass/pkg/version"
)

// PathResolver locates product.json.
type PathResolver interface {
	Platform() product.Platform
	Resolve() (string, error)
}

// Option configures an Operation.
type Option func(*Operation)

// WithHintSource sets where the latest published version comes from.
// A nil source skips the lookup.
func WithHintSource(s manifest.Source) Option {
	return func(o *Operation) {
		o.source = s
	}
}

// WithResolver sets the product.json locator.
func WithResolver(r PathResolver) Option {
	return func(o *Operation) {
		if r != nil {
			o.resolver = r
		}
	}
}

// WithReporter sets the event sink.
func WithReporter(r report.Reporter) Option {
	return func(o *Operation) {
		if r != nil {
			o.reporter = r
		}
	}
}

// WithClock sets the time source used for backup names and durations.
func WithClock(now func() time.Time) Option {
	return func(o *Operation) {
		if now != nil {
			o.now = now
		}
	}
}

// WithWritableCheck replaces the permission probe run before any mutation.
func WithWritableCheck(fn func(path string) error) Option {
	return func(o *Operation) {
		if fn != nil {
			o.writable = fn
		}
	}
}

// Operation rewrites the version recorded in product.json when it is below
// the floor or differs from the published latest version.
type Operation struct {
	source   manifest.Source
	resolver PathResolver
	reporter report.Reporter
	now      func() time.Time
	writable func(path string) error
	floor    string
	fallback string
}

// New creates an Operation. Without options it resolves the path for the
// running platform, skips the manifest lookup and discards events.
func New(opts ...Option) *Operation {
	o := &Operation{
		resolver: product.NewResolver(),
		reporter: report.Discard,
		now:      time.Now,
		writable: CheckWritable,
		floor:    defaults.FloorVersion,
		fallback: defaults.FallbackVersion,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run performs the bypass and reports whether it succeeded. Failures are
// reported, never returned.
func (o *Operation) Run(ctx context.Context) bool {
	return o.Execute(ctx).Succeeded()
}

// Execute performs the bypass and returns the full outcome.
func (o *Operation) Execute(ctx context.Context) (res *Result) {
	res = o.newResult()
	log := slog.With("runId", res.RunID)

	defer func() {
		if r := recover(); r != nil {
			err := cerrors.New(cerrors.ErrCodeInternal, fmt.Sprintf("panic: %v", r))
			o.abort(res, StateAborted, "bypass.bypass_failed", report.Params{"error": err.Error()}, err)
		}
		o.finish(res, log)
	}()

	o.reporter.Report(report.LevelInfo, "bypass.starting", nil)

	doc, ok := o.prepare(ctx, res, log, true)
	if !ok {
		return res
	}
	if !res.UpdateRequired {
		res.State = StateNoUpdateNeeded
		return res
	}

	backup := BackupPath(res.Path, o.now())
	if err := createBackup(doc, backup); err != nil {
		o.abort(res, StateBackupFailed, "bypass.backup_failed", report.Params{"error": err.Error(), "path": backup}, err)
		return res
	}
	res.BackupPath = backup
	res.State = StateBackedUp
	o.reporter.Report(report.LevelSuccess, "bypass.backup_created", report.Params{"path": backup})
	log.Debug("backup created", "path", res.Path, "backup", backup)

	doc.SetVersion(res.Target)
	if err := doc.Write(); err != nil {
		o.abort(res, StateWriteFailed, "bypass.write_failed", report.Params{"error": err.Error()}, err)
		return res
	}

	res.State = StateWritten
	o.reporter.Report(report.LevelSuccess, "bypass.version_updated",
		report.Params{"old": res.Current, "new": res.Target})
	return res
}

// Plan evaluates the run up to the update decision without touching the
// file. The returned error is the failure that stopped the evaluation.
func (o *Operation) Plan(ctx context.Context) (*Result, error) {
	res := o.newResult()
	log := slog.With("runId", res.RunID, "dryRun", true)

	if _, ok := o.prepare(ctx, res, log, false); !ok {
		res.Duration = o.now().Sub(res.StartedAt)
		return res, res.err
	}
	res.Duration = o.now().Sub(res.StartedAt)
	log.Debug("plan evaluated", "current", res.Current, "target", res.Target, "updateRequired", res.UpdateRequired)
	return res, nil
}

func (o *Operation) newResult() *Result {
	return &Result{
		RunID:     uuid.NewString(),
		Platform:  o.resolver.Platform().String(),
		Floor:     o.floor,
		State:     StateStart,
		StartedAt: o.now().UTC(),
	}
}

// prepare runs the hint lookup, path resolution, permission check, read and
// update decision. It returns false after reporting a failure.
func (o *Operation) prepare(ctx context.Context, res *Result, log *slog.Logger, requireWritable bool) (*Document, bool) {
	res.Hint = o.fetchHint(ctx, log)
	res.State = StateFetchedHint

	path, err := o.resolver.Resolve()
	if err != nil {
		key, params := resolveFailure(err)
		o.abort(res, StateAborted, key, params, err)
		return nil, false
	}
	res.Path = path
	res.State = StatePathResolved
	o.reporter.Report(report.LevelInfo, "bypass.found_product_json", report.Params{"path": path})

	werr := o.writable(path)
	res.Writable = werr == nil
	if werr != nil && requireWritable {
		if cerrors.CodeOf(werr) != cerrors.ErrCodeNoWritePermission {
			werr = cerrors.WrapWithContext(cerrors.ErrCodeNoWritePermission,
				"file is not writable", werr, map[string]any{"path": path})
		}
		o.abort(res, StateAborted, "bypass.no_write_permission", report.Params{"path": path}, werr)
		return nil, false
	}

	doc, err := ReadDocument(path)
	if err != nil {
		o.abort(res, StateAborted, "bypass.read_failed", report.Params{"error": err.Error()}, err)
		return nil, false
	}
	res.State = StateFileRead

	current, err := doc.Version()
	if err != nil {
		o.abort(res, StateAborted, "bypass.read_failed", report.Params{"error": err.Error()}, err)
		return nil, false
	}
	res.Current = current
	o.reporter.Report(report.LevelInfo, "bypass.current_version", report.Params{"version": current})

	required, err := o.decide(current, res.Hint)
	if err != nil {
		o.abort(res, StateAborted, "bypass.bypass_failed", report.Params{"error": err.Error()}, err)
		return nil, false
	}
	res.UpdateRequired = required
	res.Target = o.target(res.Hint)
	log.Debug("update decision", "current", current, "hint", res.Hint, "target", res.Target, "required", required)

	switch {
	case required:
		o.reporter.Report(report.LevelInfo, "bypass.update_required",
			report.Params{"current": current, "target": res.Target})
	case res.Hint != "":
		o.reporter.Report(report.LevelInfo, "bypass.already_latest", report.Params{"version": current})
	default:
		o.reporter.Report(report.LevelInfo, "bypass.no_update_needed",
			report.Params{"version": current, "floor": o.floor})
	}
	return doc, true
}

// decide applies the update rule: below the floor, or different from a
// present hint. A current version above the hint is moved down to it.
func (o *Operation) decide(current, hint string) (bool, error) {
	c, err := version.Compare(current, o.floor)
	if err != nil {
		return false, err
	}
	if c < 0 {
		return true, nil
	}
	if hint == "" {
		return false, nil
	}
	c, err = version.Compare(current, hint)
	if err != nil {
		return false, err
	}
	return c != 0, nil
}

func (o *Operation) target(hint string) string {
	if hint != "" {
		return hint
	}
	return o.fallback
}

// fetchHint returns the latest published version or "" when unavailable.
// Failures are reported as warnings and never stop the run.
func (o *Operation) fetchHint(ctx context.Context, log *slog.Logger) string {
	if o.source == nil {
		hintFetchTotal.WithLabelValues("disabled").Inc()
		return ""
	}

	o.reporter.Report(report.LevelInfo, "bypass.downloading_version_info", nil)

	hint, err := o.source.Latest(ctx)
	if err != nil {
		if stderrors.Is(err, manifest.ErrNoVersions) {
			hintFetchTotal.WithLabelValues("empty").Inc()
			o.reporter.Report(report.LevelWarning, "bypass.no_versions_found", nil)
		} else {
			hintFetchTotal.WithLabelValues("error").Inc()
			o.reporter.Report(report.LevelWarning, "bypass.version_fetch_failed", report.Params{"error": err.Error()})
		}
		log.Debug("hint unavailable", "error", err)
		return ""
	}

	if !version.IsValid(hint) {
		hintFetchTotal.WithLabelValues("invalid").Inc()
		o.reporter.Report(report.LevelWarning, "bypass.version_fetch_failed",
			report.Params{"error": fmt.Sprintf("invalid version %q", hint)})
		return ""
	}

	hintFetchTotal.WithLabelValues("ok").Inc()
	o.reporter.Report(report.LevelSuccess, "bypass.latest_version_found", report.Params{"version": hint})
	return hint
}

// abort records a failure and reports it once.
func (o *Operation) abort(res *Result, state State, key string, params report.Params, err error) {
	res.State = state
	res.setError(err)
	o.reporter.Report(report.LevelError, key, params)
}

func (o *Operation) finish(res *Result, log *slog.Logger) {
	res.Duration = o.now().Sub(res.StartedAt)
	runsTotal.WithLabelValues(string(res.State)).Inc()
	runDuration.Observe(res.Duration.Seconds())

	attrs := []any{"state", res.State, "path", res.Path, "current", res.Current, "target", res.Target, "duration", res.Duration}
	if res.Error != "" {
		log.Warn("bypass run failed", append(attrs, "code", res.ErrorCode, "error", res.Error)...)
		return
	}
	log.Info("bypass run completed", attrs...)
}

// resolveFailure maps a path resolution error to its message key.
func resolveFailure(err error) (string, report.Params) {
	ctx := cerrors.ContextOf(err)
	switch cerrors.CodeOf(err) {
	case cerrors.ErrCodeEnvVarMissing:
		return "bypass.localappdata_not_found", nil
	case cerrors.ErrCodeOSNotSupported:
		return "bypass.unsupported_os", report.Params{"system": ctx["system"]}
	case cerrors.ErrCodeFileNotFound:
		if p, ok := ctx["path"]; ok {
			return "bypass.file_not_found", report.Params{"path": p}
		}
		return "bypass.product_json_not_found", nil
	default:
		return "bypass.bypass_failed", report.Params{"error": err.Error()}
	}
}
