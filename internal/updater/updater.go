// Copyright 2026 Redpanda Data, Inc.
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

// Package updater walks a source tree and brings every matched file's header
// in line with the configured description, copyright and license.
package updater

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/redpanda-data/common-go/licenseupdater/header"
	"github.com/redpanda-data/common-go/licenseupdater/internal/config"
	"github.com/redpanda-data/common-go/licenseupdater/internal/log"
	"github.com/redpanda-data/common-go/licenseupdater/internal/output"
)

// Outcome is what happened to a single file.
type Outcome int

const (
	Unchanged Outcome = iota
	Updated
	Added
	Skipped
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Updated:
		return "updated"
	case Added:
		return "added"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Summary tallies the outcome of a run. Safe for concurrent use.
type Summary struct {
	mu     sync.Mutex
	counts map[Outcome]int
	errs   []error
}

func (s *Summary) record(path string, outcome Outcome, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.counts == nil {
		s.counts = map[Outcome]int{}
	}
	s.counts[outcome]++
	if err != nil {
		s.errs = append(s.errs, errors.Wrapf(err, "%s", path))
	}
}

// Count returns the number of files with the given outcome.
func (s *Summary) Count(outcome Outcome) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[outcome]
}

// Err joins the errors of every failed file.
func (s *Summary) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return errors.Join(s.errs...)
}

type Updater struct {
	config      *config.Config
	renderer    Renderer
	writer      *output.Writer
	filter      *header.UpdateFilter
	transformer *header.TextTransformer
	concurrency int
	now         func() time.Time
}

type Option func(*Updater)

// WithConcurrency bounds the number of files processed at once.
func WithConcurrency(n int) Option {
	return func(u *Updater) {
		if n > 0 {
			u.concurrency = n
		}
	}
}

// WithClock overrides the time source used for the current copyright year.
func WithClock(now func() time.Time) Option {
	return func(u *Updater) {
		u.now = now
	}
}

func New(cfg *config.Config, renderer Renderer, writer *output.Writer, opts ...Option) *Updater {
	transformer := &header.TextTransformer{SectionDelimiter: cfg.GetSectionDelimiter()}
	u := &Updater{
		config:      cfg,
		renderer:    renderer,
		writer:      writer,
		transformer: transformer,
		filter: &header.UpdateFilter{
			Transformer: transformer,
			Flags:       cfg.Flags,
		},
		concurrency: runtime.GOMAXPROCS(0),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

type matchedFile struct {
	path  string
	mode  os.FileMode
	match *config.Match
}

func (u *Updater) walk(ctx context.Context, ch chan<- *matchedFile) error {
	defer close(ch)
	return filepath.Walk(u.config.GetPath(), func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return nil
		}

		if match, ok := u.config.MatchFile(path); ok {
			select {
			case ch <- &matchedFile{path, fi.Mode(), match}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
}

// Run processes every matched file under the configured path. Per-file
// failures do not stop the run; they are collected in the summary and
// returned once every file has been visited.
func (u *Updater) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{}

	group, ctx := errgroup.WithContext(ctx)
	ch := make(chan *matchedFile, 1000)
	group.Go(func() error {
		return u.walk(ctx, ch)
	})

	var workers errgroup.Group
	workers.SetLimit(u.concurrency)
	for f := range ch {
		workers.Go(func() error {
			outcome, err := u.process(ctx, f)
			summary.record(f.path, outcome, err)
			return nil
		})
	}

	if err := workers.Wait(); err != nil {
		return summary, err
	}
	if err := group.Wait(); err != nil {
		return summary, errors.Wrap(err, "walking files")
	}

	log.Info(ctx, "processed files",
		"added", summary.Count(Added),
		"updated", summary.Count(Updated),
		"unchanged", summary.Count(Unchanged),
		"skipped", summary.Count(Skipped),
		"failed", summary.Count(Failed),
	)

	return summary, summary.Err()
}

// ProcessFile updates the header of a single file. The file must be
// selected by one of the configured match rules.
func (u *Updater) ProcessFile(ctx context.Context, path string) (Outcome, error) {
	match, ok := u.config.MatchFile(path)
	if !ok {
		return Skipped, errors.Newf("%q is not matched by any rule", path)
	}

	fi, err := os.Stat(path)
	if err != nil {
		return Failed, errors.Wrapf(err, "stat %q", path)
	}

	return u.process(ctx, &matchedFile{path, fi.Mode(), match})
}

func (u *Updater) process(ctx context.Context, f *matchedFile) (Outcome, error) {
	logger := log.FromContext(ctx, "file", f.path)
	ctx = log.IntoContext(ctx, logger)

	if err := ctx.Err(); err != nil {
		return Failed, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return Failed, errors.Wrapf(err, "reading %q", f.path)
	}

	target, err := u.targetHeader(f.path, f.match)
	if err != nil {
		return Failed, err
	}

	delimiter := f.match.GetDelimiter()
	existing := splitHeader(data, delimiter, u.transformer.SectionDelimiter)

	if !existing.found {
		if !u.config.AddMissing {
			logger.V(1).Info("no header, skipping")
			return Skipped, nil
		}
		if err := u.write(f, wrapHeader(u.transformer.Render(target), delimiter, existing.rest, existing.eol)); err != nil {
			return Failed, err
		}
		logger.Info("added header")
		return Added, nil
	}

	current, err := u.transformer.Parse(existing.text)
	if err != nil {
		log.Error(ctx, err, "existing header is malformed, skipping")
		return Failed, err
	}

	updated, changed := u.filter.Update(ctx, current, keepFirstYear(current, target))
	if !changed {
		logger.V(1).Info("header up to date")
		return Unchanged, nil
	}

	if err := u.write(f, wrapHeader(u.transformer.Render(updated), delimiter, existing.rest, existing.eol)); err != nil {
		return Failed, err
	}
	logger.Info("updated header")
	return Updated, nil
}

func (u *Updater) write(f *matchedFile, data []byte) error {
	return u.writer.WriteFile(f.path, data, f.mode.Perm())
}
