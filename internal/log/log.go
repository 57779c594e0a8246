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

package log

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/go-logr/logr"
)

// Level is a named logging verbosity.
type Level struct {
	Name      string
	Verbosity int
}

var (
	LevelInfo    = Level{Name: "info", Verbosity: 0}
	LevelDebug   = Level{Name: "debug", Verbosity: 1}
	LevelVerbose = Level{Name: "verbose", Verbosity: 2}
	LevelTrace   = Level{Name: "trace", Verbosity: 3}

	levels = []Level{LevelInfo, LevelDebug, LevelVerbose, LevelTrace}
)

// LevelFromString returns the Level named by s, falling back to info for
// unknown names.
func LevelFromString(s string) Level {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, level := range levels {
		if level.Name == s {
			return level
		}
	}
	return LevelInfo
}

func (l Level) slogLevel() slog.Level {
	// logr maps V(n) onto slog level -n.
	return slog.Level(-l.Verbosity)
}

// New returns a text logger writing to w that emits messages up to the
// verbosity of level.
func New(w io.Writer, level Level) logr.Logger {
	return logr.FromSlogHandler(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level.slogLevel(),
	}))
}

// Info logs a non-error message using the logger stored in ctx. Additional
// key/value pairs are forwarded to the underlying logger.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	FromContext(ctx).Info(msg, keysAndValues...)
}

// Error logs an error with message and additional key/value pairs using the
// logger stored in ctx.
func Error(ctx context.Context, err error, msg string, keysAndValues ...any) {
	FromContext(ctx).Error(err, msg, keysAndValues...)
}

// IntoContext takes a context and sets the logger as one of its values.
// Use FromContext function to retrieve the logger.
var IntoContext = logr.NewContext

// FromContext returns the logger stored in ctx with keysAndValues attached,
// or a logger that discards everything if ctx carries none.
func FromContext(ctx context.Context, keysAndValues ...any) logr.Logger {
	logger := logr.FromContextOrDiscard(ctx)
	if len(keysAndValues) > 0 {
		logger = logger.WithValues(keysAndValues...)
	}
	return logger
}

// SetGlobals routes the standard library's slog default through l.
func SetGlobals(l logr.Logger) {
	slog.SetDefault(slog.New(logr.ToSlogHandler(l)))
}
