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

// Package output writes rendered files to disk, or in check mode records how
// they would differ from what is on disk.
package output

import (
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"
)

// Writer persists file contents. The zero value discards everything.
type Writer struct {
	// Suffix is appended to every file name, e.g. ".golden" in tests.
	Suffix string
	// Write enables writing to disk.
	Write bool
	// Differ, when set, records differences between on-disk and new
	// contents.
	Differ *CheckDiffs
}

// NewWriter returns a Writer that writes to disk, or when check is set only
// collects diffs.
func NewWriter(check bool) *Writer {
	w := &Writer{Write: !check}
	if check {
		w.Differ = NewCheckDiffs()
	}
	return w
}

func (w *Writer) WriteFile(name string, data []byte, perm fs.FileMode) error {
	name += w.Suffix

	if w.Write {
		if err := os.WriteFile(name, data, perm); err != nil {
			return errors.Wrapf(err, "writing %q", name)
		}
		return nil
	}

	if w.Differ != nil {
		if err := w.Differ.Diff(name, data); err != nil {
			return err
		}
	}

	return nil
}

// Err returns the collected differences as a single error, if any.
func (w *Writer) Err() error {
	if w.Differ == nil {
		return nil
	}
	return w.Differ.Err()
}
