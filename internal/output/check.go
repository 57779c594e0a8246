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

package output

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// CheckDiffs collects the differences between files on disk and the
// contents that would have been written. A path compared more than once keeps
// its latest difference. Safe for concurrent use.
type CheckDiffs struct {
	differ *diffmatchpatch.DiffMatchPatch

	mu    sync.RWMutex
	files map[string][]diffmatchpatch.Diff
}

// NewCheckDiffs returns an empty CheckDiffs.
func NewCheckDiffs() *CheckDiffs {
	return &CheckDiffs{
		differ: diffmatchpatch.New(),
		files:  map[string][]diffmatchpatch.Diff{},
	}
}

// Diff compares newData with the file at path. A missing file counts as
// empty.
func (c *CheckDiffs) Diff(path string, newData []byte) error {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "reading %q", path)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if bytes.Equal(data, newData) {
		delete(c.files, path)
		return nil
	}
	c.files[path] = c.differ.DiffMain(string(data), string(newData), false)
	return nil
}

// Paths returns the paths that differ, sorted.
func (c *CheckDiffs) Paths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sortedPaths()
}

func (c *CheckDiffs) sortedPaths() []string {
	paths := make([]string, 0, len(c.files))
	for path := range c.files {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths
}

// Err returns one error listing every difference in path order, or nil.
func (c *CheckDiffs) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	paths := c.sortedPaths()
	if len(paths) == 0 {
		return nil
	}

	var b strings.Builder
	for i, path := range paths {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s:\n%s", path, c.differ.DiffPrettyText(c.files[path]))
	}
	return errors.Newf("%d files differ:\n%s", len(paths), b.String())
}
