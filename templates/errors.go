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

package templates

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrTemplateNotFound is returned when a name resolves neither to a file nor
// to a logical template.
var ErrTemplateNotFound = errors.New("template not found")

// RenderError reports a template that was found but failed to parse or
// execute, for instance because it references an undefined variable.
type RenderError struct {
	Name string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("could not render template %q: %v", e.Name, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
