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

package header

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// DefaultSectionDelimiter separates the description, copyright and license
// sections of a rendered header.
const DefaultSectionDelimiter = "%%"

// ErrMalformedHeader is returned when a header block cannot be split into its
// three sections.
var ErrMalformedHeader = errors.New("malformed file header")

// Transformer compares the fields of two headers and renders a header to
// text. Equality is semantic: implementations decide what differences, such
// as whitespace, are insignificant.
type Transformer interface {
	IsDescriptionEqual(oldHeader, newHeader FileHeader) bool
	IsCopyrightEqual(oldHeader, newHeader FileHeader) bool
	IsLicenseEqual(oldHeader, newHeader FileHeader) bool
	Render(h FileHeader) string
}

// TextTransformer is the plain text Transformer. Comment delimiters are not
// its concern, callers wrap and unwrap the rendered block.
type TextTransformer struct {
	// SectionDelimiter defaults to DefaultSectionDelimiter.
	SectionDelimiter string
}

var _ Transformer = (*TextTransformer)(nil)

func (t *TextTransformer) sectionDelimiter() string {
	if t == nil || t.SectionDelimiter == "" {
		return DefaultSectionDelimiter
	}
	return t.SectionDelimiter
}

// IsDescriptionEqual compares descriptions with whitespace runs collapsed.
func (t *TextTransformer) IsDescriptionEqual(oldHeader, newHeader FileHeader) bool {
	return normalize(oldHeader.description) == normalize(newHeader.description)
}

// IsCopyrightEqual compares the copyright years and the whitespace-normalized
// holder.
func (t *TextTransformer) IsCopyrightEqual(oldHeader, newHeader FileHeader) bool {
	a, b := oldHeader.copyright, newHeader.copyright
	a.Holder = normalize(a.Holder)
	b.Holder = normalize(b.Holder)
	return a.Equal(b)
}

// IsLicenseEqual compares license texts with whitespace runs collapsed.
func (t *TextTransformer) IsLicenseEqual(oldHeader, newHeader FileHeader) bool {
	return normalize(oldHeader.license) == normalize(newHeader.license)
}

// Render lays out the description, copyright and license sections separated
// by section delimiter lines. The result always ends with a newline.
func (t *TextTransformer) Render(h FileHeader) string {
	delimiter := t.sectionDelimiter()

	var b strings.Builder
	b.WriteString(trimLines(h.description))
	b.WriteString("\n" + delimiter + "\n")
	b.WriteString(h.copyright.String())
	b.WriteString("\n" + delimiter + "\n")
	b.WriteString(trimLines(h.license))
	b.WriteString("\n")
	return b.String()
}

// Parse reads a header previously produced by Render, or written by hand in
// the same layout.
func (t *TextTransformer) Parse(text string) (FileHeader, error) {
	delimiter := t.sectionDelimiter()

	var sections []string
	var current []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == delimiter {
			sections = append(sections, strings.Join(current, "\n"))
			current = nil
			continue
		}
		current = append(current, line)
	}
	sections = append(sections, strings.Join(current, "\n"))

	if len(sections) != 3 {
		return FileHeader{}, errors.Wrapf(ErrMalformedHeader, "expected 3 sections delimited by %q, found %d", delimiter, len(sections))
	}

	copyright, err := ParseCopyright(sections[1])
	if err != nil {
		return FileHeader{}, errors.Mark(errors.Wrap(err, "copyright section"), ErrMalformedHeader)
	}

	return NewFileHeader(trimLines(sections[0]), copyright, trimLines(sections[2])), nil
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// trimLines drops leading and trailing blank lines and trailing whitespace on
// every line, keeping the line structure.
func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}
