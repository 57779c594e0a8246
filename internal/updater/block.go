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

package updater

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/redpanda-data/common-go/licenseupdater/internal/config"
)

// packageDocRegex matches the first line of a Go package doc comment.
var packageDocRegex = regexp.MustCompile(`^Package [\p{L}_][\p{L}\p{N}_]*\b`)

// block is a file split around its leading comment block.
type block struct {
	// text is the comment block with delimiters stripped, empty if the file
	// has no leading comment block.
	text string
	// found is set when the leading comment block looks like a header, that
	// is when it contains a section delimiter line.
	found bool
	// rest is everything after the header, or the whole file when no header
	// was found. It is kept byte for byte.
	rest []byte
	// eol is the line ending used by the file.
	eol string
}

// splitHeader separates a file's header from the rest of its content. A
// leading comment block only counts as a header if one of its lines is the
// section delimiter; other comments, such as package documentation, are left
// in place.
func splitHeader(data []byte, delimiter config.Delimiter, sectionDelimiter string) block {
	raw := splitLines(string(data))
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = strings.TrimRight(line, "\r\n")
	}

	eol := "\n"
	if len(raw) > 0 && strings.HasSuffix(raw[0], "\r\n") {
		eol = "\r\n"
	}

	end := commentBlockEnd(lines, delimiter)
	if end == 0 {
		return block{rest: data, eol: eol}
	}

	var stripped []string
	lastSection := -1
	for i, line := range lines[:end] {
		if delimiter.Top != "" && (i == 0 || i == end-1) {
			continue
		}
		text := stripPrefix(line, delimiter.Middle)
		if strings.TrimSpace(text) == sectionDelimiter {
			lastSection = i
		}
		stripped = append(stripped, text)
	}

	if lastSection < 0 {
		return block{rest: data, eol: eol}
	}

	if delimiter.Top == "" {
		// without a closing line the license section runs until the first
		// comment that cannot belong to it
		for i := lastSection + 1; i < end; i++ {
			if isTrailingComment(lines[i], delimiter.Middle) {
				stripped = stripped[:i]
				end = i
				break
			}
		}
	}

	remaining := raw[end:]
	if len(remaining) > 0 && strings.TrimSpace(remaining[0]) == "" {
		remaining = remaining[1:]
	}

	return block{
		text:  strings.Join(stripped, "\n"),
		found: true,
		rest:  []byte(strings.Join(remaining, "")),
		eol:   eol,
	}
}

// splitLines splits s after every newline, keeping line endings.
func splitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// isTrailingComment reports whether a comment line following the license
// section belongs to something else: a directive such as //go:build, whose
// text starts right after the prefix, or the start of a package doc comment.
func isTrailingComment(line, prefix string) bool {
	text := strings.TrimPrefix(line, prefix)
	if text != "" && !unicode.IsSpace(rune(text[0])) {
		return true
	}
	return packageDocRegex.MatchString(strings.TrimSpace(text))
}

// commentBlockEnd returns the number of leading lines making up the first
// comment block, or 0 when the file does not start with one.
func commentBlockEnd(lines []string, delimiter config.Delimiter) int {
	if len(lines) == 0 {
		return 0
	}

	if delimiter.Top != "" {
		if lines[0] != delimiter.Top {
			return 0
		}
		for i := 1; i < len(lines); i++ {
			if lines[i] == delimiter.Bottom {
				return i + 1
			}
		}
		// unterminated block
		return 0
	}

	i := 0
	for i < len(lines) && strings.HasPrefix(lines[i], delimiter.Middle) {
		i++
	}
	return i
}

func stripPrefix(line, prefix string) string {
	if prefix == "" {
		return line
	}
	line = strings.TrimPrefix(line, prefix)
	return strings.TrimPrefix(line, " ")
}

// wrapHeader comments out a rendered header and prepends it to rest,
// separated by an empty line. Lines end with eol.
func wrapHeader(rendered string, delimiter config.Delimiter, rest []byte, eol string) []byte {
	var out strings.Builder
	if delimiter.Top != "" {
		out.WriteString(delimiter.Top + eol)
	}
	for _, line := range strings.Split(strings.TrimSuffix(rendered, "\n"), "\n") {
		mid := delimiter.Middle
		if mid != "" {
			mid += " "
		}

		out.WriteString(strings.TrimRightFunc(mid+line, unicode.IsSpace) + eol)
	}
	if delimiter.Bottom != "" {
		out.WriteString(delimiter.Bottom + eol)
	}

	if len(rest) > 0 {
		// ensure a newline
		out.WriteString(eol)
		out.Write(rest)
	}

	return []byte(out.String())
}
