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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/redpanda-data/common-go/licenseupdater/internal/config"
)

const rendered = "desc\n%%\nCopyright (C) 2010 Acme\n%%\nline one\n\n  indented\n"

func TestWrapAndSplit(t *testing.T) {
	for name, tt := range map[string]struct {
		delimiter config.Delimiter
		expected  string
	}{
		"go": {
			delimiter: config.Delimiter{Middle: "//"},
			expected:  "// desc\n// %%\n// Copyright (C) 2010 Acme\n// %%\n// line one\n//\n//   indented\n\npackage a\n",
		},
		"yaml": {
			delimiter: config.Delimiter{Middle: "#"},
			expected:  "# desc\n# %%\n# Copyright (C) 2010 Acme\n# %%\n# line one\n#\n#   indented\n\npackage a\n",
		},
		"helm": {
			delimiter: config.Delimiter{Top: "{{/*", Bottom: "*/}}"},
			expected:  "{{/*\ndesc\n%%\nCopyright (C) 2010 Acme\n%%\nline one\n\n  indented\n*/}}\n\npackage a\n",
		},
		"c style": {
			delimiter: config.Delimiter{Top: "/*", Middle: " *", Bottom: " */"},
			expected:  "/*\n * desc\n * %%\n * Copyright (C) 2010 Acme\n * %%\n * line one\n *\n *   indented\n */\n\npackage a\n",
		},
	} {
		t.Run(name, func(t *testing.T) {
			out := wrapHeader(rendered, tt.delimiter, []byte("package a\n"), "\n")
			require.Equal(t, tt.expected, string(out))

			b := splitHeader(out, tt.delimiter, "%%")
			require.True(t, b.found)
			require.Equal(t, "desc\n%%\nCopyright (C) 2010 Acme\n%%\nline one\n\n  indented", b.text)
			require.Equal(t, "package a\n", string(b.rest))
		})
	}
}

func TestSplitWithoutHeader(t *testing.T) {
	goDelimiter := config.Delimiter{Middle: "//"}
	helmDelimiter := config.Delimiter{Top: "{{/*", Bottom: "*/}}"}

	for name, tt := range map[string]struct {
		data      string
		delimiter config.Delimiter
	}{
		"empty":            {data: "", delimiter: goDelimiter},
		"no comment":       {data: "package a\n", delimiter: goDelimiter},
		"package doc":      {data: "// Package a does things.\npackage a\n", delimiter: goDelimiter},
		"unterminated":     {data: "{{/*\ndesc\n%%\nx\n%%\ny\n", delimiter: helmDelimiter},
		"comment not top":  {data: "package a\n\n// %%\n", delimiter: goDelimiter},
		"helm no sections": {data: "{{/*\nnotes\n*/}}\nkey: v\n", delimiter: helmDelimiter},
	} {
		t.Run(name, func(t *testing.T) {
			b := splitHeader([]byte(tt.data), tt.delimiter, "%%")
			require.False(t, b.found)
			require.Equal(t, tt.data, string(b.rest))
		})
	}
}

func TestWrapEmptyRest(t *testing.T) {
	out := wrapHeader("a\n%%\nb\n%%\nc\n", config.Delimiter{Middle: "#"}, nil, "\n")
	require.Equal(t, "# a\n# %%\n# b\n# %%\n# c\n", string(out))
}

func TestSplitStopsAtTrailingComments(t *testing.T) {
	goDelimiter := config.Delimiter{Middle: "//"}
	head := "// desc\n// %%\n// Copyright (C) 2010 Acme\n// %%\n// GPL\n//\n// more terms\n"

	for name, rest := range map[string]string{
		"package doc": "// Package foo does things.\npackage foo\n",
		"directive":   "//go:build linux\n\npackage foo\n",
		"nolint":      "//nolint:all\npackage foo\n",
	} {
		t.Run(name, func(t *testing.T) {
			b := splitHeader([]byte(head+rest), goDelimiter, "%%")
			require.True(t, b.found)
			require.Equal(t, "desc\n%%\nCopyright (C) 2010 Acme\n%%\nGPL\n\nmore terms", b.text)
			require.Equal(t, rest, string(b.rest))
		})
	}
}

func TestSplitKeepsLineEndings(t *testing.T) {
	data := "// desc\r\n// %%\r\n// Copyright (C) 2010 Acme\r\n// %%\r\n// GPL\r\n\r\npackage foo\r\n"

	b := splitHeader([]byte(data), config.Delimiter{Middle: "//"}, "%%")
	require.True(t, b.found)
	require.Equal(t, "\r\n", b.eol)
	require.Equal(t, "desc\n%%\nCopyright (C) 2010 Acme\n%%\nGPL", b.text)
	require.Equal(t, "package foo\r\n", string(b.rest))

	out := wrapHeader(b.text+"\n", config.Delimiter{Middle: "//"}, b.rest, b.eol)
	require.Equal(t, data, string(out))
}

func TestSplitKeepsMissingFinalNewline(t *testing.T) {
	data := "// a\n// %%\n// Copyright (C) 2010 Acme\n// %%\n// c\n\nkey: value"

	b := splitHeader([]byte(data), config.Delimiter{Middle: "//"}, "%%")
	require.True(t, b.found)
	require.Equal(t, "key: value", string(b.rest))
	require.Equal(t, "\n", b.eol)
}

func TestWrapLongLine(t *testing.T) {
	long := strings.Repeat("x", 128*1024)
	out := wrapHeader("a\n%%\nb\n%%\n"+long+"\n", config.Delimiter{Middle: "#"}, nil, "\n")
	require.Equal(t, "# a\n# %%\n# b\n# %%\n# "+long+"\n", string(out))
}
