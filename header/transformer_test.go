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
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestTextTransformerEquality(t *testing.T) {
	transformer := &TextTransformer{}

	a := NewFileHeader("My  project\n", years(2010, 0), "Licensed under\nthe MIT license")
	b := NewFileHeader(" My project", years(2010, 0), "Licensed   under the MIT license ")

	require.True(t, transformer.IsDescriptionEqual(a, b))
	require.True(t, transformer.IsCopyrightEqual(a, b))
	require.True(t, transformer.IsLicenseEqual(a, b))

	c := NewFileHeader("Other project", years(2010, 2024), "Apache")
	require.False(t, transformer.IsDescriptionEqual(a, c))
	require.False(t, transformer.IsCopyrightEqual(a, c))
	require.False(t, transformer.IsLicenseEqual(a, c))

	spaced := years(2010, 0)
	spaced.Holder = "  Acme "
	require.True(t, transformer.IsCopyrightEqual(a, NewFileHeader("", spaced, "")))
}

func TestTextTransformerRenderParse(t *testing.T) {
	transformer := &TextTransformer{}
	h := NewFileHeader("My project\n", years(2010, 2024), "Line one\nLine two  \n\n")

	rendered := transformer.Render(h)
	require.Equal(t, "My project\n%%\nCopyright (C) 2010 - 2024 Acme\n%%\nLine one\nLine two\n", rendered)

	parsed, err := transformer.Parse(rendered)
	require.NoError(t, err)
	require.Equal(t, "My project", parsed.Description())
	require.True(t, years(2010, 2024).Equal(parsed.Copyright()))
	require.Equal(t, "Line one\nLine two", parsed.License())
}

func TestTextTransformerCustomDelimiter(t *testing.T) {
	transformer := &TextTransformer{SectionDelimiter: "---"}
	h := NewFileHeader("desc", years(2010, 0), "lic")

	rendered := transformer.Render(h)
	require.Equal(t, "desc\n---\nCopyright (C) 2010 Acme\n---\nlic\n", rendered)

	_, err := (&TextTransformer{}).Parse(rendered)
	require.True(t, errors.Is(err, ErrMalformedHeader))

	parsed, err := transformer.Parse(rendered)
	require.NoError(t, err)
	require.True(t, transformer.IsLicenseEqual(h, parsed))
}

func TestTextTransformerParseErrors(t *testing.T) {
	transformer := &TextTransformer{}

	_, err := transformer.Parse("just a comment")
	require.True(t, errors.Is(err, ErrMalformedHeader))

	_, err = transformer.Parse("desc\n%%\nnot a copyright\n%%\nlicense")
	require.True(t, errors.Is(err, ErrMalformedHeader))
	require.True(t, errors.Is(err, ErrMalformedCopyright))

	_, err = transformer.Parse("a\n%%\nb\n%%\nc\n%%\nd")
	require.True(t, errors.Is(err, ErrMalformedHeader))
}
