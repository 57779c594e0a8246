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
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// strictTransformer compares fields exactly.
type strictTransformer struct{}

func (strictTransformer) IsDescriptionEqual(oldHeader, newHeader FileHeader) bool {
	return oldHeader.Description() == newHeader.Description()
}

func (strictTransformer) IsCopyrightEqual(oldHeader, newHeader FileHeader) bool {
	return oldHeader.Copyright().Equal(newHeader.Copyright())
}

func (strictTransformer) IsLicenseEqual(oldHeader, newHeader FileHeader) bool {
	return oldHeader.License() == newHeader.License()
}

func (strictTransformer) Render(h FileHeader) string {
	return fmt.Sprintf("%s|%s|%s", h.Description(), h.Copyright(), h.License())
}

func allFlags() []Flags {
	var flags []Flags
	for i := 0; i < 8; i++ {
		flags = append(flags, Flags{
			UpdateDescription: i&1 != 0,
			UpdateCopyright:   i&2 != 0,
			UpdateLicense:     i&4 != 0,
		})
	}
	return flags
}

func requireHeaderEqual(t *testing.T, expected, actual FileHeader) {
	t.Helper()

	require.Equal(t, expected.Description(), actual.Description())
	require.True(t, expected.Copyright().Equal(actual.Copyright()), "expected %s, got %s", expected.Copyright(), actual.Copyright())
	require.Equal(t, expected.License(), actual.License())
}

func TestComputeUpdatedHeaderScenarios(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		Name      string
		Old       FileHeader
		New       FileHeader
		Flags     Flags
		Expected  FileHeader
		Unchanged bool
	}{
		{
			Name:     "copyright year bump",
			Old:      NewFileHeader("Foo", years(2010, 0), "GPL"),
			New:      NewFileHeader("Foo", years(2010, 2024), "GPL"),
			Flags:    Flags{UpdateCopyright: true},
			Expected: NewFileHeader("Foo", years(2010, 2024), "GPL"),
		},
		{
			Name:      "identical headers",
			Old:       NewFileHeader("Foo", years(2010, 0), "GPL"),
			New:       NewFileHeader("Foo", years(2010, 0), "GPL"),
			Flags:     Flags{UpdateDescription: true, UpdateCopyright: true, UpdateLicense: true},
			Unchanged: true,
		},
		{
			Name:      "license differs but is frozen",
			Old:       NewFileHeader("Foo", years(2010, 0), "GPL"),
			New:       NewFileHeader("Foo", years(2010, 0), "MIT"),
			Flags:     Flags{UpdateDescription: true, UpdateCopyright: true},
			Unchanged: true,
		},
		{
			Name:     "everything differs",
			Old:      NewFileHeader("Foo", years(2010, 0), "GPL"),
			New:      NewFileHeader("Bar", years(2012, 2024), "MIT"),
			Flags:    Flags{UpdateDescription: true, UpdateCopyright: true, UpdateLicense: true},
			Expected: NewFileHeader("Bar", years(2012, 2024), "MIT"),
		},
		{
			Name:     "only permitted fields move",
			Old:      NewFileHeader("Foo", years(2010, 0), "GPL"),
			New:      NewFileHeader("Bar", years(2012, 2024), "MIT"),
			Flags:    Flags{UpdateLicense: true},
			Expected: NewFileHeader("Foo", years(2010, 0), "MIT"),
		},
		{
			Name:      "no flags",
			Old:       NewFileHeader("Foo", years(2010, 0), "GPL"),
			New:       NewFileHeader("Bar", years(2012, 2024), "MIT"),
			Unchanged: true,
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			result, changed := ComputeUpdatedHeader(ctx, tt.Old, tt.New, strictTransformer{}, tt.Flags)
			if tt.Unchanged {
				require.False(t, changed)
				require.Equal(t, FileHeader{}, result)
				return
			}
			require.True(t, changed)
			requireHeaderEqual(t, tt.Expected, result)
		})
	}
}

func TestComputeUpdatedHeaderIdempotent(t *testing.T) {
	ctx := context.Background()
	h := NewFileHeader("Foo", years(2010, 2024), "GPL")

	for _, transformer := range []Transformer{strictTransformer{}, &TextTransformer{}} {
		for _, flags := range allFlags() {
			_, changed := ComputeUpdatedHeader(ctx, h, h, transformer, flags)
			require.False(t, changed, "flags %+v", flags)
		}
	}
}

func TestComputeUpdatedHeaderFlagGatingAndIndependence(t *testing.T) {
	ctx := context.Background()
	oldHeader := NewFileHeader("Foo", years(2010, 0), "GPL")
	newHeader := NewFileHeader("Bar", years(2010, 2024), "MIT")

	for _, flags := range allFlags() {
		result, changed := ComputeUpdatedHeader(ctx, oldHeader, newHeader, strictTransformer{}, flags)

		// every field differs, so any permitted field must produce a change
		require.Equal(t, flags.Any(), changed, "flags %+v", flags)
		if !changed {
			continue
		}

		if flags.UpdateDescription {
			require.Equal(t, "Bar", result.Description())
		} else {
			require.Equal(t, "Foo", result.Description())
		}

		if flags.UpdateCopyright {
			require.True(t, newHeader.Copyright().Equal(result.Copyright()))
		} else {
			require.True(t, oldHeader.Copyright().Equal(result.Copyright()))
		}

		if flags.UpdateLicense {
			require.Equal(t, "MIT", result.License())
		} else {
			require.Equal(t, "GPL", result.License())
		}
	}
}

func TestComputeUpdatedHeaderDelegatesEquality(t *testing.T) {
	ctx := context.Background()
	oldHeader := NewFileHeader("Foo", years(2010, 0), "GPL\n")
	newHeader := NewFileHeader("Foo  ", years(2010, 0), "GPL")
	flags := Flags{UpdateDescription: true, UpdateLicense: true}

	_, changed := ComputeUpdatedHeader(ctx, oldHeader, newHeader, &TextTransformer{}, flags)
	require.False(t, changed)

	result, changed := ComputeUpdatedHeader(ctx, oldHeader, newHeader, strictTransformer{}, flags)
	require.True(t, changed)
	require.Equal(t, "Foo  ", result.Description())
	require.Equal(t, "GPL", result.License())
}

func TestComputeUpdatedHeaderCopyIsolation(t *testing.T) {
	ctx := context.Background()
	oldHeader := NewFileHeader("Foo", years(2010, 2020), "GPL")
	newHeader := NewFileHeader("Bar", years(2010, 2024), "GPL")

	for _, flags := range []Flags{{UpdateDescription: true}, {UpdateCopyright: true}} {
		result, changed := ComputeUpdatedHeader(ctx, oldHeader, newHeader, strictTransformer{}, flags)
		require.True(t, changed)

		require.NotSame(t, oldHeader.copyright.LastYear, result.copyright.LastYear)
		require.NotSame(t, newHeader.copyright.LastYear, result.copyright.LastYear)

		*result.copyright.LastYear = 1999
		result.copyright.Holder = "Mutated"

		require.Equal(t, 2020, *oldHeader.copyright.LastYear)
		require.Equal(t, 2024, *newHeader.copyright.LastYear)
		require.Equal(t, "Acme", oldHeader.copyright.Holder)
		require.Equal(t, "Acme", newHeader.copyright.Holder)
	}
}

func TestUpdateFilter(t *testing.T) {
	filter := &UpdateFilter{
		Transformer: &TextTransformer{},
		Flags:       Flags{UpdateCopyright: true},
	}

	result, changed := filter.Update(context.Background(),
		NewFileHeader("Foo", years(2010, 0), "GPL"),
		NewFileHeader("Bar", years(2010, 2024), "MIT"),
	)
	require.True(t, changed)
	requireHeaderEqual(t, NewFileHeader("Foo", years(2010, 2024), "GPL"), result)
}
