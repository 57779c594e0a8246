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

	"github.com/redpanda-data/common-go/licenseupdater/internal/log"
)

// Flags gate which header fields may be overwritten. A field whose flag is
// unset is always kept, however much the target differs.
type Flags struct {
	UpdateDescription bool `yaml:"update_description" json:"update_description"`
	UpdateCopyright   bool `yaml:"update_copyright" json:"update_copyright"`
	UpdateLicense     bool `yaml:"update_license" json:"update_license"`
}

// Any reports whether at least one field may be updated.
func (f Flags) Any() bool {
	return f.UpdateDescription || f.UpdateCopyright || f.UpdateLicense
}

// ComputeUpdatedHeader merges newHeader into oldHeader field by field. A field
// is taken from newHeader only when its flag is set and transformer reports it
// as different. The returned bool is false when no field was taken, in which
// case the returned header is the zero value and must not be written.
func ComputeUpdatedHeader(ctx context.Context, oldHeader, newHeader FileHeader, transformer Transformer, flags Flags) (FileHeader, bool) {
	logger := log.FromContext(ctx).V(1)

	result := oldHeader.clone()
	modified := false

	if flags.UpdateDescription && !transformer.IsDescriptionEqual(oldHeader, newHeader) {
		logger.Info("description has changed", "from", oldHeader.description, "to", newHeader.description)
		result = result.withDescription(newHeader.description)
		modified = true
	}

	if flags.UpdateCopyright && !transformer.IsCopyrightEqual(oldHeader, newHeader) {
		logger.Info("copyright has changed", "from", oldHeader.copyright.String(), "to", newHeader.copyright.String())
		result = result.withCopyright(newHeader.copyright)
		modified = true
	}

	if flags.UpdateLicense && !transformer.IsLicenseEqual(oldHeader, newHeader) {
		logger.Info("license has changed", "from", oldHeader.license, "to", newHeader.license)
		result = result.withLicense(newHeader.license)
		modified = true
	}

	if !modified {
		return FileHeader{}, false
	}
	return result, true
}

// UpdateFilter binds a Transformer and a set of Flags so the same update
// policy can be applied to many files.
type UpdateFilter struct {
	Transformer Transformer
	Flags       Flags
}

// Update is ComputeUpdatedHeader with the filter's transformer and flags.
func (f *UpdateFilter) Update(ctx context.Context, oldHeader, newHeader FileHeader) (FileHeader, bool) {
	return ComputeUpdatedHeader(ctx, oldHeader, newHeader, f.Transformer, f.Flags)
}
