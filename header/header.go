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

// Package header models the description, copyright and license block found
// at the top of a source file, and decides when an existing block needs to be
// replaced by a freshly computed one.
//
// A rendered header has three sections separated by a delimiter line:
//
//	Description
//	%%
//	Copyright (C) firstYear[ - lastYear] holder
//	%%
//	License
package header

// FileHeader is an immutable header value. The copyright is owned
// exclusively: it is cloned on the way in and on the way out.
type FileHeader struct {
	description string
	copyright   Copyright
	license     string
}

// NewFileHeader constructs a FileHeader.
func NewFileHeader(description string, copyright Copyright, license string) FileHeader {
	return FileHeader{
		description: description,
		copyright:   copyright.Clone(),
		license:     license,
	}
}

// Description returns the project or module description.
func (h FileHeader) Description() string {
	return h.description
}

// Copyright returns a copy of the header's copyright notice.
func (h FileHeader) Copyright() Copyright {
	return h.copyright.Clone()
}

// License returns the per-file license summary. This is not the full license
// text.
func (h FileHeader) License() string {
	return h.license
}

func (h FileHeader) withDescription(description string) FileHeader {
	h.description = description
	return h
}

func (h FileHeader) withCopyright(copyright Copyright) FileHeader {
	h.copyright = copyright.Clone()
	return h
}

func (h FileHeader) withLicense(license string) FileHeader {
	h.license = license
	return h
}

func (h FileHeader) clone() FileHeader {
	return NewFileHeader(h.description, h.copyright, h.license)
}
