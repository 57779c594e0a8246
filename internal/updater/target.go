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
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/redpanda-data/common-go/licenseupdater/header"
	"github.com/redpanda-data/common-go/licenseupdater/internal/config"
)

// Renderer renders a named template with a set of variables.
type Renderer interface {
	Render(name string, vars map[string]any) (string, error)
}

// variables returns the template variables describing the project, as seen
// from the file at path.
func (u *Updater) variables(path string, match *config.Match) map[string]any {
	year := u.now().Year()
	first := u.config.InceptionYear
	if first == 0 || first > year {
		first = year
	}

	years := strconv.Itoa(first)
	if first != year {
		years += " - " + strconv.Itoa(year)
	}

	return map[string]any{
		"Project":        u.config.Project,
		"Description":    u.config.Description,
		"Organization":   u.config.GetOrganization(),
		"Year":           year,
		"InceptionYear":  first,
		"CopyrightYears": years,
		"License":        match.License,
		"File":           path,
	}
}

// targetHeader renders the header the file at path should carry.
func (u *Updater) targetHeader(path string, match *config.Match) (header.FileHeader, error) {
	vars := u.variables(path, match)

	description, err := u.renderer.Render(u.config.GetDescriptionTemplate(), vars)
	if err != nil {
		return header.FileHeader{}, err
	}

	notice, err := u.renderer.Render(u.config.GetCopyrightTemplate(), vars)
	if err != nil {
		return header.FileHeader{}, err
	}
	copyright, err := header.ParseCopyright(notice)
	if err != nil {
		return header.FileHeader{}, errors.Wrapf(err, "template %q", u.config.GetCopyrightTemplate())
	}

	license, err := u.renderer.Render(u.config.GetLicenseTemplate(match), vars)
	if err != nil {
		return header.FileHeader{}, err
	}

	return header.NewFileHeader(strings.TrimSpace(description), copyright, license), nil
}

// keepFirstYear widens the target copyright back to the first year of the
// current one when both name the same holder, so a range never loses years.
func keepFirstYear(current, target header.FileHeader) header.FileHeader {
	was, want := current.Copyright(), target.Copyright()
	if strings.TrimSpace(was.Holder) != strings.TrimSpace(want.Holder) || was.FirstYear >= want.FirstYear {
		return target
	}
	return header.NewFileHeader(target.Description(), want.Extend(was.FirstYear), target.License())
}
