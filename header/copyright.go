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
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrMalformedCopyright is returned when a copyright notice cannot be parsed.
var ErrMalformedCopyright = errors.New("malformed copyright notice")

var copyrightRegex = regexp.MustCompile(`(?i)^copyright\s*(?:\(c\)|©)?\s*(\d{4})(?:\s*[-,]\s*(\d{4}))?\s+(\S.*)$`)

// Copyright is a copyright notice: a holder and the range of years the
// notice covers. LastYear is nil when the range is a single year; a LastYear
// that is not after FirstYear is treated the same way.
type Copyright struct {
	Holder    string
	FirstYear int
	LastYear  *int
}

// NewCopyright constructs a Copyright. A last year equal to the first year
// collapses into a single year notice.
func NewCopyright(holder string, firstYear, lastYear int) (Copyright, error) {
	if lastYear != 0 && lastYear < firstYear {
		return Copyright{}, errors.Newf("last year %d is before first year %d", lastYear, firstYear)
	}

	c := Copyright{Holder: holder, FirstYear: firstYear}
	if lastYear > firstYear {
		c.LastYear = &lastYear
	}
	return c, nil
}

// ParseCopyright parses a notice of the form
// "Copyright (C) 2010 - 2024 Holder".
func ParseCopyright(text string) (Copyright, error) {
	text = strings.Join(strings.Fields(text), " ")

	matches := copyrightRegex.FindStringSubmatch(text)
	if matches == nil {
		return Copyright{}, errors.Wrapf(ErrMalformedCopyright, "%q", text)
	}

	first, err := strconv.Atoi(matches[1])
	if err != nil {
		return Copyright{}, errors.Wrapf(ErrMalformedCopyright, "%q: %v", text, err)
	}

	last := 0
	if matches[2] != "" {
		if last, err = strconv.Atoi(matches[2]); err != nil {
			return Copyright{}, errors.Wrapf(ErrMalformedCopyright, "%q: %v", text, err)
		}
	}

	c, err := NewCopyright(matches[3], first, last)
	if err != nil {
		return Copyright{}, errors.Wrapf(ErrMalformedCopyright, "%q: %v", text, err)
	}
	return c, nil
}

// Clone returns a deep copy of c.
func (c Copyright) Clone() Copyright {
	clone := Copyright{Holder: c.Holder, FirstYear: c.FirstYear}
	if c.LastYear != nil {
		last := *c.LastYear
		clone.LastYear = &last
	}
	return clone
}

// lastYear returns the end of the range, or false for a single year.
func (c Copyright) lastYear() (int, bool) {
	if c.LastYear == nil || *c.LastYear <= c.FirstYear {
		return 0, false
	}
	return *c.LastYear, true
}

// Equal reports whether the holder and both years of c and other match.
func (c Copyright) Equal(other Copyright) bool {
	if c.Holder != other.Holder || c.FirstYear != other.FirstYear {
		return false
	}
	a, aok := c.lastYear()
	b, bok := other.lastYear()
	return aok == bok && a == b
}

// Extend returns a copy of c whose year range includes year.
func (c Copyright) Extend(year int) Copyright {
	extended := c.Clone()
	last, ok := c.lastYear()
	if !ok {
		last = c.FirstYear
		extended.LastYear = nil
	}

	switch {
	case year < extended.FirstYear:
		extended.FirstYear = year
		extended.LastYear = &last
	case year > last:
		extended.LastYear = &year
	}

	return extended
}

// Years formats the year range, e.g. "2010" or "2010 - 2024".
func (c Copyright) Years() string {
	last, ok := c.lastYear()
	if !ok {
		return strconv.Itoa(c.FirstYear)
	}
	return fmt.Sprintf("%d - %d", c.FirstYear, last)
}

func (c Copyright) String() string {
	return fmt.Sprintf("Copyright (C) %s %s", c.Years(), c.Holder)
}
