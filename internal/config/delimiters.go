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

package config

// Delimiter describes how a header block is embedded in a file: an optional
// opening line, a per-line prefix, and an optional closing line.
type Delimiter struct {
	Top    string `yaml:"top" json:"top"`
	Middle string `yaml:"middle" json:"middle"`
	Bottom string `yaml:"bottom" json:"bottom"`
}

var (
	EmptyDelimiter    = Delimiter{}
	builtinDelimiters = map[string]Delimiter{
		"go":   {Middle: "//"},
		"yaml": {Middle: "#"},
		"helm": {Top: "{{/*", Bottom: "*/}}"},
	}
)
