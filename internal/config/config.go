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

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"sigs.k8s.io/yaml"

	"github.com/redpanda-data/common-go/licenseupdater/header"
	"github.com/redpanda-data/common-go/licenseupdater/templates"
)

const (
	DefaultOrganization = "Redpanda Data, Inc."
	envPrefix           = "LICENSEUPDATER"
)

// TemplateSet reports which template names can be rendered.
type TemplateSet interface {
	Has(name string) bool
}

// Templates names the templates each header section is rendered from. Names
// are either filesystem paths or logical template names.
type Templates struct {
	Description string `yaml:"description" json:"description"`
	Copyright   string `yaml:"copyright" json:"copyright"`
	License     string `yaml:"license" json:"license"`
}

type Match struct {
	Name      string    `yaml:"name" json:"name"`
	Match     string    `yaml:"match" json:"match"`
	Directory string    `yaml:"directory" json:"directory"`
	Extension string    `yaml:"extension" json:"extension"`
	License   string    `yaml:"license" json:"license"`
	Template  string    `yaml:"template" json:"template"`
	Type      string    `yaml:"type" json:"type"`
	Delimiter Delimiter `yaml:"delimiter" json:"delimiter"`

	matchRegex *regexp.Regexp
}

func (m *Match) GetDelimiter() Delimiter {
	if m.Type != "" {
		return builtinDelimiters[m.Type]
	}
	return m.Delimiter
}

//nolint:cyclop // complexity is ok for initialization and validation
func (m *Match) initializeAndValidate(checkLicense bool) error {
	errs := []error{}

	if m.Match != "" {
		matchRegex, err := regexp.Compile(strings.TrimSpace(m.Match))
		if err != nil {
			errs = append(errs, err)
		}
		m.matchRegex = matchRegex
	}

	if checkLicense {
		if m.License == "" && m.Template == "" {
			errs = append(errs, errors.New("must specify a license or template for every match"))
		}

		if m.Type != "" {
			if _, ok := builtinDelimiters[m.Type]; !ok {
				errs = append(errs, fmt.Errorf("invalid builtin delimiter type: %q", m.Type))
			}
		}

		if m.Type == "" && m.Delimiter == EmptyDelimiter {
			errs = append(errs, errors.New("must either specify a delimiter or builtin delimiter type"))
		}

		if m.Type != "" && m.Delimiter != EmptyDelimiter {
			errs = append(errs, errors.New("must only specify one of delimiter or builtin delimiter type"))
		}

		if m.Type == "" && m.Delimiter != EmptyDelimiter && m.Delimiter.Middle == "" && (m.Delimiter.Top == "" || m.Delimiter.Bottom == "") {
			errs = append(errs, errors.New("delimiter must have a middle prefix or both top and bottom lines"))
		}
	}

	if m.hasMultipleMatchers() {
		errs = append(errs, errors.New("must only specify one of name, directory, or match"))
	}

	if !m.hasBaseMatcher() && m.Extension == "" {
		errs = append(errs, errors.New("must specify some match rule"))
	}

	return errors.Join(errs...)
}

func (m *Match) hasBaseMatcher() bool {
	return m.Name != "" || m.Match != "" || m.Directory != ""
}

func (m *Match) hasMultipleMatchers() bool {
	i := 0
	if m.Name != "" {
		i++
	}
	if m.Match != "" {
		i++
	}
	if m.Directory != "" {
		i++
	}
	return i > 1
}

func (m *Match) doExtensionMatch(path string) bool {
	if m.Extension == "" {
		return true
	}

	return filepath.Ext(path) == m.Extension
}

func (m *Match) doMatch(path string) bool {
	if m.Name != "" && filepath.Base(path) == m.Name {
		return m.doExtensionMatch(path)
	}
	if m.Match != "" && m.matchRegex != nil && m.matchRegex.MatchString(path) {
		return m.doExtensionMatch(path)
	}
	if m.Directory != "" && strings.HasPrefix(path, m.Directory) {
		return m.doExtensionMatch(path)
	}

	if !m.hasBaseMatcher() {
		// we only want to do a fallback extension match
		// if we have no other filter at this point
		return m.doExtensionMatch(path)
	}

	return false
}

type Config struct {
	Path             string    `yaml:"path" json:"path"`
	Organization     string    `yaml:"organization" json:"organization"`
	Project          string    `yaml:"project" json:"project"`
	Description      string    `yaml:"description" json:"description"`
	InceptionYear    int       `yaml:"inception_year" json:"inception_year"`
	SectionDelimiter string    `yaml:"section_delimiter" json:"section_delimiter"`
	AddMissing       bool      `yaml:"add_missing" json:"add_missing"`
	Templates        Templates `yaml:"templates" json:"templates"`
	Matches          []*Match  `yaml:"matches" json:"matches"`
	Ignore           []*Match  `yaml:"ignore" json:"ignore"`

	header.Flags
}

// Load reads the YAML config at path and validates it against the
// templates available in set.
func Load(path string, set TemplateSet) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user's responsibility for security of passed file here
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %q", path)
	}

	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrapf(err, "parsing config %q", path)
	}

	if err := c.InitializeAndValidate(set); err != nil {
		return nil, err
	}

	return c, nil
}

// LoadWithEnv is Load with LICENSEUPDATER_* environment variables applied on
// top of the file, e.g. LICENSEUPDATER_UPDATE_COPYRIGHT=true.
func LoadWithEnv(path string, set TemplateSet) (*Config, error) {
	c, err := Load(path, set)
	if err != nil {
		return nil, err
	}

	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyEnv() error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)

	keys := []string{
		"path", "organization", "project", "description", "inception_year",
		"add_missing", "update_description", "update_copyright", "update_license",
	}
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return errors.Wrapf(err, "binding %s", key)
		}
	}

	if v.IsSet("path") {
		c.Path = v.GetString("path")
	}
	if v.IsSet("organization") {
		c.Organization = v.GetString("organization")
	}
	if v.IsSet("project") {
		c.Project = v.GetString("project")
	}
	if v.IsSet("description") {
		c.Description = v.GetString("description")
	}
	if v.IsSet("inception_year") {
		c.InceptionYear = v.GetInt("inception_year")
	}
	if v.IsSet("add_missing") {
		c.AddMissing = v.GetBool("add_missing")
	}
	if v.IsSet("update_description") {
		c.UpdateDescription = v.GetBool("update_description")
	}
	if v.IsSet("update_copyright") {
		c.UpdateCopyright = v.GetBool("update_copyright")
	}
	if v.IsSet("update_license") {
		c.UpdateLicense = v.GetBool("update_license")
	}

	return nil
}

func (c *Config) GetPath() string {
	if c.Path == "" {
		return "."
	}
	return c.Path
}

func (c *Config) GetOrganization() string {
	if c.Organization == "" {
		return DefaultOrganization
	}
	return c.Organization
}

func (c *Config) GetSectionDelimiter() string {
	if c.SectionDelimiter == "" {
		return header.DefaultSectionDelimiter
	}
	return c.SectionDelimiter
}

func (c *Config) GetDescriptionTemplate() string {
	if c.Templates.Description == "" {
		return "description"
	}
	return c.Templates.Description
}

func (c *Config) GetCopyrightTemplate() string {
	if c.Templates.Copyright == "" {
		return "copyright"
	}
	return c.Templates.Copyright
}

// GetLicenseTemplate returns the license summary template for files matched
// by m: the match's own template, then the config wide template, then the
// builtin header of the match's license.
func (c *Config) GetLicenseTemplate(m *Match) string {
	if m.Template != "" {
		return m.Template
	}
	if c.Templates.License != "" {
		return c.Templates.License
	}
	return templates.LicenseHeader(m.License)
}

func (c *Config) InitializeAndValidate(set TemplateSet) error {
	errs := []error{}

	if len(c.Matches) == 0 {
		errs = append(errs, errors.New("must specify at least one match"))
	}

	if c.InceptionYear < 0 {
		errs = append(errs, fmt.Errorf("invalid inception year: %d", c.InceptionYear))
	}

	if strings.TrimSpace(c.GetSectionDelimiter()) == "" {
		errs = append(errs, errors.New("section delimiter must not be blank"))
	}

	for _, match := range c.Matches {
		if err := match.initializeAndValidate(true); err != nil {
			errs = append(errs, err)
			continue
		}
		if set != nil {
			if name := c.GetLicenseTemplate(match); !set.Has(name) {
				errs = append(errs, fmt.Errorf("invalid license template: %q", name))
			}
		}
	}

	for _, match := range c.Ignore {
		if err := match.initializeAndValidate(false); err != nil {
			errs = append(errs, err)
		}
	}

	if set != nil {
		for _, name := range []string{c.GetDescriptionTemplate(), c.GetCopyrightTemplate()} {
			if !set.Has(name) {
				errs = append(errs, fmt.Errorf("invalid template: %q", name))
			}
		}
	}

	return errors.Join(errs...)
}

// MatchFile returns the first match rule selecting path, unless an ignore
// rule excludes it.
func (c *Config) MatchFile(path string) (*Match, bool) {
	for _, match := range c.Ignore {
		if match.doMatch(path) {
			return nil, false
		}
	}

	for _, match := range c.Matches {
		if match.doMatch(path) {
			return match, true
		}
	}

	return nil, false
}
