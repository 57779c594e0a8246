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

// Package templates renders the text that goes into file headers:
// descriptions, copyright notices and license summaries.
package templates

import (
	"bytes"
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing/fstest"
	"text/template"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/singleflight"
)

const extension = ".tmpl"

// ContentTemplate is the logical name inline template content is registered
// under by NewRendererFromContent.
const ContentTemplate = "template"

var (
	//go:embed files/*
	embedded embed.FS

	// Default holds the templates shipped with this package.
	Default = mustSub(embedded, "files")
)

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// LicenseHeader returns the logical name of the header summary template for
// a license identifier such as "apache" or "MIT".
func LicenseHeader(license string) string {
	return strings.ToUpper(license) + ".header" + extension
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFS sets the filesystem logical template names are resolved against.
func WithFS(fsys fs.FS) Option {
	return func(r *Renderer) {
		r.fsys = fsys
	}
}

// WithFuncs adds functions available to every template.
func WithFuncs(funcs template.FuncMap) Option {
	return func(r *Renderer) {
		for name, fn := range funcs {
			r.funcs[name] = fn
		}
	}
}

// WithClock overrides the time source behind the "year" function.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// Renderer resolves, compiles and executes templates. Compiled templates are
// cached under the name they were first requested by for the lifetime of
// the Renderer. A Renderer is safe for concurrent use and compiles each name
// at most once.
type Renderer struct {
	fsys  fs.FS
	funcs template.FuncMap
	now   func() time.Time

	mu       sync.RWMutex
	cache    map[string]*template.Template
	group    singleflight.Group
	compiles atomic.Int64
}

// NewRenderer returns a Renderer resolving logical names against Default
// unless WithFS is given.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		fsys:  Default,
		now:   time.Now,
		cache: map[string]*template.Template{},
	}
	r.funcs = template.FuncMap{
		"year":  func() int { return r.now().Year() },
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		"trim":  strings.TrimSpace,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewRendererFromContent returns a Renderer whose only logical template is
// content, registered as ContentTemplate. Names that are filesystem paths
// still resolve to files.
func NewRendererFromContent(content string, opts ...Option) *Renderer {
	fsys := fstest.MapFS{
		ContentTemplate + extension: &fstest.MapFile{Data: []byte(content), Mode: 0o644},
	}
	return NewRenderer(append([]Option{WithFS(fsys)}, opts...)...)
}

// Render executes the template identified by name with vars. The name is
// first tried as a filesystem path, then as a logical template name.
func (r *Renderer) Render(name string, vars map[string]any) (string, error) {
	tmpl, err := r.Template(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", &RenderError{Name: name, Err: err}
	}
	return buf.String(), nil
}

// Has reports whether name resolves to a template, compiling and caching it
// if so.
func (r *Renderer) Has(name string) bool {
	_, err := r.Template(name)
	return err == nil
}

// Template returns the compiled template for name.
func (r *Renderer) Template(name string) (*template.Template, error) {
	r.mu.RLock()
	tmpl, ok := r.cache[name]
	r.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	v, err, _ := r.group.Do(name, func() (any, error) {
		r.mu.RLock()
		tmpl, ok := r.cache[name]
		r.mu.RUnlock()
		if ok {
			return tmpl, nil
		}

		tmpl, err := r.compile(name)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.cache[name] = tmpl
		r.mu.Unlock()
		return tmpl, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*template.Template), nil
}

func (r *Renderer) newTemplate(name string) *template.Template {
	return template.New(name).Funcs(r.funcs).Option("missingkey=error")
}

func (r *Renderer) compile(name string) (*template.Template, error) {
	if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
		return r.compileFile(name)
	}
	return r.compileLogical(name)
}

// compileFile parses a template from disk. Sibling templates in the same
// directory are parsed alongside it so they can be included by name.
func (r *Renderer) compileFile(name string) (*template.Template, error) {
	r.compiles.Add(1)

	siblings, err := filepath.Glob(filepath.Join(filepath.Dir(name), "*"+extension))
	if err != nil {
		return nil, &RenderError{Name: name, Err: err}
	}

	files := []string{name}
	for _, sibling := range siblings {
		if filepath.Clean(sibling) != filepath.Clean(name) {
			files = append(files, sibling)
		}
	}

	tmpl, err := r.newTemplate(filepath.Base(name)).ParseFiles(files...)
	if err != nil {
		return nil, &RenderError{Name: name, Err: err}
	}
	return tmpl, nil
}

func (r *Renderer) compileLogical(name string) (*template.Template, error) {
	resolved, ok := r.resolve(name)
	if !ok {
		return nil, errors.Wrapf(ErrTemplateNotFound, "could not find template %q", name)
	}

	r.compiles.Add(1)

	patterns := []string{resolved}
	others, err := fs.Glob(r.fsys, path.Join(path.Dir(resolved), "*"+extension))
	if err != nil {
		return nil, &RenderError{Name: name, Err: err}
	}
	for _, other := range others {
		if other != resolved {
			patterns = append(patterns, other)
		}
	}

	tmpl, err := r.newTemplate(path.Base(resolved)).ParseFS(r.fsys, patterns...)
	if err != nil {
		return nil, &RenderError{Name: name, Err: err}
	}
	return tmpl, nil
}

func (r *Renderer) resolve(name string) (string, bool) {
	if r.fsys == nil {
		return "", false
	}

	name = strings.TrimPrefix(filepath.ToSlash(name), "/")
	candidates := []string{name}
	if !strings.HasSuffix(name, extension) {
		candidates = append(candidates, name+extension)
	}

	for _, candidate := range candidates {
		if !fs.ValidPath(candidate) {
			continue
		}
		if fi, err := fs.Stat(r.fsys, candidate); err == nil && !fi.IsDir() {
			return candidate, true
		}
	}
	return "", false
}
