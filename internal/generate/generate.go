// Package generate writes boilerplate source files into an existing project:
// features, components, pages, API modules, stores and hooks.
package generate

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/aurimyth/aury-web/internal/branding"
	"github.com/aurimyth/aury-web/internal/naming"
)

//go:embed tmpl/*.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "tmpl/*.tmpl"))

// ErrExists is returned when a file or feature the generator would create is
// already present. Nothing is written in that case.
var ErrExists = errors.New("already exists")

// Options tune a generator run.
type Options struct {
	// Root is the project root; defaults to the working directory.
	Root string
	// BaseURL overrides the API base for API generation.
	BaseURL string
	// Parts selects feature folders; nil means all of them.
	Parts []Part
}

// Result lists what a generator wrote, relative to the project root with
// forward slashes.
type Result struct {
	Kind    Kind
	Name    string
	Files   []string
	Updated []string
	BaseURL string
}

type names struct {
	Pascal      string
	Camel       string
	Kebab       string
	HookName    string
	HookType    string
	BaseURL     string
	CorePackage string
}

func newNames(raw string) (names, error) {
	n := names{
		Pascal:      naming.ToPascalCase(raw),
		Camel:       naming.ToCamelCase(raw),
		Kebab:       naming.ToKebabCase(raw),
		CorePackage: branding.CorePackage(),
	}
	if n.Pascal == "" {
		return n, fmt.Errorf("invalid name %q", raw)
	}
	n.HookName = n.Camel
	if !hasUsePrefix(n.Camel) {
		n.HookName = "use" + n.Pascal
	}
	n.HookType = strings.TrimPrefix(n.HookName, "use")
	n.BaseURL = DefaultBaseURL(raw)
	return n, nil
}

// hasUsePrefix reports whether s already reads as a hook name ("useAuth"),
// which "user" does not.
func hasUsePrefix(s string) bool {
	rest, ok := strings.CutPrefix(s, "use")
	if !ok || rest == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsUpper(r)
}

// DefaultBaseURL is the API base used when none is given.
func DefaultBaseURL(name string) string {
	return "/api/v1/" + naming.ToCamelCase(name) + "s"
}

// file is one planned output.
type file struct {
	path     string
	template string
	content  string
}

type plan struct {
	// guard, when set, is a directory that must not exist yet.
	guard   string
	files   []file
	exports []export
}

type export struct {
	index string
	line  string
}

// Generate runs the generator for k.
func Generate(k Kind, name string, opts Options) (*Result, error) {
	n, err := newNames(name)
	if err != nil {
		return nil, err
	}
	if opts.BaseURL != "" {
		n.BaseURL = opts.BaseURL
	}

	var p plan
	switch k {
	case Feature:
		parts := opts.Parts
		if parts == nil {
			parts = AllParts()
		}
		if len(parts) == 0 {
			return nil, fmt.Errorf("no feature parts selected")
		}
		opts.Parts = parts
		p = featurePlan(n, parts)
	case Component:
		p = componentPlan(n)
	case Page:
		p = pagePlan(n)
	case API:
		p = apiPlan(n)
	case Store:
		p = storePlan(n)
	case Hook:
		p = hookPlan(n)
	default:
		return nil, fmt.Errorf("unsupported generator kind %v", k)
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	res, err := p.apply(root, n)
	if err != nil {
		return nil, err
	}
	res.Kind = k
	res.Name = name
	if k == API || (k == Feature && containsPart(opts.Parts, PartAPI, PartHooks)) {
		res.BaseURL = n.BaseURL
	}
	return res, nil
}

func containsPart(parts []Part, want ...Part) bool {
	if parts == nil {
		return true
	}
	for _, p := range parts {
		for _, w := range want {
			if p == w {
				return true
			}
		}
	}
	return false
}

// ─── Plans ───────────────────────────────────────────────────────────

func featurePlan(n names, parts []Part) plan {
	dir := path.Join("src/features", n.Kebab)
	p := plan{guard: dir}

	var index []string
	for _, part := range parts {
		sub := path.Join(dir, string(part))
		switch part {
		case PartComponents:
			p.files = append(p.files,
				file{path: path.Join(sub, n.Pascal+"Card.tsx"), template: "feature-component.tsx.tmpl"},
				file{path: path.Join(sub, "index.ts"), content: exportLine(n.Pascal + "Card")},
			)
		case PartHooks:
			p.files = append(p.files,
				file{path: path.Join(sub, "use"+n.Pascal+".ts"), template: "feature-hooks.ts.tmpl"},
				file{path: path.Join(sub, "index.ts"), content: exportLine("use" + n.Pascal)},
			)
		case PartAPI:
			p.files = append(p.files,
				file{path: path.Join(sub, n.Kebab+".ts"), template: "feature-api.ts.tmpl"},
				file{path: path.Join(sub, "index.ts"), content: exportLine(n.Kebab)},
			)
		case PartStore:
			p.files = append(p.files,
				file{path: path.Join(sub, n.Camel+"Store.ts"), template: "feature-store.ts.tmpl"},
				file{path: path.Join(sub, "index.ts"), content: exportLine(n.Camel + "Store")},
			)
		case PartTypes:
			p.files = append(p.files, file{path: path.Join(sub, "index.ts"), template: "feature-types.ts.tmpl"})
		}
		index = append(index, exportLine(string(part)))
	}
	p.files = append(p.files, file{path: path.Join(dir, "index.ts"), content: strings.Join(index, "")})
	return p
}

func componentPlan(n names) plan {
	dir := "src/components/common"
	return plan{
		files:   []file{{path: path.Join(dir, n.Pascal+".tsx"), template: "component.tsx.tmpl"}},
		exports: []export{{index: path.Join(dir, "index.ts"), line: exportLine(n.Pascal)}},
	}
}

func pagePlan(n names) plan {
	return plan{
		files: []file{{path: path.Join("src/routes", n.Kebab+".tsx"), template: "page.tsx.tmpl"}},
	}
}

func apiPlan(n names) plan {
	dir := path.Join("src/features", n.Kebab)
	return plan{
		files: []file{
			{path: path.Join(dir, "types", "index.ts"), template: "feature-types.ts.tmpl"},
			{path: path.Join(dir, "api", n.Kebab+".ts"), template: "feature-api.ts.tmpl"},
			{path: path.Join(dir, "api", "index.ts"), content: exportLine(n.Kebab)},
			{path: path.Join(dir, "hooks", "use"+n.Pascal+".ts"), template: "feature-hooks.ts.tmpl"},
			{path: path.Join(dir, "hooks", "index.ts"), content: exportLine("use" + n.Pascal)},
			{path: path.Join(dir, "index.ts"), content: exportLine("api") + exportLine("hooks") + exportLine("types")},
		},
	}
}

func storePlan(n names) plan {
	dir := "src/stores"
	return plan{
		files:   []file{{path: path.Join(dir, n.Camel+"Store.ts"), template: "store.ts.tmpl"}},
		exports: []export{{index: path.Join(dir, "index.ts"), line: exportLine(n.Camel + "Store")}},
	}
}

func hookPlan(n names) plan {
	dir := "src/hooks"
	return plan{
		files:   []file{{path: path.Join(dir, n.HookName+".ts"), template: "hook.ts.tmpl"}},
		exports: []export{{index: path.Join(dir, "index.ts"), line: exportLine(n.HookName)}},
	}
}

func exportLine(module string) string {
	return "export * from './" + module + "'\n"
}

// ─── Apply ───────────────────────────────────────────────────────────

// apply renders every file, refuses if any target exists, then writes.
func (p plan) apply(root string, data names) (*Result, error) {
	if p.guard != "" {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(p.guard))); err == nil {
			return nil, fmt.Errorf("%s: %w", p.guard, ErrExists)
		}
	}

	rendered := make([][]byte, len(p.files))
	for i, f := range p.files {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(f.path))); err == nil {
			return nil, fmt.Errorf("%s: %w", f.path, ErrExists)
		}
		if f.template == "" {
			rendered[i] = []byte(f.content)
			continue
		}
		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, f.template, data); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", f.template, err)
		}
		rendered[i] = buf.Bytes()
	}
	return p.write(root, rendered)
}

func (p plan) write(root string, rendered [][]byte) (*Result, error) {
	res := &Result{}
	for i, f := range p.files {
		dst := filepath.Join(root, filepath.FromSlash(f.path))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", path.Dir(f.path), err)
		}
		if err := os.WriteFile(dst, rendered[i], 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.path, err)
		}
		res.Files = append(res.Files, f.path)
	}
	for _, e := range p.exports {
		changed, err := AppendExport(filepath.Join(root, filepath.FromSlash(e.index)), e.line)
		if err != nil {
			return nil, err
		}
		if changed {
			res.Updated = append(res.Updated, e.index)
		}
	}
	return res, nil
}

// AppendExport adds line to the barrel file at indexPath unless an identical
// line is already there. It reports whether the file changed.
func AppendExport(indexPath, line string) (bool, error) {
	content, err := os.ReadFile(indexPath)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("reading %s: %w", indexPath, err)
	}

	want := strings.TrimRight(line, "\n")
	for _, l := range strings.Split(string(content), "\n") {
		if strings.TrimRight(l, "\r") == want {
			return false, nil
		}
	}

	out := string(content)
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	out += want + "\n"

	if err := os.MkdirAll(filepath.Dir(indexPath), 0o755); err != nil {
		return false, fmt.Errorf("creating %s: %w", filepath.Dir(indexPath), err)
	}
	if err := os.WriteFile(indexPath, []byte(out), 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", indexPath, err)
	}
	return true, nil
}
