package scaffold

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Directory names inside a templates root.
const (
	BaseDir   = "base"
	ThemesDir = "themes"
)

// excludedNames are never copied out of a template tree.
var excludedNames = map[string]bool{
	"node_modules": true,
	".git":         true,
}

// Layer identifies which template tree produced an entry.
type Layer int

const (
	LayerBase Layer = iota
	LayerTheme
)

func (l Layer) String() string {
	if l == LayerTheme {
		return "theme"
	}
	return "base"
}

// EntryKind distinguishes directories from files in a manifest.
type EntryKind int

const (
	KindDir EntryKind = iota
	KindFile
)

// Entry is one materialized path, relative to the target directory and
// slash-separated.
type Entry struct {
	Path  string
	Kind  EntryKind
	Layer Layer
}

// Result holds the outcome of a materialization.
type Result struct {
	TargetDir    string
	Entries      []Entry
	ThemeApplied bool
}

// Files returns the relative paths of all written files in write order. A path
// overwritten by the theme layer appears twice.
func (r *Result) Files() []string {
	var files []string
	for _, e := range r.Entries {
		if e.Kind == KindFile {
			files = append(files, e.Path)
		}
	}
	return files
}

// Materialize copies the base tree of src into targetDir and then, if
// themes/<templateName> exists in src, overlays it so theme files win on path
// collisions. Placeholders are substituted in every text file written.
//
// A missing base tree or an invalid template name yields a
// *ConfigurationError before anything is written. Filesystem failures yield
// an *IOError and may leave targetDir partially populated.
func Materialize(src fs.FS, templateName, targetDir string, r Replacements) (*Result, error) {
	if !validTemplateName(templateName) {
		return nil, &ConfigurationError{Template: templateName, Reason: "invalid template name"}
	}

	info, err := fs.Stat(src, BaseDir)
	if err != nil {
		return nil, &ConfigurationError{Template: templateName, Reason: "base template tree not found", Err: err}
	}
	if !info.IsDir() {
		return nil, &ConfigurationError{Template: templateName, Reason: "base template tree is not a directory"}
	}

	rep := r.replacer()
	result := &Result{TargetDir: targetDir}

	entries, err := copyTree(src, BaseDir, targetDir, rep, LayerBase)
	result.Entries = append(result.Entries, entries...)
	if err != nil {
		return result, err
	}

	if templateName == "" {
		return result, nil
	}

	themeRoot := path.Join(ThemesDir, templateName)
	if !isDir(src, themeRoot) {
		return result, nil
	}

	entries, err = copyTree(src, themeRoot, targetDir, rep, LayerTheme)
	result.Entries = append(result.Entries, entries...)
	if err != nil {
		return result, err
	}
	result.ThemeApplied = true

	return result, nil
}

// CopyTree copies the tree rooted at root in src into targetDir with the same
// exclusion and substitution rules as Materialize. A missing root is an
// *IOError.
func CopyTree(src fs.FS, root, targetDir string, r Replacements) ([]Entry, error) {
	if !isDir(src, root) {
		return nil, &IOError{Op: "read", Path: root, Err: fs.ErrNotExist}
	}
	return copyTree(src, root, targetDir, r.replacer(), LayerBase)
}

// HasTheme reports whether src contains a theme tree named name.
func HasTheme(src fs.FS, name string) bool {
	return name != "" && validTemplateName(name) && isDir(src, path.Join(ThemesDir, name))
}

// Excluded reports whether an entry with this base name is skipped during copy.
func Excluded(name string) bool {
	return excludedNames[name]
}

func copyTree(src fs.FS, root, targetDir string, rep *strings.Replacer, layer Layer) ([]Entry, error) {
	var entries []Entry

	err := fs.WalkDir(src, root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return &IOError{Op: "read", Path: p, Err: walkErr}
		}
		if p != root && Excluded(d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel := relPath(root, p)
		dst := filepath.Join(targetDir, filepath.FromSlash(rel))

		switch {
		case d.IsDir():
			if err := os.MkdirAll(dst, 0o755); err != nil {
				return &IOError{Op: "mkdir", Path: dst, Err: err}
			}
			if rel != "." {
				entries = append(entries, Entry{Path: rel, Kind: KindDir, Layer: layer})
			}
		case d.Type().IsRegular():
			if err := writeFile(src, p, dst, d, rep); err != nil {
				return err
			}
			entries = append(entries, Entry{Path: rel, Kind: KindFile, Layer: layer})
		}
		// Symlinks and other special files are skipped.
		return nil
	})
	if err != nil {
		var ioErr *IOError
		if !errors.As(err, &ioErr) {
			err = &IOError{Op: "read", Path: root, Err: err}
		}
		return entries, err
	}

	return entries, nil
}

// writeFile substitutes placeholders in a text file and writes it to dst,
// replacing any existing file. Non-UTF-8 content is copied byte-for-byte.
func writeFile(src fs.FS, p, dst string, d fs.DirEntry, rep *strings.Replacer) error {
	data, err := fs.ReadFile(src, p)
	if err != nil {
		return &IOError{Op: "read", Path: p, Err: err}
	}

	if utf8.Valid(data) {
		data = []byte(rep.Replace(string(data)))
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return &IOError{Op: "mkdir", Path: filepath.Dir(dst), Err: err}
	}

	perm := os.FileMode(0o644)
	if info, err := d.Info(); err == nil && info.Mode().Perm()&0o111 != 0 {
		perm = 0o755
	}

	if err := os.WriteFile(dst, data, perm); err != nil {
		return &IOError{Op: "write", Path: dst, Err: err}
	}
	return nil
}

func relPath(root, p string) string {
	if p == root {
		return "."
	}
	if root == "." {
		return p
	}
	return strings.TrimPrefix(p, root+"/")
}

func isDir(src fs.FS, p string) bool {
	info, err := fs.Stat(src, p)
	return err == nil && info.IsDir()
}

// validTemplateName accepts the empty name (no overlay) or a single path
// element that cannot escape the themes directory.
func validTemplateName(name string) bool {
	if name == "" {
		return true
	}
	return fs.ValidPath(name) && name != "." && !strings.Contains(name, "/")
}
