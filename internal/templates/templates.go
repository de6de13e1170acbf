// Package templates holds the project template trees shipped inside the
// binary and resolves which templates root a command should read from.
//
// Layout of a templates root:
//
//	base/              files every project starts from
//	themes/<name>/     overlay applied on top of base
//	themes.yaml        theme catalog
//	docker/            Dockerfile variants, compose file, nginx config
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed all:files
var embedded embed.FS

// Embedded returns the templates root compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "files")
	if err != nil {
		// fs.Sub only fails on an invalid path, and "files" is constant.
		panic(err)
	}
	return sub
}

// Resolve returns the embedded root when dir is empty, otherwise an on-disk
// root at dir. An on-disk root must be a directory containing base/.
func Resolve(dir string) (fs.FS, error) {
	if dir == "" {
		return Embedded(), nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving templates dir %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("templates dir %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("templates dir %s is not a directory", abs)
	}
	if _, err := os.Stat(filepath.Join(abs, "base")); err != nil {
		return nil, fmt.Errorf("templates dir %s has no base/ tree", abs)
	}
	return os.DirFS(abs), nil
}
