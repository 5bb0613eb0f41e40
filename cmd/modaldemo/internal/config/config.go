// Package config resolves the demo's presenter configuration from the
// project it is run in.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"

	"github.com/go-drift/modal/pkg/presenter"
)

// FileName is the configuration file looked up in the project root.
const FileName = "modal.yaml"

// Resolved contains resolved configuration values.
type Resolved struct {
	// Root is the directory holding go.mod, or the start directory when
	// no module was found.
	Root string
	// ModulePath is the module path from go.mod, if any.
	ModulePath string
	// Title is shown in the demo header.
	Title string
	// Path is the configuration file that was read. It may not exist.
	Path string
	// Presenter is the decoded presenter configuration.
	Presenter presenter.Config
}

// Resolve finds the project containing dir and loads its presenter
// configuration. An explicit path overrides the project's modal.yaml.
func Resolve(dir, explicit string) (*Resolved, error) {
	res := &Resolved{Root: dir}
	if root, err := FindProjectRoot(dir); err == nil {
		res.Root = root
		if path, err := modulePath(root); err == nil {
			res.ModulePath = path
		}
	}

	res.Path = explicit
	if res.Path == "" {
		res.Path = filepath.Join(res.Root, FileName)
	}
	cfg, err := presenter.LoadConfig(res.Path)
	if err != nil {
		return nil, err
	}
	res.Presenter = cfg
	res.Title = defaultTitle(res.ModulePath, res.Root)
	return res, nil
}

// FindProjectRoot walks up from dir to find go.mod.
func FindProjectRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

// defaultTitle names the demo after the last element of the module path,
// without any major version suffix.
func defaultTitle(modulePath, dir string) string {
	base := filepath.Base(dir)
	if prefix, _, ok := module.SplitPathVersion(modulePath); ok && prefix != "" {
		parts := strings.Split(prefix, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "modal"
	}
	return base
}
