package app

import (
	"os"
	"path/filepath"
)

// Paths holds all resolved filesystem paths for the .tagmint/ data directory.
// All fields are pre-computed strings — zero-alloc access after construction.
type Paths struct {
	Root       string // .tagmint/
	DB         string // .tagmint/tagmint.db
	ConfigFile string // .tagmint/config.toml
	PagesDir   string // .tagmint/pages/
	ETagsLog   string // .tagmint/etags.log
}

// NewPaths constructs all resolved paths from a project root directory.
func NewPaths(projectRoot string) *Paths {
	root := filepath.Join(projectRoot, ".tagmint")
	return &Paths{
		Root:       root,
		DB:         filepath.Join(root, "tagmint.db"),
		ConfigFile: filepath.Join(root, "config.toml"),
		PagesDir:   filepath.Join(root, "pages"),
		ETagsLog:   filepath.Join(root, "etags.log"),
	}
}

// EnsureDirs creates all subdirectories under .tagmint/. Idempotent.
func (p *Paths) EnsureDirs() error {
	for _, d := range []string{p.Root, p.PagesDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return err
		}
	}
	return nil
}
