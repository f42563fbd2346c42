// Package lookup finds, formats, and pages the examples for one program.
package lookup

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dkoosis/eg/internal/config"
	"github.com/dkoosis/eg/internal/files"
	"github.com/dkoosis/eg/internal/format"
)

// ErrNotFound means neither a default nor a custom entry exists.
var ErrNotFound = errors.New("no entry found")

// Pager shows formatted text.
type Pager interface {
	Page(text, pagerCmd string) error
}

// Orchestrator ties the files, the formatter, and the pager together.
type Orchestrator struct {
	store  *files.Store
	pager  Pager
	logger *log.Logger
}

// New returns an Orchestrator.
func New(store *files.Store, pager Pager, logger *log.Logger) *Orchestrator {
	return &Orchestrator{store: store, pager: pager, logger: logger}
}

// Paths returns the entry files that exist for program. An empty directory
// in cfg is skipped without a check.
func (o *Orchestrator) Paths(program string, cfg config.Config) (defaultPath, customPath string) {
	return o.existing(cfg.ExamplesDir, program), o.existing(cfg.CustomDir, program)
}

// Lookup returns the formatted examples for program, custom examples first.
// It returns ErrNotFound when there are none.
func (o *Orchestrator) Lookup(program string, cfg config.Config) (string, error) {
	if !validProgram(program) {
		return "", fmt.Errorf("%q: %w", program, ErrNotFound)
	}

	defaultPath, customPath := o.Paths(program, cfg)
	if defaultPath == "" && customPath == "" {
		return "", fmt.Errorf("%q: %w", program, ErrNotFound)
	}

	var raw strings.Builder
	for _, path := range []string{customPath, defaultPath} {
		if path == "" {
			continue
		}
		o.logger.Debug("reading entry", "program", program, "path", path)
		contents, err := o.store.Read(path)
		if err != nil {
			return "", err
		}
		raw.WriteString(contents)
	}

	return format.ForConfig(cfg).Format(raw.String()), nil
}

// Handle looks up program and pages the result. When there is no entry it
// tells the user on out instead and returns nil.
func (o *Orchestrator) Handle(program string, cfg config.Config, out io.Writer) error {
	text, err := o.Lookup(program, cfg)
	if errors.Is(err, ErrNotFound) {
		_, werr := fmt.Fprintf(out, "No entry found for %s. Run `eg --list` to see all available entries.\n", program)
		return werr
	}
	if err != nil {
		return err
	}
	return o.pager.Page(text, cfg.PagerCmd)
}

func (o *Orchestrator) existing(dir, program string) string {
	if dir == "" {
		return ""
	}
	path, err := files.EntryPath(dir, program)
	if err != nil || !o.store.Exists(path) {
		return ""
	}
	return path
}

// validProgram rejects names that would resolve outside the examples directory.
func validProgram(program string) bool {
	return program != "" && program != "." && program != ".." && !strings.ContainsAny(program, `/\`)
}
