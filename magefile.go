//go:build mage

package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	modulePath = "github.com/dkoosis/eg"
	binPath    = "bin/eg"
)

// Default target - build the binary
var Default = Build

// Build builds the eg binary. EG_EXAMPLES_DIR, when set, is compiled in as
// the default examples directory.
func Build() error {
	fmt.Println("Building eg...")
	if err := sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binPath, "./cmd/eg"); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	fmt.Printf("Built: %s\n", binPath)
	return nil
}

// Install copies the binary and the bundled examples under PREFIX (default ~/.local).
func Install() error {
	prefix := os.Getenv("PREFIX")
	if prefix == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		prefix = filepath.Join(home, ".local")
	}
	examples := filepath.Join(prefix, "share", "eg", "examples")
	os.Setenv("EG_EXAMPLES_DIR", examples)
	mg.Deps(Build)

	for _, dir := range []string{examples, filepath.Join(prefix, "bin")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := sh.Copy(filepath.Join(prefix, "bin", "eg"), binPath); err != nil {
		return err
	}
	return sh.RunV("cp", "-R", "examples/.", examples)
}

// Clean removes build artifacts
func Clean() error {
	if err := sh.Rm("bin"); err != nil {
		return err
	}
	return sh.Rm("coverage.out")
}

// Lint namespace for linting commands
type Lint mg.Namespace

// All runs all linters
func (Lint) All() error {
	var errs []error
	for _, fn := range []func() error{Lint{}.Vet, Lint{}.Golangci} {
		if err := fn(); err != nil && !isCommandNotFound(err) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Vet runs go vet
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Golangci runs golangci-lint
func (Lint) Golangci() error {
	err := sh.RunV("golangci-lint", "run", "--timeout=5m", "./...")
	if isCommandNotFound(err) {
		fmt.Println("golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
	}
	return err
}

// Test namespace for testing commands
type Test mg.Namespace

// All runs all tests with the race detector
func (Test) All() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Coverage runs tests with coverage
func (Test) Coverage() error {
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage.out")
}

func ldflags() string {
	date := time.Now().UTC().Format(time.RFC3339)
	flags := []string{
		"-s", "-w",
		fmt.Sprintf("-X '%s/internal/version.Version=%s'", modulePath, gitOutput("dev", "describe", "--tags", "--always", "--dirty", "--match=v*")),
		fmt.Sprintf("-X '%s/internal/version.CommitHash=%s'", modulePath, gitOutput("unknown", "rev-parse", "--short", "HEAD")),
		fmt.Sprintf("-X '%s/internal/version.BuildDate=%s'", modulePath, date),
	}
	if dir := os.Getenv("EG_EXAMPLES_DIR"); dir != "" {
		flags = append(flags, fmt.Sprintf("-X '%s/internal/config.BundledExamplesDir=%s'", modulePath, dir))
	}
	return strings.Join(flags, " ")
}

func gitOutput(fallback string, args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil || out == "" {
		return fallback
	}
	return out
}

func isCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, exec.ErrNotFound) || strings.Contains(err.Error(), "executable file not found")
}
