// Package pager shows formatted examples, through an external pager command
// when one is available and through a built-in pager otherwise.
package pager

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/shlex"
	"golang.org/x/term"

	"github.com/dkoosis/eg/internal/config"
)

// ErrUnavailable means the requested pager command cannot be run here.
var ErrUnavailable = errors.New("pager unavailable")

// Pager pages text to an output stream.
type Pager struct {
	out    io.Writer
	errOut io.Writer
	logger *log.Logger

	// Swapped in tests.
	lookPath  func(file string) (string, error)
	terminal  func(w io.Writer) (width, height int, ok bool)
	runViewer func(text string, out io.Writer) error
}

// New returns a Pager writing to out. The external pager's stderr goes to errOut.
func New(out, errOut io.Writer, logger *log.Logger) *Pager {
	return &Pager{
		out:       out,
		errOut:    errOut,
		logger:    logger,
		lookPath:  exec.LookPath,
		terminal:  terminalSize,
		runViewer: runViewer,
	}
}

// Page shows text. An empty pagerCmd or config.FallbackPager selects the
// built-in pager, as does a command that cannot be found or started.
func (p *Pager) Page(text, pagerCmd string) error {
	if pagerCmd == "" || pagerCmd == config.FallbackPager {
		return p.fallback(text)
	}

	err := p.external(text, pagerCmd)
	if errors.Is(err, ErrUnavailable) {
		p.logger.Debug("falling back to built-in pager", "pager_cmd", pagerCmd, "err", err)
		return p.fallback(text)
	}
	return err
}

func (p *Pager) external(text, pagerCmd string) error {
	args, err := shlex.Split(pagerCmd)
	if err != nil || len(args) == 0 {
		return fmt.Errorf("%w: cannot parse %q", ErrUnavailable, pagerCmd)
	}
	path, err := p.lookPath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	cmd := exec.Command(path, args[1:]...)
	cmd.Stdin = strings.NewReader(text)
	cmd.Stdout = p.out
	cmd.Stderr = p.errOut
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The user saw the pager; how it exited is not our concern.
			p.logger.Debug("pager exited", "pager_cmd", pagerCmd, "code", exitErr.ExitCode())
			return nil
		}
		return fmt.Errorf("running pager %q: %w", pagerCmd, err)
	}
	return nil
}

// fallback uses the interactive viewer when text does not fit on the
// terminal, and writes it straight out otherwise.
func (p *Pager) fallback(text string) error {
	_, height, ok := p.terminal(p.out)
	if ok && lineCount(text) >= height {
		return p.runViewer(text, p.out)
	}
	_, err := io.WriteString(p.out, text)
	return err
}

// terminalSize returns the size of w when it is a terminal.
func terminalSize(w io.Writer) (width, height int, ok bool) {
	f, isFile := w.(*os.File)
	if !isFile || !term.IsTerminal(int(f.Fd())) {
		return 0, 0, false
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || height <= 0 {
		return 0, 0, false
	}
	return width, height, true
}

func lineCount(text string) int {
	n := strings.Count(text, "\n")
	if text != "" && !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
