// eg shows useful examples of command-line tools.
//
// Usage:
//
//	eg tar
//	eg --squeeze --no-color find
//	eg --list
//
// Examples come from the bundled examples directory and, when configured, a
// custom directory whose entries are shown first. Settings are read from
// flags, then ~/.egrc, then built-in defaults.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/dkoosis/eg/internal/config"
	"github.com/dkoosis/eg/internal/files"
	"github.com/dkoosis/eg/internal/listing"
	"github.com/dkoosis/eg/internal/logger"
	"github.com/dkoosis/eg/internal/lookup"
	"github.com/dkoosis/eg/internal/pager"
	"github.com/dkoosis/eg/internal/version"
	"github.com/dkoosis/eg/pkg/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	list    bool
	version bool
	debug   bool
	cli     config.CliFlags
	program string
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, code := parseArgs(args, stderr)
	if code >= 0 {
		return code
	}
	if opts.version {
		fmt.Fprintf(stdout, "eg %s\n", version.String())
		return 0
	}

	l := logger.New(stderr, opts.debug)
	store := files.NewOS()

	cfg, err := config.Resolve(store, opts.cli, l)
	if err != nil {
		l.Error("cannot resolve configuration", "err", err)
		return 1
	}

	if opts.list {
		return runList(store, cfg, stdout, l)
	}

	o := lookup.New(store, pager.New(stdout, stderr, l), l)
	if err := o.Handle(opts.program, cfg, stdout); err != nil {
		l.Error("cannot show examples", "program", opts.program, "err", err)
		return 1
	}
	return 0
}

// parseArgs returns the parsed options and -1, or an exit code when the
// invocation is finished (help, usage errors).
func parseArgs(args []string, stderr io.Writer) (options, int) {
	var opts options

	fs := pflag.NewFlagSet("eg", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: eg [flags] <program>\n\nFlags:\n%s", fs.FlagUsages())
	}

	fs.BoolVarP(&opts.list, "list", "l", false, "list all programs with examples")
	fs.BoolVarP(&opts.version, "version", "v", false, "print the eg version")
	fs.BoolVar(&opts.debug, "debug", false, "log configuration details to stderr (or set "+logger.DebugEnv+")")
	configFile := fs.StringP("config-file", "f", "", "path to the egrc (default ~/"+config.DefaultEgrcName+")")
	examplesDir := fs.String("examples-dir", "", "directory of default examples")
	customDir := fs.String("custom-dir", "", "directory of custom examples, shown before the defaults")
	pagerCmd := fs.String("pager-cmd", "", "command used to page output, or \""+config.FallbackPager+"\"")
	useColor := fs.Bool("use-color", false, "colorize output")
	noColor := fs.Bool("no-color", false, "do not colorize output")
	squeeze := fs.BoolP("squeeze", "s", false, "remove blank lines between examples")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return opts, 0
		}
		fmt.Fprintf(stderr, "eg: %v\n", err)
		fs.Usage()
		return opts, 2
	}

	// Both flags may be given as long as they agree.
	if fs.Changed("use-color") && fs.Changed("no-color") && *useColor == *noColor {
		fmt.Fprintln(stderr, "eg: --use-color and --no-color contradict each other")
		return opts, 2
	}

	// Only flags the user gave override the egrc.
	opts.cli.ConfigFile = config.ExpandPath(*configFile)
	opts.cli.Debug = opts.debug
	if fs.Changed("examples-dir") {
		opts.cli.ExamplesDir = config.Value(config.ExpandPath(*examplesDir))
	}
	if fs.Changed("custom-dir") {
		opts.cli.CustomDir = config.Value(config.ExpandPath(*customDir))
	}
	if fs.Changed("pager-cmd") {
		opts.cli.PagerCmd = pagerCmd
	}
	if fs.Changed("use-color") {
		opts.cli.UseColor = useColor
	}
	if fs.Changed("no-color") {
		opts.cli.UseColor = config.Value(!*noColor)
	}
	if fs.Changed("squeeze") {
		opts.cli.Squeeze = squeeze
	}

	if opts.version || opts.list {
		return opts, -1
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return opts, 2
	}
	opts.program = fs.Arg(0)
	return opts, -1
}

func runList(store *files.Store, cfg config.Config, stdout io.Writer, l *log.Logger) int {
	entries, err := listing.List(store, cfg.ExamplesDir, cfg.CustomDir)
	if err != nil {
		l.Error("cannot list examples", "err", err)
		return 1
	}
	width := terminalWidth(stdout)
	theme := render.ThemeFor(cfg.UseColor && width > 0)
	l.Debug("listing examples", "entries", len(entries), "width", width, "theme", theme.Name)
	fmt.Fprint(stdout, render.NewListing(theme, width).Render(entries))
	return 0
}

// terminalWidth returns the width of w, or 0 when w is not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
