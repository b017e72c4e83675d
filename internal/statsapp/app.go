// internal/statsapp/app.go
package statsapp

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"msat-core/msout"
	"msat/internal/cmdutil"
	"msat/internal/stats"
	"msat/internal/statscli"
	"msat/internal/statsio"
	"msat/internal/statsout"
	"msat/internal/writers"
)

const tool = "msat-stats"

// Run executes one summary pass and returns the process exit code: 0 on
// success (help, version, and broken pipes included), 2 on
// configuration errors, 1 on input errors, 3 on write errors.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)

	opts, err := statscli.Parse(argv, outw, stderr)
	if err != nil {
		cmdutil.Errorf(stderr, tool, err)
		return 2
	}
	if opts == nil {
		// Help or version output is already in the buffer.
		return writers.Finish(outw, stderr, tool)
	}

	if opts.Loci < 1 {
		cmdutil.Errorf(stderr, tool, errors.New("--loci must be at least 1"))
		return 2
	}
	loci := opts.Loci
	if opts.Individuals && !opts.Changed("loci") {
		loci = 0 // infer from the row width
	}

	w, err := statsout.New(opts.Output, outw, opts.Header)
	if err != nil {
		cmdutil.Errorf(stderr, tool, err)
		return 2
	}

	if opts.Input == "-" && isatty.IsTerminal(os.Stdin.Fd()) {
		cmdutil.Warnf(stderr, opts.Quiet, "reading repeat lengths from a terminal; pipe msat output or name a file")
	}

	in, err := msout.Open(opts.Input)
	if err != nil {
		cmdutil.Errorf(stderr, tool, err)
		return 1
	}
	defer func() { _ = in.Close() }()

	r := statsio.NewReader(in, loci, opts.Individuals)
	for {
		blk, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			cmdutil.Errorf(stderr, tool, err)
			return 1
		}
		if err := w.Write(stats.Summarize(blk.Dataset, blk.Lengths)); err != nil {
			if writers.IsBrokenPipe(err) {
				return 0
			}
			cmdutil.Errorf(stderr, tool, err)
			return 3
		}
	}
	if err := w.Close(); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		cmdutil.Errorf(stderr, tool, err)
		return 3
	}

	return writers.Finish(outw, stderr, tool)
}
