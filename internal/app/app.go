// internal/app/app.go
package app

import (
	"bufio"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"msat-core/msout"
	"msat-core/smm"
	"msat/internal/cli"
	"msat/internal/cmdutil"
	"msat/internal/config"
	"msat/internal/output"
	"msat/internal/writers"
)

const tool = "msat"

// Run executes one conversion and returns the process exit code: 0 on
// success (help, version, and broken pipes included), 2 on
// configuration errors, 1 on input and stream errors, 3 on write
// errors.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)

	opts, err := cli.Parse(argv, outw, stderr)
	if err != nil {
		cmdutil.Errorf(stderr, tool, err)
		return 2
	}
	if opts == nil {
		// Help or version output is already in the buffer.
		return writers.Finish(outw, stderr, tool)
	}

	if opts.ConfigFile != "" {
		prof, err := config.Load(opts.ConfigFile)
		if err != nil {
			cmdutil.Errorf(stderr, tool, err)
			return 2
		}
		prof.Apply(opts)
	}

	// The locus partition must be rejected before any input is read.
	proportions, err := smm.Proportions(opts.Loci, opts.Thetas)
	if err != nil {
		cmdutil.Errorf(stderr, tool, err)
		return 2
	}

	if opts.Input == "-" && isatty.IsTerminal(os.Stdin.Fd()) {
		cmdutil.Warnf(stderr, opts.Quiet, "reading simulator output from a terminal; pipe ms output or name a file")
	}

	in, err := msout.Open(opts.Input)
	if err != nil {
		cmdutil.Errorf(stderr, tool, err)
		return 1
	}
	defer func() { _ = in.Close() }()

	reader, err := msout.NewReader(in)
	if err != nil {
		cmdutil.Errorf(stderr, tool, err)
		return 1
	}

	eng := smm.New(opts.Ancestral, proportions, newSource(opts.Seed))

	write := output.WriteFlat
	if opts.Individuals {
		write = output.WriteIndividuals
	}

	for i := 0; i < reader.Datasets(); i++ {
		ds, err := reader.Next()
		if err != nil {
			cmdutil.Errorf(stderr, tool, err)
			return 1
		}
		if err := write(outw, eng.Mutate(ds)); err != nil {
			if writers.IsBrokenPipe(err) {
				return 0
			}
			cmdutil.Errorf(stderr, tool, err)
			return 3
		}
	}

	return writers.Finish(outw, stderr, tool)
}

// newSource builds the engine's draw source. A fixed seed reproduces a
// run draw for draw; zero seeds from the clock.
func newSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}
