// internal/cli/options.go
package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"msat/internal/version"
)

// Options holds all CLI flags and arguments for the converter.
type Options struct {
	// Input
	Input string // path or "-" for stdin

	// Model
	Ancestral int
	Loci      int
	Thetas    []float64
	Seed      int64

	// Output
	Individuals bool

	// Misc
	ConfigFile string
	Quiet      bool

	fs            *pflag.FlagSet
	inputFromArgs bool
	complete      bool
}

// Changed reports whether the named flag was set explicitly on the
// command line, so profile values know when to stand down.
func (o *Options) Changed(name string) bool {
	return o.fs != nil && o.fs.Changed(name)
}

// InputFromArgs reports whether the input path came from a positional
// argument rather than the default.
func (o *Options) InputFromArgs() bool { return o.inputFromArgs }

const examples = `  ms 12 100 -t 4.0 | msat -a 20
  msat --loci 3 --theta 0.2,0.3,0.5 -a 15 runs.ms.gz
  msat -i --seed 42 runs.ms`

// NewRootCommand wires the msat flag surface onto a cobra command. The
// command only records options; running the pipeline is the app's job.
func NewRootCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "msat [flags] [ms-output-file]",
		Short: "Convert coalescent simulator output into microsatellite repeat lengths",
		Long: `msat reads the textual output of a coalescent simulator (ms) and applies
a single-step mutation model: every segregating site shifts the repeat
length of its derived-allele carriers by one unit, up or down, at one of
L fully linked loci chosen by the per-locus theta proportions.

Input may be a file, a .gz file, or "-" for stdin (the default).`,
		Example:       examples,
		Args:          cobra.MaximumNArgs(1),
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Input = args[0]
				opts.inputFromArgs = true
			}
			opts.fs = cmd.Flags()
			opts.complete = true
			return nil
		},
	}

	fs := cmd.Flags()
	fs.SortFlags = false
	fs.IntVarP(&opts.Ancestral, "ancestral", "a", 0, "ancestral repeat length applied to every locus")
	fs.IntVarP(&opts.Loci, "loci", "l", 1, "number of fully linked microsatellite loci")
	fs.Float64SliceVar(&opts.Thetas, "theta", nil, "per-locus theta proportions, summing to 1 (required when --loci > 1)")
	fs.BoolVarP(&opts.Individuals, "individuals", "i", false, "one line per individual plus a // trailer, instead of one line per dataset")
	fs.Int64Var(&opts.Seed, "seed", 0, "random seed (0 = seed from the clock)")
	fs.StringVar(&opts.ConfigFile, "config", "", "YAML run profile applied beneath explicit flags")
	fs.BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress warnings")

	opts.Input = "-"
	return cmd
}

// Parse runs the command line through cobra and returns the recorded
// options. A nil Options with nil error means help or version output
// was requested and already printed.
func Parse(argv []string, stdout, stderr io.Writer) (*Options, error) {
	opts := &Options{}
	cmd := NewRootCommand(opts)
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		return nil, err
	}
	if !opts.complete {
		return nil, nil
	}
	return opts, nil
}
