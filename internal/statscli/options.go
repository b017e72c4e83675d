// internal/statscli/options.go
package statscli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"msat/internal/version"
)

// Options holds all CLI flags and arguments for the summary tool.
type Options struct {
	// Input
	Input       string // path or "-" for stdin
	Loci        int
	Individuals bool

	// Output
	Output string
	Header bool // true unless --no-header

	// Misc
	Quiet bool

	fs       *pflag.FlagSet
	complete bool
}

// Changed reports whether the named flag was set explicitly on the
// command line.
func (o *Options) Changed(name string) bool {
	return o.fs != nil && o.fs.Changed(name)
}

const examples = `  msat -a 20 runs.ms | msat-stats
  msat -l 3 --theta 0.2,0.3,0.5 -i runs.ms | msat-stats -i
  msat-stats --loci 3 -o json lengths.txt`

// NewRootCommand wires the msat-stats flag surface onto a cobra command.
func NewRootCommand(opts *Options) *cobra.Command {
	var noHeader bool
	cmd := &cobra.Command{
		Use:   "msat-stats [flags] [repeat-length-file]",
		Short: "Summarize msat repeat-length output per dataset and locus",
		Long: `msat-stats reads the converter's output, flat or per-individual, and
prints n, mean, sample variance, and standard deviation for every
dataset and locus.

Input may be a file, a .gz file, or "-" for stdin (the default).`,
		Example:       examples,
		Args:          cobra.MaximumNArgs(1),
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Input = args[0]
			}
			opts.Header = !noHeader
			opts.fs = cmd.Flags()
			opts.complete = true
			return nil
		},
	}

	fs := cmd.Flags()
	fs.SortFlags = false
	fs.IntVarP(&opts.Loci, "loci", "l", 1, "locus count of flat input; with -i, checked against the row width")
	fs.BoolVarP(&opts.Individuals, "individuals", "i", false, "input is in per-individual layout with // trailers")
	fs.StringVarP(&opts.Output, "output", "o", "text", "output format: text | json | jsonl")
	fs.BoolVar(&noHeader, "no-header", false, "suppress the header line in text output")
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
