// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"htsfilter/internal/cli"
	"htsfilter/internal/cliutil"
	"htsfilter/internal/cmdutil"
	"htsfilter/internal/countsio"
	"htsfilter/internal/output"
	"htsfilter/internal/pipeline"
	"htsfilter/internal/version"
	"htsfilter/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitIO       = 3
	ExitCanceled = 130
)

const afterHelp = `The following filters are applied to each gene:
  * the gene is filtered on total read count (if -m is specified);
  * the gene is filtered on expressed sample count (if -e is specified);
  * the gene is filtered on zero-count samples (if -z is specified);
  * the gene is filtered on non-zero variance (if -i is specified).

Rows whose id starts with "__" are metacounts. Without -o they are passed
through to stdout; with -o they are written to that file with "__" removed.`

// usageError marks errors caused by bad arguments (exit 2).
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunIO(parent, argv, os.Stdin, stdout, stderr)
}

// RunIO is the full entry point: every stream is injected.
func RunIO(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts cli.Options
	if argv == nil {
		// cobra falls back to os.Args on a nil slice
		argv = []string{}
	}

	cmd := &cobra.Command{
		Use:           "htsfilter [flags] <counts.tsv | ->",
		Short:         "Filter HTSeq counts matrix files",
		Long:          "Filter HTSeq counts matrix files\n\n" + afterHelp,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Args = func(c *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(1)(c, args); err != nil {
			return usageError{err}
		}
		return nil
	}
	finish := cli.Register(cmd.Flags(), &opts)
	cmd.SetVersionTemplate("htsfilter version {{.Version}}\n")
	cmd.SetArgs(argv)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	cmd.RunE = func(c *cobra.Command, args []string) error {
		finish()
		if len(args) == 1 {
			opts.Input = args[0]
		}
		if err := resolve(c, &opts); err != nil {
			return err
		}
		return filterMatrix(c.Context(), opts, stdin, stdout, stderr)
	}

	err := cmd.ExecuteContext(parent)
	switch {
	case err == nil, writers.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	}
	var ue usageError
	if errors.As(err, &ue) {
		_, _ = fmt.Fprintf(stderr, "error: %v\n\n", err)
		cmd.SetOut(stderr)
		_ = cmd.Usage()
		return ExitUsage
	}
	_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
	return ExitIO
}

// resolve applies the config file, expands paths and validates.
func resolve(c *cobra.Command, o *cli.Options) error {
	if o.ConfigFile != "" {
		p, err := cliutil.ExpandInput(o.ConfigFile)
		if err != nil {
			return usageError{err}
		}
		fc, err := cli.LoadConfig(p)
		if err != nil {
			return usageError{fmt.Errorf("config: %w", err)}
		}
		fc.Apply(c.Flags(), o)
	}
	in, err := cliutil.ExpandInput(o.Input)
	if err != nil {
		return usageError{err}
	}
	o.Input = in
	for _, p := range []*string{&o.MetacountFile, &o.StatsFile} {
		exp, err := cliutil.ExpandPath(*p)
		if err != nil {
			return usageError{err}
		}
		*p = exp
	}
	if err := cli.Validate(o); err != nil {
		return usageError{err}
	}
	if o.Progress && o.Input == countsio.Stdio {
		cmdutil.Warnf(c.ErrOrStderr(), o.Quiet, "--progress has no total size when reading stdin")
	}
	return nil
}

func filterMatrix(ctx context.Context, o cli.Options, stdin io.Reader, stdout, stderr io.Writer) error {
	log := cmdutil.NewLogger(stderr, cmdutil.LevelFor(o.Verbose, o.Quiet), !o.NoColor && isTerminal(stderr))

	var bar *pb.ProgressBar
	var wrap countsio.WrapFunc
	if o.Progress {
		wrap = func(r io.Reader, size int64) io.Reader {
			if size < 0 {
				size = 0
			}
			bar = pb.New64(size).SetTemplate(pb.Full)
			bar.Set(pb.Bytes, true)
			bar.SetWriter(stderr)
			bar.Start()
			return bar.NewProxyReader(r)
		}
	}

	in, err := countsio.Open(o.Input, stdin, wrap)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()
	if o.Input == countsio.Stdio {
		log.Infof("reading counts from stdin")
	} else {
		log.Infof("reading counts from %s", o.Input)
	}

	outs, err := writers.Open(stdout, o.MetacountFile)
	if err != nil {
		return err
	}
	if o.MetacountFile != "" {
		log.Infof("writing metacounts to %s", o.MetacountFile)
	} else {
		log.Infof("writing metacounts to stdout")
	}

	router := output.NewRouter(outs.Main, outs.Meta)
	res, err := pipeline.Run(ctx, in, pipeline.Config{Filter: o.FilterConfig(), Summary: o.Summary}, router, log)
	if bar != nil {
		bar.Finish()
	}
	if cerr := outs.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	if o.StatsFile != "" {
		info := output.RunInfo{Input: o.Input, Metacount: o.MetacountFile, Malformed: res.Malformed}
		if err := writers.WriteFile(o.StatsFile, func(w io.Writer) error {
			return output.WriteStatsJSON(w, info, res.Acc)
		}); err != nil {
			return fmt.Errorf("write stats: %w", err)
		}
		log.Infof("wrote run report to %s", o.StatsFile)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
