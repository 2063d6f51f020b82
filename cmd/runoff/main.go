// Package main provides the runoff command line formatter.
package main

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/npillmayer/runoff"
	"github.com/npillmayer/runoff/control"
	"github.com/npillmayer/runoff/term"
)

var (
	flagStop    bool
	flagFirst   int
	flagLast    int
	flagProfile string
)

func main() {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(rewriteArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "runoff [+N] [-N] [file ...]",
		Short: "Text formatter for line printers and terminals",
		Long: `Runoff fills and justifies text under the control of embedded
formatting requests and prints it as numbered, titled pages. Input
files are processed in order; with no files, standard input is read.

The historical page range arguments are accepted: +N starts printing
at page N, -N stops after page N.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runFormat,
	}

	rootCmd.Flags().BoolVarP(&flagStop, "stop", "s", false, "pause for a newline before each printed page")
	rootCmd.Flags().IntVar(&flagFirst, "first", 0, "first page to print (same as +N)")
	rootCmd.Flags().IntVar(&flagLast, "last", 0, "last page to print (same as -N)")
	rootCmd.Flags().StringVar(&flagProfile, "profile", defaultProfilePath(), "TOML layout profile")

	return rootCmd
}

// pageRangeArg matches the historical +N and -N page range arguments,
// which pflag would otherwise reject as unknown flags.
var pageRangeArg = regexp.MustCompile(`^([+-])([0-9]+)$`)

func rewriteArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if m := pageRangeArg.FindStringSubmatch(a); m != nil {
			if m[1] == "+" {
				out = append(out, "--first="+m[2])
			} else {
				out = append(out, "--last="+m[2])
			}
			continue
		}
		out = append(out, a)
	}
	return out
}

func runFormat(_ *cobra.Command, args []string) error {
	prof, err := loadProfile(flagProfile)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	cfg := runoff.Defaults()
	prof.apply(&cfg)

	if flagFirst > 0 {
		cfg.FirstPage = flagFirst
	}
	if flagLast > 0 {
		cfg.LastPage = flagLast
	}
	cfg.StopMode = flagStop

	in, err := openInputs(args)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := in.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "failed to close input: %v\n", cerr)
		}
	}()

	hyph := runoff.NewHyphenator()
	rd := control.NewReader(in, &cfg, hyph)

	out := term.NewWriter(os.Stdout, flagFirst, flagLast)
	if cfg.StopMode {
		// The document may arrive on stdin, so the pause terminal is
		// the controlling tty.
		if tty, terr := os.Open("/dev/tty"); terr == nil {
			out.EnableStop(tty)
			defer tty.Close()
		}
	}

	pager := runoff.NewPaginator(out, rd.Titles(), &cfg)
	rd.BindPaginator(pager)

	// The paginator pauses at page transitions; the pause before the
	// very first page happens here.
	if cfg.StopMode && cfg.FirstPage <= 1 {
		if err := out.Pause(); err != nil {
			return err
		}
	}

	run := runoff.NewRunner(rd, out, pager, runoff.NewComposer(hyph), &cfg)
	if err := run.Run(); err != nil {
		return fmt.Errorf("failed to format: %w", err)
	}
	return nil
}

// openInputs opens the named files as one consecutive stream, the way
// the input buffer of the historical formatter chained them. Without
// arguments, standard input is the stream.
func openInputs(paths []string) (io.ReadCloser, error) {
	if len(paths) == 0 {
		return io.NopCloser(os.Stdin), nil
	}
	files := make([]*os.File, 0, len(paths))
	readers := make([]io.Reader, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			for _, g := range files {
				_ = g.Close()
			}
			return nil, fmt.Errorf("failed to open %s: %w", p, err)
		}
		files = append(files, f)
		readers = append(readers, f)
	}
	return &inputStream{Reader: io.MultiReader(readers...), files: files}, nil
}

type inputStream struct {
	io.Reader
	files []*os.File
}

func (s *inputStream) Close() error {
	var first error
	for _, f := range s.files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
