package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/dshills/gitred/internal/config"
	"github.com/dshills/gitred/internal/gitlog"
	"github.com/dshills/gitred/internal/output"
	"github.com/dshills/gitred/internal/scan"
	"github.com/spf13/cobra"
)

var (
	flagSince       string
	flagMinLines    int
	flagMinPct      int
	flagFormat      string
	flagOut         string
	flagRepo        string
	flagFailOnMatch bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan commit history for red commits",
	Long:  "Scan the repository's commit history and report commits whose change volume and deletion share meet the configured thresholds.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides(cmd))
		if err != nil {
			return err
		}

		since := flagSince
		if since == "" {
			since = scan.DefaultSince(time.Now(), cfg.SinceDays)
		}
		th := scan.Thresholds{
			Since:    since,
			MinLines: cfg.MinLines,
			MinPct:   cfg.MinPct,
		}
		repo := &gitlog.Repo{Dir: flagRepo}

		var result *scan.Result
		if cfg.Format == "text" {
			dest := io.Writer(os.Stdout)
			if flagOut != "" {
				f, err := os.Create(flagOut)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
					exitCode = ExitRuntimeError
					return nil
				}
				defer f.Close()
				dest = f
			}
			fmt.Fprintln(dest, scan.Banner(th.Since))
			result = scan.Run(repo, th, scan.Options{
				Diag: dest,
				OnMatch: func(m scan.Match) {
					fmt.Fprintln(dest, scan.FormatLine(m))
				},
			})
		} else {
			// Structured formats buffer the result; diagnostics go to
			// stderr so the document stays parseable.
			result = scan.Run(repo, th, scan.Options{Diag: os.Stderr})
			if err := output.WriteReport(result, cfg.Format, flagOut); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
				exitCode = ExitRuntimeError
				return nil
			}
		}

		if flagFailOnMatch && len(result.Matches) > 0 {
			exitCode = ExitMatches
		}
		return nil
	},
}

// buildOverrides collects flags the user explicitly set, so flag defaults
// never mask config file or environment values.
func buildOverrides(cmd *cobra.Command) map[string]string {
	m := make(map[string]string)
	if cmd.Flags().Changed("min-lines") {
		m["minLines"] = strconv.Itoa(flagMinLines)
	}
	if cmd.Flags().Changed("min-pct") {
		m["minPct"] = strconv.Itoa(flagMinPct)
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	return m
}

func init() {
	scanCmd.Flags().StringVar(&flagSince, "since", "", "Start date for filtering commits (YYYY-MM-DD, default: sinceDays ago)")
	scanCmd.Flags().IntVar(&flagMinLines, "min-lines", 10, "Minimum total changed lines")
	scanCmd.Flags().IntVar(&flagMinPct, "min-pct", 95, "Minimum deletion percentage")
	scanCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown)")
	scanCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	scanCmd.Flags().StringVar(&flagRepo, "repo", "", "Repository directory (default: current directory)")
	scanCmd.Flags().BoolVar(&flagFailOnMatch, "fail-on-match", false, "Exit 1 when red commits are found")
}
