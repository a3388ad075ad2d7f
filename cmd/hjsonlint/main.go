// Command hjsonlint parses Hjson documents and either reports syntax
// errors with their line and column, or dumps the decoded value tree as
// plain JSON.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	hjson "github.com/hjson/hjson-go/v2"
)

// logConfig mirrors the small Config/Flags wrapper the wider example
// pack builds around log/slog: it holds the resolved values of the
// logging flags, which registerFlags binds once against the root
// command's persistent flag set.
type logConfig struct {
	level  string
	format string
}

func (c *logConfig) registerFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&c.level, "log-level", "info",
		"log level, one of: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&c.format, "log-format", "text",
		"log format, one of: text, json")
}

func (c *logConfig) handler(w io.Writer) (slog.Handler, error) {
	var lvl slog.Level
	switch c.level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", c.level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch c.format {
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	case "text":
		return slog.NewTextHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", c.format)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var lc logConfig
	var opts hjson.Options
	opts.Comments = true

	root := &cobra.Command{
		Use:           "hjsonlint",
		Short:         "Parse and inspect Hjson documents",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	lc.registerFlags(root)
	root.PersistentFlags().BoolVar(&opts.WhitespaceAsComments, "ws-comments", false,
		"treat whitespace runs the same as comments for comment bookkeeping")
	root.PersistentFlags().BoolVar(&opts.DuplicateKeyException, "dup-error", false,
		"raise an error on duplicate map keys instead of overwriting")

	root.AddCommand(newCheckCmd(&lc, &opts))
	root.AddCommand(newDumpCmd(&lc, &opts))
	return root
}

func newCheckCmd(lc *logConfig, opts *hjson.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [path ...]",
		Short: "Report syntax errors found while parsing the given documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(lc)
			if err != nil {
				return err
			}

			failures := 0
			for _, name := range inputNames(args) {
				data, err := readInput(name)
				if err != nil {
					return err
				}
				if _, err := hjson.Unmarshal(data, *opts); err != nil {
					failures++
					log.Error("syntax error", "file", name, "err", err)
					continue
				}
				log.Debug("ok", "file", name)
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d document(s) failed to parse", failures, len(inputNames(args)))
			}
			return nil
		},
	}
}

func newDumpCmd(lc *logConfig, opts *hjson.Options) *cobra.Command {
	var indent int
	cmd := &cobra.Command{
		Use:   "dump [path ...]",
		Short: "Parse the given documents and print their value as plain JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(lc)
			if err != nil {
				return err
			}

			for _, name := range inputNames(args) {
				data, err := readInput(name)
				if err != nil {
					return err
				}
				v, err := hjson.Unmarshal(data, *opts)
				if err != nil {
					log.Error("syntax error", "file", name, "err", err)
					return err
				}

				out, err := json.MarshalIndent(v.Interface(), "", pad(indent))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&indent, "indent", 2, "number of spaces to indent JSON output")
	return cmd
}

func newLogger(lc *logConfig) (*slog.Logger, error) {
	h, err := lc.handler(os.Stderr)
	if err != nil {
		return nil, err
	}
	return slog.New(h), nil
}

func inputNames(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

func pad(n int) string {
	if n < 0 {
		n = 0
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
