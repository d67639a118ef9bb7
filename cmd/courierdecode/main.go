// Command courierdecode decodes syslog-framed log lines into structured
// records.
//
// Logging:
//   - Base logger is created here with output format and level
//   - Logger is passed to all components via dependency injection
//   - No global slog configuration (no slog.SetDefault)
//   - Components scope loggers with their own attributes
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/theory/jsonpath"

	"github.com/ziggiz-courier/courier-decode/internal/decoder"
	"github.com/ziggiz-courier/courier-decode/internal/logging"
)

var version = "dev"

func main() {
	baseHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	filterHandler := logging.NewComponentFilterHandler(baseHandler, slog.LevelInfo)
	logger := slog.New(filterHandler)

	rootCmd := &cobra.Command{
		Use:   "courierdecode",
		Short: "Decode syslog-framed log lines into structured records",
	}

	var jsonpathExpr string
	var pretty bool
	var globs []string
	var tag string

	decodeCmd := &cobra.Command{
		Use:   "decode [files-or-patterns...]",
		Short: "Decode log lines from files, glob patterns, or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns := append(append([]string{}, globs...), args...)
			return runDecode(logger.With("component", "decode"), patterns, jsonpathExpr, pretty, tag)
		},
	}
	decodeCmd.Flags().StringVar(&jsonpathExpr, "select", "", "JSONPath expression projecting fields out of each decoded record")
	decodeCmd.Flags().BoolVar(&pretty, "pretty", false, "pretty-print decoded records")
	decodeCmd.Flags().StringArrayVar(&globs, "glob", nil, "doublestar glob pattern matching files to decode (repeatable)")
	decodeCmd.Flags().StringVar(&tag, "tag", "", "friendly handle for this run (default: a generated petname)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	rootCmd.AddCommand(decodeCmd, versionCmd, registerTestPluginCmd(logger))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDecode(logger *slog.Logger, patterns []string, jsonpathExpr string, pretty bool, tag string) error {
	runID := uuid.New().String()
	runTag := tag
	if runTag == "" {
		runTag = petname.Generate(2, "-")
	}
	logger = logger.With("run_id", runID, "run_tag", runTag)
	logger.Info("starting decode run")

	var selector *jsonpath.Path
	if jsonpathExpr != "" {
		p, err := jsonpath.Parse(jsonpathExpr)
		if err != nil {
			return fmt.Errorf("parse --select expression: %w", err)
		}
		selector = p
	}

	dispatcher := decoder.NewDispatcher(timeNow)

	sources, closers, err := openSources(patterns)
	if err != nil {
		return err
	}
	defer closers()

	out := json.NewEncoder(os.Stdout)
	if pretty {
		out.SetIndent("", "  ")
	}

	for _, src := range sources {
		scanner := bufio.NewScanner(src.reader)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		lineNo := 0
		for scanner.Scan() {
			lineNo++
			line := scanner.Text()
			if line == "" {
				continue
			}

			env := dispatcher.DecodeUnknown(line)

			var record any = env
			if selector != nil {
				projected, err := project(selector, env)
				if err != nil {
					logger.Warn("jsonpath selection failed", "source", src.name, "line", lineNo, "error", err)
					continue
				}
				record = projected
			}

			if err := out.Encode(record); err != nil {
				return fmt.Errorf("encode decoded record: %w", err)
			}
		}
		if err := scanner.Err(); err != nil {
			logger.Error("scanning source failed", "source", src.name, "error", err)
		}
	}

	return nil
}

// project re-marshals a decoded record to JSON-native form and applies a
// JSONPath selection against it, returning whatever values matched.
func project(selector *jsonpath.Path, env any) (any, error) {
	raw, err := json.Marshal(env)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return selector.Select(generic), nil
}
