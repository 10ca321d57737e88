package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
	"github.com/msto63/chronos/internal/model"
	"github.com/msto63/chronos/internal/timeline"
)

// Output formats
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var (
	parseOutput  string
	parseCompact bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file|->",
	Short: "Parse a document and print its model",
	Long: `Parses a chronos document and prints the resulting items, markers,
groups and flags as JSON or YAML. Use "-" to read from stdin.

On failure every problem is listed and the exit code is 1.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", OutputJSON, "output format (json, yaml)")
	parseCmd.Flags().BoolVar(&parseCompact, "compact", false, "compact JSON output")
}

func runParse(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(parseOutput)
	if format != OutputJSON && format != OutputYAML {
		return mdwerror.Newf("unknown output format: %s", parseOutput).
			WithCode(mdwerror.CodeInvalidInput)
	}

	source, err := readSource(cmd, args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	result, err := newService(ctx, cmd).Parse(ctx, source)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), timeline.FormatError(err))
		return errReported
	}

	return writeResult(cmd.OutOrStdout(), result, format, parseCompact)
}

func writeResult(w io.Writer, result *model.ParseResult, format string, compact bool) error {
	if format == OutputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return mdwerror.Wrap(err, "failed to encode result").WithCode(mdwerror.CodeInternal)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	if !compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		return mdwerror.Wrap(err, "failed to encode result").WithCode(mdwerror.CodeInternal)
	}
	return nil
}
