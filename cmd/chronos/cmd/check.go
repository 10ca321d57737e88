package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/chronos/internal/parser"
)

var (
	checkOKStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	checkFailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	checkFileStyle   = lipgloss.NewStyle().Bold(true)
	checkBulletStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8")).PaddingLeft(2)
)

var checkCmd = &cobra.Command{
	Use:   "check <file|->...",
	Short: "Validate documents",
	Long: `Checks one or more chronos documents and lists every problem found.
The exit code is 1 when any document is invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc := newService(ctx, cmd)
	out := cmd.OutOrStdout()

	failed := 0
	for _, path := range args {
		source, err := readSource(cmd, path)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s %s\n", checkFailStyle.Render("✗"), checkFileStyle.Render(path))
			fmt.Fprintln(out, checkBulletStyle.Render("- "+err.Error()))
			continue
		}

		result, err := svc.Parse(ctx, source)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s %s\n", checkFailStyle.Render("✗"), checkFileStyle.Render(path))
			for _, msg := range problemsOf(err) {
				fmt.Fprintln(out, checkBulletStyle.Render("- "+msg))
			}
			continue
		}

		fmt.Fprintf(out, "%s %s %s\n", checkOKStyle.Render("✓"), checkFileStyle.Render(path),
			fmt.Sprintf("(%d items, %d markers, %d groups)", len(result.Items), len(result.Markers), len(result.Groups)))
	}

	if failed > 0 {
		fmt.Fprintf(out, "\n%d of %d documents invalid\n", failed, len(args))
		return errReported
	}
	return nil
}

// problemsOf lists the messages of err, each tagged with its error code.
func problemsOf(err error) []string {
	pe, ok := parser.AsParseError(err)
	if !ok {
		return []string{err.Error()}
	}

	msgs, codes := pe.Messages(), pe.Codes()
	out := make([]string, len(msgs))
	for i, msg := range msgs {
		out[i] = fmt.Sprintf("%s [%s]", msg, codes[i])
	}
	return out
}
