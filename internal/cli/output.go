package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/nasiya/internal/app"
	"github.com/idilsaglam/nasiya/internal/ui"
)

func printer(cmd *cobra.Command) *ui.Printer {
	return ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// report prints n and turns a rejected mutation into exit code 2.
func report(cmd *cobra.Command, n app.Notice) error {
	p := printer(cmd)
	switch n.Level {
	case app.LevelSuccess:
		p.OK(n.Message)
	case app.LevelInfo:
		p.Info(n.Message)
	case app.LevelWarning:
		p.Warn(n.Message)
		return reportedError{code: 2}
	case app.LevelDanger:
		p.Fail(n.Message)
		return reportedError{code: 1}
	}
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, usageErrorf("not a valid id: %s", s)
	}
	return id, nil
}

// confirm asks a y/N question on the command's stdin. yes skips the prompt.
func confirm(cmd *cobra.Command, prompt string, yes bool) (bool, error) {
	if yes {
		return true, nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", ui.Current().Warning.Render(prompt))
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(cmd.OutOrStdout())
		return false, nil
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "h", "ha":
		return true, nil
	}
	return false, nil
}

// runDelete finishes a recorded delete intent: prompt, then confirm or cancel.
func runDelete(cmd *cobra.Command, a *app.App, in app.DeleteIntent, yes bool) error {
	ok, err := confirm(cmd, in.Prompt, yes)
	if err != nil {
		return err
	}
	if !ok {
		a.CancelDelete()
		printer(cmd).Info("Bekor qilindi")
		return nil
	}
	n, err := a.ConfirmDelete(cmd.Context())
	if err != nil {
		return err
	}
	return report(cmd, n)
}
