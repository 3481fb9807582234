package snake

import (
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// PromptFlagString asks for a value and returns the flag argument. An empty
// answer keeps the default and adds nothing.
func PromptFlagString(cmd *cobra.Command, f *pflag.Flag) (string, error) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s [%s] Default: %s\n", asFlags(f), f.Usage, f.Value.Type(), f.DefValue)

	prompt := promptui.Prompt{
		Label:     fmt.Sprintf(`[%q]`, f.DefValue),
		Templates: answerTemplates,
		Stdin:  io.NopCloser(cmd.InOrStdin()),
		Stdout: NopCloser(cmd.OutOrStdout()),
	}

	result, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	if result == "" {
		return "", nil
	}
	return fmt.Sprintf("--%s=%s", f.Name, result), nil
}
