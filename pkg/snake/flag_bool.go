package snake

import (
	"fmt"
	"io"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func asFlags(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("--%s, -%s", f.Name, f.Shorthand)
	}
	return fmt.Sprintf("--%s", f.Name)
}

var answerTemplates = &promptui.PromptTemplates{
	Prompt:  "Answer {{ . }} : ",
	Valid:   "Answer {{ . | green }} : ",
	Invalid: "Answer {{ . | red }} : ",
	Success: "{{ . | bold }} : ",
}

// PromptFlagBool asks for a yes/no answer and returns the flag argument.
// An empty answer keeps the default and adds nothing.
func PromptFlagBool(cmd *cobra.Command, f *pflag.Flag) (string, error) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s [%s] Default: %s\n", asFlags(f), f.Usage, f.Value.Type(), f.DefValue)

	validInput := "true/false"
	if defTrue, err := ParseBool(f.DefValue); err == nil {
		if defTrue {
			validInput = "[true]/false"
		} else {
			validInput = "true/[false]"
		}
	}

	prompt := promptui.Prompt{
		Label:     validInput,
		Templates: answerTemplates,
		Validate: func(input string) error {
			if input == "" {
				return nil
			}
			_, err := ParseBool(input)
			return err
		},
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
	r, _ := ParseBool(result)
	return fmt.Sprintf("--%s=%t", f.Name, r), nil
}

// ParseBool is strconv.ParseBool with the addition of Yes/No parsing.
func ParseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "y", "Y", "yes", "YES", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "n", "N", "no", "NO", "No":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
