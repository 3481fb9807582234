// Package snake walks a user through a command tree with terminal prompts
// and then runs the command they built.
package snake

import (
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// InteractiveFlag is appended to the built arguments so the rerun does not
// prompt again.
const InteractiveFlag = "--interactive=false"

// PromptNext asks which subcommand of cmd to run, descending until a leaf
// command is chosen, then prompts for its flags.
func PromptNext(cmd *cobra.Command, args []string) error {
	var subcommands []*cobra.Command
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() {
			subcommands = append(subcommands, c)
		}
	}
	if len(subcommands) == 0 {
		return PromptFlags(cmd, args)
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | bold }} {{ .Short | green }}",
		Inactive: "   {{ .Name }} {{ .Short | cyan }}",
		Selected: "{{ .Name | bold }}",
		Details: `
--------- Details ----------
{{ .Example }}`,
	}

	searcher := func(input string, index int) bool {
		name := normalize(subcommands[index].Name() + subcommands[index].Short)
		return strings.Contains(name, normalize(input))
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Commands",
		Items:     subcommands,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     io.NopCloser(cmd.InOrStdin()),
		Stdout:    NopCloser(cmd.OutOrStdout()),
	}

	i, _, err := prompt.Run()
	if err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}

	next := subcommands[i]
	args = append(args, next.Name())
	if next.HasAvailableSubCommands() {
		return PromptNext(next, args)
	}
	return PromptFlags(next, args)
}

// PromptFlags lets the user pick flags of cmd to set until they choose to
// continue, then executes the root command with the collected arguments.
func PromptFlags(cmd *cobra.Command, args []string) error {
	var fs []*pflag.Flag
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if !f.Hidden {
			fs = append(fs, f)
		}
	})
	fs = append(fs, &pflag.Flag{
		Name:  "Continue...",
		Value: &continueType{},
	})

	templates := &promptui.SelectTemplates{
		Label:    "{{ . | magenta }} flags?",
		Active:   "➜ {{ if eq .Value.Type \"continue\" }}{{ .Name | bold | green }}{{ else }}{{ .Name | bold }} {{ .Usage | cyan }}{{ end }}",
		Inactive: "  {{ if eq .Value.Type \"continue\" }}{{ .Name | faint | green }}{{ else }}{{ .Name }} {{ .Usage | cyan }}{{ end }}",
		Selected: "{{ if eq .Value.Type \"continue\" }}{{ .Name | bold | green }}{{ else }}{{ .Name | bold }}{{ end }}",
		Details: `
--------- Details ----------
default: {{ .DefValue }}
type: {{ .Value.Type }}`,
	}

	searcher := func(input string, index int) bool {
		return strings.Contains(normalize(fs[index].Name), normalize(input))
	}

	index := 0
	for {
		prompt := promptui.Select{
			HideHelp:  true,
			Label:     cmd.Name(),
			Items:     fs,
			Templates: templates,
			Size:      10,
			CursorPos: index,
			Searcher:  searcher,
			Stdin:     io.NopCloser(cmd.InOrStdin()),
			Stdout:    NopCloser(cmd.OutOrStdout()),
		}

		i, _, err := prompt.Run()
		if err != nil {
			return fmt.Errorf("prompt failed: %w", err)
		}
		index = i

		var arg string
		switch t := fs[i].Value.Type(); t {
		case "continue":
			return run(cmd, args)
		case "bool":
			arg, err = PromptFlagBool(cmd, fs[i])
		default:
			arg, err = PromptFlagString(cmd, fs[i])
		}
		if err != nil {
			return err
		}
		if arg != "" {
			args = append(args, arg)
		}
	}
}

func run(cmd *cobra.Command, args []string) error {
	root := cmd.Root()
	args = append(args, InteractiveFlag)
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Running:", root.Name(), strings.Join(args, " "))
	root.SetArgs(args)
	return root.Execute()
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NopCloser wraps w for promptui, which wants to close its output.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopWriteCloser{w}
}

type continueType struct{}

func (*continueType) String() string {
	return "continue"
}

func (*continueType) Set(string) error {
	return nil
}

func (*continueType) Type() string {
	return "continue"
}
