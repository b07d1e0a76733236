package bundlr

import (
	"fmt"
	"os"

	"github.com/arthur-debert/bundlr/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// MsgCompletionLong explains how to load completions for each shell
const MsgCompletionLong = `To load completions:

Bash:
  $ source <(bundlr completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ bundlr completion bash > /etc/bash_completion.d/bundlr
  # macOS:
  $ bundlr completion bash > /usr/local/etc/bash_completion.d/bundlr

Zsh:
  $ bundlr completion zsh > "${fpath[1]}/_bundlr"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ bundlr completion fish > ~/.config/fish/completions/bundlr.fish

PowerShell:
  PS> bundlr completion powershell | Out-String | Invoke-Expression
`

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
			if err := doc.GenManTree(cmd.Root(), ManHeader(), dir); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.ErrOrStderr(), MsgManWritten, dir)
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", MsgFlagManDir)

	return cmd
}

// ManHeader is the header used for every generated man page
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "BUNDLR",
		Section: "1",
		Source:  "bundlr " + version.Version,
		Manual:  "bundlr manual",
	}
}
