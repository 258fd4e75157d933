package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// newCompletionCmd creates the completion command for generating shell completions.
func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for cnf2lightswitch.

To load completions:

Bash:
  $ source <(cnf2lightswitch completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ cnf2lightswitch completion bash > /etc/bash_completion.d/cnf2lightswitch
  # macOS:
  $ cnf2lightswitch completion bash > $(brew --prefix)/etc/bash_completion.d/cnf2lightswitch

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ cnf2lightswitch completion zsh > "${fpath[1]}/_cnf2lightswitch"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ cnf2lightswitch completion fish | source

  # To load completions for each session, execute once:
  $ cnf2lightswitch completion fish > ~/.config/fish/completions/cnf2lightswitch.fish

PowerShell:
  PS> cnf2lightswitch completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> cnf2lightswitch completion powershell > cnf2lightswitch.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
