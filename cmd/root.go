package cmd

import (
	"clipgrab/pkg/clipgrab"
	"clipgrab/pkg/logging"
	"clipgrab/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cmdFlags struct {
	not         []string
	noGitignore bool
	verbose     bool
}

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "clipgrab <pattern|+tag> [pattern|+tag ...]",
	Short: "Copy matching files to the clipboard",
	Long: `Clipgrab selects files by glob pattern or inline tag, concatenates their
contents with file-boundary markers, and places the result on the system
clipboard, ready to be pasted into a chat prompt.

Inclusion arguments:
  Glob patterns:  e.g. "*.js", "src/*.sh". A pattern without a path separator
                  matches at any depth ("*.txt" behaves like "**/*.txt"); a
                  pattern with a separator matches only at that location.
  Tags:           Any argument starting with a plus sign is a tag reference
                  (e.g. +frontend). Files containing a "tags:" marker followed
                  by #frontend are selected.

Exclusion arguments (--not, repeatable):
  --not "*.test.js"   excludes files matching the glob
  --not +experimental excludes files carrying the tag

The project .gitignore is honored when scanning for tags; node_modules is
always skipped.`,
	Example: `  clipgrab "*.py" "*.md"
  clipgrab +frontend "*.json" --not "*.test.json" --not +experimental`,
	Args: cobra.MinimumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Setup(cmdFlags.verbose, "clipgrab", version.Version)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Arguments are valid past this point; a failure from here on is a
		// runtime error, not a usage error.
		cmd.SilenceUsage = true
		return clipgrab.Run(clipgrab.Arguments{
			Patterns:       args,
			Excludes:       cmdFlags.not,
			RespectIgnores: !cmdFlags.noGitignore,
		}, zap.L())
	},
}

// Execute runs the root command and returns any error for main to classify.
func Execute() error {
	RootCmd.CompletionOptions.DisableDefaultCmd = true
	RootCmd.SilenceErrors = true
	return RootCmd.Execute()
}

// Verbose reports whether the --verbose flag was set on the command line.
func Verbose() bool {
	return cmdFlags.verbose
}

func init() {
	RootCmd.Flags().StringArrayVar(&cmdFlags.not, "not", nil, "Exclude files matching a glob or +tag (repeatable)")
	RootCmd.Flags().BoolVar(&cmdFlags.noGitignore, "nogitignore", false, "Do not consult the project .gitignore")
	RootCmd.PersistentFlags().BoolVar(&cmdFlags.verbose, "verbose", false, "Print full diagnostic detail on errors")
}
