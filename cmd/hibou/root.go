package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hibou",
		Short:         "hibou is a behavioral oracle for interaction-model traces",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDrawCmd())
	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newExploreCmd())
	return root
}

// finish records code as the process exit code and turns any non-nil
// error into an *exitError carrying it, so main's Execute caller can
// recover the right code even though cobra only sees success/failure.
func finish(code int, err error) error {
	lastExitCode = code
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}
