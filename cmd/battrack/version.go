package main

import (
	"github.com/spf13/cobra"

	"github.com/charlie0129/battrack/pkg/version"
)

// NewVersionCommand .
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		GroupID: gAdvanced,
		Short:   "Print version info",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", version.Version, version.GitCommit)
		},
	}
}
