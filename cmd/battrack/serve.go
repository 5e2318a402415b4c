package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/charlie0129/battrack/pkg/version"
	"github.com/charlie0129/battrack/pkg/webui"
)

var (
	listenOverride   = ""
	databaseOverride = ""
)

// NewServeCommand .
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Run the battrack web server in the foreground",
		GroupID: gBasic,
		RunE: func(_ *cobra.Command, _ []string) error {
			logrus.WithFields(logrus.Fields{
				"version": version.Version,
				"commit":  version.GitCommit,
			}).Info("battrack starting")
			return webui.Run(configPath, listenOverride, databaseOverride)
		},
	}

	f := cmd.Flags()

	f.StringVar(&listenOverride, "listen", "", "listen address, overrides the config file")
	f.StringVar(&databaseOverride, "database", "", "sqlite database path, overrides the config file")

	return cmd
}
