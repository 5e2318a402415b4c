package main

import (
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/charlie0129/battrack/pkg/config"
	"github.com/charlie0129/battrack/pkg/store"
)

// NewStatsCommand prints fleet statistics straight from the database, the
// same numbers the index page shows.
func NewStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		GroupID: gBasic,
		Short:   "Print fleet statistics",
		Long:    `Print battery count, total investment, and voltage/status breakdowns.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.NewFile(configPath)
			if err != nil {
				return err
			}

			st, err := store.Open(conf.DatabasePath())
			if err != nil {
				return err
			}
			defer func() {
				_ = st.Close()
			}()

			batteries, err := st.ListBatteries("")
			if err != nil {
				return err
			}

			stats := store.Stats(batteries)

			cmd.Println(bold("Fleet:"))
			cmd.Printf("  Batteries: %s\n", bold("%d", stats.Count))
			cmd.Printf("  Total investment: %s\n", bold("$%.2f", stats.TotalInvestment))

			cmd.Println()
			cmd.Println(bold("By voltage:"))
			for _, v := range sortedKeys(stats.Voltages) {
				cmd.Printf("  %s: %d\n", v, stats.Voltages[v])
			}

			cmd.Println()
			cmd.Println(bold("By status:"))
			for _, name := range store.ValidStatuses {
				n := stats.Statuses[name]
				if n == 0 {
					continue
				}
				label := name
				switch name {
				case store.StatusDead:
					label = color.RedString(name)
				case store.StatusNew, store.StatusInUse:
					label = color.GreenString(name)
				}
				cmd.Printf("  %s: %d\n", label, n)
			}

			return nil
		},
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}
