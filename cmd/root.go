package cmd

import (
	"github.com/spf13/cobra"

	"github.com/andyxwarren/factory-architect-sub002/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "factory-architect",
	Short: "Parameterized math question generator",
	Long: "Factory Architect generates curriculum-aligned math questions with " +
		"controlled difficulty, realistic scenarios and pedagogically grounded " +
		"wrong answers.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FACTORY_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then FACTORY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, nil
	}
	return store.DefaultDBPath()
}
