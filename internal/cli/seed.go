package cli

import (
	"fmt"

	"github.com/ethanbaker/states/internal/api"
	"github.com/ethanbaker/states/pkg/states"
	"github.com/ethanbaker/states/pkg/utils"
	"github.com/spf13/cobra"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load fun facts from a YAML seed file straight into the database",
	Long: `Load fun facts into the MySQL database configured by the MYSQL_* settings.
Each seeded state's fun fact list is replaced. Without --file the bundled seed is used.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := utils.NewConfigFromEnv(utils.EnvFile()).Settings()
		if err != nil {
			return err
		}
		if !settings.MySQL.Enabled() {
			return fmt.Errorf("MYSQL_DATABASE is not set")
		}

		table, err := states.Load()
		if err != nil {
			return err
		}

		store, err := api.NewFunFactStore(settings)
		if err != nil {
			return err
		}

		return api.SeedFunFacts(cmd.Context(), store, table, seedFile)
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "YAML seed file (defaults to the bundled seed)")
	rootCmd.AddCommand(seedCmd)
}
