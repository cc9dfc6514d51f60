package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ethanbaker/states/pkg/sdk"
	"github.com/spf13/cobra"
)

var apiURL string

var rootCmd = &cobra.Command{
	Use:           "statesctl",
	Short:         "Query and manage the US states API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "url", envOr("STATES_API_URL", "http://localhost:8080"), "States API base URL")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// NewRootCmd returns the root command, for tests
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// newClient builds an API client for the configured base URL
func newClient() *sdk.Client {
	return sdk.NewClient(apiURL)
}

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
