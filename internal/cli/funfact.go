package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var funfactCmd = &cobra.Command{
	Use:   "funfact",
	Short: "Read and edit state fun facts",
}

var funfactRandomCmd = &cobra.Command{
	Use:   "random CODE",
	Short: "Print a random fun fact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fact, err := newClient().GetRandomFunFact(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), fact)
		return err
	},
}

var funfactAddCmd = &cobra.Command{
	Use:   "add CODE FACT...",
	Short: "Append fun facts",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := newClient().AddFunFacts(cmd.Context(), args[0], args[1:]...)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), doc)
	},
}

var funfactUpdateCmd = &cobra.Command{
	Use:   "update CODE INDEX FACT",
	Short: "Replace the fun fact at a 1-based index",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid index '%s'", args[1])
		}

		doc, err := newClient().UpdateFunFact(cmd.Context(), args[0], index, args[2])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), doc)
	},
}

var funfactDeleteCmd = &cobra.Command{
	Use:   "delete CODE INDEX",
	Short: "Remove the fun fact at a 1-based index",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid index '%s'", args[1])
		}

		doc, err := newClient().DeleteFunFact(cmd.Context(), args[0], index)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), doc)
	},
}

func init() {
	funfactCmd.AddCommand(funfactRandomCmd)
	funfactCmd.AddCommand(funfactAddCmd)
	funfactCmd.AddCommand(funfactUpdateCmd)
	funfactCmd.AddCommand(funfactDeleteCmd)

	rootCmd.AddCommand(funfactCmd)
}
