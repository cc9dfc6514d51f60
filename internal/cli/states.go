package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var listContig string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List states with their fun facts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var contig *bool
		if listContig != "" {
			parsed, err := strconv.ParseBool(listContig)
			if err != nil {
				return fmt.Errorf("--contig must be true or false")
			}
			contig = &parsed
		}

		result, err := newClient().ListStates(cmd.Context(), contig)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	},
}

var getCmd = &cobra.Command{
	Use:   "get CODE [capital|nickname|population|admission]",
	Short: "Show a state, or a single field of it",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		ctx := cmd.Context()

		field := ""
		if len(args) == 2 {
			field = args[1]
		}

		var (
			result any
			err    error
		)
		switch field {
		case "":
			result, err = client.GetState(ctx, args[0])
		case "capital":
			result, err = client.GetCapital(ctx, args[0])
		case "nickname":
			result, err = client.GetNickname(ctx, args[0])
		case "population":
			result, err = client.GetPopulation(ctx, args[0])
		case "admission":
			result, err = client.GetAdmission(ctx, args[0])
		default:
			return fmt.Errorf("unknown field '%s'", field)
		}
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), result)
	},
}

func init() {
	listCmd.Flags().StringVar(&listContig, "contig", "", "Filter to contiguous (true) or non-contiguous (false) states")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
}
