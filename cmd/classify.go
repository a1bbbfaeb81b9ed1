package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/soilsense/internal/analysis"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify PARAM VALUE",
		Short: "Print the status band of a single reading",
		Long: "Classify one reading as Low, Optimal, Good or High. PARAM is one of ph,\n" +
			"temperature, moisture, ec or organic_carbon. Unknown parameters print Unknown.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("value %q is not a number", args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), analysis.ClassifyName(args[0], v))
			return nil
		},
	}
}
