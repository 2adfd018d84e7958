package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lg/stride-fitness-api/nutrition"
)

func (a *app) newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert height or weight between metric and imperial",
	}
	cmd.AddCommand(newConvertHeightCmd(), newConvertWeightCmd())
	return cmd
}

func newConvertHeightCmd() *cobra.Command {
	var (
		value, feet, inches float64
		from, to            string
	)
	cmd := &cobra.Command{
		Use:   "height",
		Short: "Convert a height",
		Example: `  nutricalc convert height --feet 5 --inches 9 --from imperial --to metric
  nutricalc convert height --value 180 --from metric --to imperial`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h := nutrition.LegacyNumber(value)
			if cmd.Flags().Changed("feet") || cmd.Flags().Changed("inches") {
				h = nutrition.FeetAndInches(feet, inches)
			}
			out, err := nutrition.ConvertHeight(h, from, to)
			if err != nil {
				return err
			}
			resolved, _ := out.Resolve(to)
			cm, _ := resolved.CM()
			display, err := nutrition.FormatHeight(cm, to)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), display)
			return nil
		},
	}
	cmd.Flags().Float64Var(&value, "value", 0, "height in cm")
	cmd.Flags().Float64Var(&feet, "feet", 0, "height feet")
	cmd.Flags().Float64Var(&inches, "inches", 0, "height inches")
	cmd.Flags().StringVar(&from, "from", nutrition.Metric, "source unit system")
	cmd.Flags().StringVar(&to, "to", nutrition.Imperial, "target unit system")
	return cmd
}

func newConvertWeightCmd() *cobra.Command {
	var (
		value    float64
		from, to string
	)
	cmd := &cobra.Command{
		Use:     "weight",
		Short:   "Convert a weight",
		Example: "  nutricalc convert weight --value 154 --from imperial --to metric",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := nutrition.ConvertWeight(value, from, to)
			if err != nil {
				return err
			}
			display, err := nutrition.FormatWeight(out, to)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), display)
			return nil
		},
	}
	cmd.Flags().Float64Var(&value, "value", 0, "weight")
	cmd.Flags().StringVar(&from, "from", nutrition.Metric, "source unit system")
	cmd.Flags().StringVar(&to, "to", nutrition.Imperial, "target unit system")
	return cmd
}
