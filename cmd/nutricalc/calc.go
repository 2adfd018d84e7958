package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"lg/stride-fitness-api/nutrition"
)

/* ─── Biometric flags ────────────────────────────────────────────────── */

// biometricFlags binds the BMR inputs. Only flags the user actually set are
// passed to the engine, so an omitted flag surfaces as a missing field.
type biometricFlags struct {
	age, weight, height, feet, inches float64
	gender, units                     string
}

func (f *biometricFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.age, "age", 0, "age in years (1-120)")
	cmd.Flags().Float64Var(&f.weight, "weight", 0, "weight in kg (metric) or lbs (imperial)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "height in cm (metric) or total inches (imperial)")
	cmd.Flags().Float64Var(&f.feet, "feet", 0, "height feet (imperial)")
	cmd.Flags().Float64Var(&f.inches, "inches", 0, "height inches (imperial, 0-11)")
	cmd.Flags().StringVar(&f.gender, "gender", "", "male or female")
	cmd.Flags().StringVar(&f.units, "units", "", "metric or imperial")
}

func (f *biometricFlags) input(cmd *cobra.Command) nutrition.BiometricInput {
	set := cmd.Flags().Changed
	var in nutrition.BiometricInput
	if set("age") {
		in.Age = &f.age
	}
	if set("weight") {
		in.Weight = &f.weight
	}
	if h, ok := f.heightValue(set); ok {
		in.Height = &h
	}
	if set("gender") {
		in.Gender = &f.gender
	}
	if set("units") {
		in.Units = &f.units
	}
	return in
}

// heightValue prefers --feet/--inches over --height.
func (f *biometricFlags) heightValue(set func(string) bool) (nutrition.Height, bool) {
	switch {
	case set("feet") || set("inches"):
		h := nutrition.Height{Kind: nutrition.HeightFeetInches}
		if set("feet") {
			h.Feet = &f.feet
		}
		if set("inches") {
			h.Inches = &f.inches
		}
		return h, true
	case set("height"):
		return nutrition.LegacyNumber(f.height), true
	default:
		return nutrition.Height{}, false
	}
}

/* ─── Calculators ────────────────────────────────────────────────────── */

func (a *app) newBMRCmd() *cobra.Command {
	var f biometricFlags
	cmd := &cobra.Command{
		Use:   "bmr",
		Short: "Basal metabolic rate (Mifflin-St Jeor)",
		Example: `  nutricalc bmr --age 30 --weight 70 --height 175 --gender male --units metric
  nutricalc bmr --age 30 --weight 154 --feet 5 --inches 9 --gender female --units imperial`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bmr, err := nutrition.CalculateBMR(f.input(cmd), a.log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "BMR: %s/day\n", kcal(bmr))
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func (a *app) newTDEECmd() *cobra.Command {
	var (
		bmr      float64
		activity string
	)
	cmd := &cobra.Command{
		Use:   "tdee",
		Short: "Total daily energy expenditure from a BMR",
		Long: `Scales a BMR by an activity multiplier. Accepted levels: sedentary, light,
moderate, active, extra_active, plus aliases such as lightly_active or 3-5.`,
		Example: "  nutricalc tdee --bmr 1700 --activity light",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tdee, err := nutrition.CalculateTDEE(bmr, activity, a.log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "TDEE: %s/day\n", kcal(tdee))
			return nil
		},
	}
	cmd.Flags().Float64Var(&bmr, "bmr", 0, "basal metabolic rate in kcal")
	cmd.Flags().StringVar(&activity, "activity", "", "activity level")
	return cmd
}

func (a *app) newMacrosCmd() *cobra.Command {
	var (
		tdee  float64
		goals []string
	)
	cmd := &cobra.Command{
		Use:     "macros",
		Short:   "Daily protein, carb and fat targets for a TDEE",
		Example: "  nutricalc macros --tdee 2400 --goal weight_loss",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := nutrition.CalculateMacros(tdee, goals, a.log)
			if err != nil {
				return err
			}
			goal, _ := nutrition.PrimaryGoal(goals)
			fmt.Fprintf(cmd.OutOrStdout(), "Goal: %s\n", goal)
			printMacros(cmd, m)
			return nil
		},
	}
	cmd.Flags().Float64Var(&tdee, "tdee", 0, "total daily energy expenditure in kcal")
	cmd.Flags().StringSliceVar(&goals, "goal", nil, "fitness goal (repeatable; first recognized wins)")
	return cmd
}

func printMacros(cmd *cobra.Command, m nutrition.MacroResult) {
	fmt.Fprintf(cmd.OutOrStdout(), "Protein:  %d g\n", m.ProteinG)
	fmt.Fprintf(cmd.OutOrStdout(), "Carbs:    %d g\n", m.CarbsG)
	fmt.Fprintf(cmd.OutOrStdout(), "Fat:      %d g\n", m.FatG)
	fmt.Fprintf(cmd.OutOrStdout(), "Calories: %s\n", kcal(m.Calories))
}

/* ─── Plan ───────────────────────────────────────────────────────────── */

func (a *app) newPlanCmd() *cobra.Command {
	var (
		file   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Run BMR, TDEE and macros from a profile document",
		Long: `Reads a YAML or JSON document with biometrics, activity_level and goals
and runs the full calculation chain.`,
		Example: `  nutricalc plan --file profile.yaml
  nutricalc plan --file profile.json --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := loadPlanRequest(file)
			if err != nil {
				return err
			}
			plan, err := nutrition.CalculatePlan(req, a.log)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(plan)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "BMR:      %s/day\n", kcal(plan.BMR))
			fmt.Fprintf(cmd.OutOrStdout(), "TDEE:     %s/day\n", kcal(plan.TDEE))
			fmt.Fprintf(cmd.OutOrStdout(), "Goal:     %s\n", plan.Goal)
			printMacros(cmd, plan.Macros)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "profile document (.yaml, .yml or .json)")
	_ = cmd.MarkFlagRequired("file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the plan as JSON")
	return cmd
}

// loadPlanRequest reads a plan document. YAML is decoded generically and
// re-encoded as JSON so the engine's JSON decoding rules (height union,
// wrong-typed fields) apply to both formats.
func loadPlanRequest(path string) (nutrition.PlanRequest, error) {
	var req nutrition.PlanRequest
	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("reading plan file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &req); err != nil {
			return req, fmt.Errorf("parsing %s: %w", path, err)
		}
		return req, nil
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return req, fmt.Errorf("parsing %s: %w", path, err)
	}
	asJSON, err := json.Marshal(doc)
	if err != nil {
		return req, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := json.Unmarshal(asJSON, &req); err != nil {
		return req, fmt.Errorf("parsing %s: %w", path, err)
	}
	return req, nil
}
