// CLI front end for the nutrition engine: BMR, TDEE, macros, full plans and
// unit conversions without a server or database.
// Usage: go run ./cmd/nutricalc bmr --age 30 --weight 70 --height 175 --gender male --units metric
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer adds thousand separators to calorie figures.
var printer = message.NewPrinter(language.English)

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	log zerolog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Engine diagnostics go to stderr at
// --log-level; results go to stdout.
func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}
	var logLevel string

	root := &cobra.Command{
		Use:          "nutricalc",
		Short:        "Calculate BMR, TDEE and macro targets",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			a.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
				Level(level).With().Timestamp().Logger()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "engine log level (debug, info, warn, error)")

	root.AddCommand(
		a.newBMRCmd(),
		a.newTDEECmd(),
		a.newMacrosCmd(),
		a.newPlanCmd(),
		a.newConvertCmd(),
	)
	return root
}

// kcal formats a calorie count with thousand separators.
func kcal(n int) string {
	return printer.Sprintf("%d kcal", n)
}
