// Command lifeplan runs a life plan cash flow projection from a YAML input
// file and renders the resulting ledger.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	log   = logrus.New()
	debug bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lifeplan",
		Short: "Life plan cash flow simulator",
		Long: `lifeplan projects year-by-year household cash flow from the current age
to the end of the planning horizon: net income after tax, housing and
education costs, public pension benefits and investment growth. Amounts
are in man-yen (units of 10,000 yen).`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(os.Stderr)
			log.SetLevel(logrus.WarnLevel)
			if debug {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.AddCommand(newProjectCmd())
	rootCmd.AddCommand(newExampleCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// engineLogger adapts logrus to the engine's logging interface.
type engineLogger struct {
	log *logrus.Logger
}

func (l *engineLogger) Debugf(format string, args ...any) { l.log.Debugf(format, args...) }
func (l *engineLogger) Infof(format string, args ...any)  { l.log.Infof(format, args...) }
func (l *engineLogger) Warnf(format string, args ...any)  { l.log.Warnf(format, args...) }
func (l *engineLogger) Errorf(format string, args ...any) { l.log.Errorf(format, args...) }
