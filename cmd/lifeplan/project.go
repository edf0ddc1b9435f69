package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lpsim/lifeplan-simulator/internal/calculation"
	"github.com/lpsim/lifeplan-simulator/internal/config"
	"github.com/lpsim/lifeplan-simulator/internal/output"
	"github.com/lpsim/lifeplan-simulator/internal/store"
)

func newProjectCmd() *cobra.Command {
	var (
		inputPath    string
		format       string
		outputPath   string
		snapshotPath string
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Run the projection and render the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(inputPath)
			if err != nil {
				return err
			}
			log.Debugf("loaded input: %d simulated years starting %d",
				cfg.Input.Profile.HorizonYears(), cfg.Input.Profile.StartYear)

			engine := calculation.NewEngine()
			engine.SetLogger(&engineLogger{log: log})

			st := store.New(engine)
			st.Load(cfg.Input, cfg.LifeEvents)

			ledger := st.Ledger()
			if ledger == nil {
				return fmt.Errorf("projection produced no ledger")
			}

			if snapshotPath != "" {
				if err := st.SaveFile(snapshotPath); err != nil {
					return err
				}
				log.Infof("snapshot written to %s", snapshotPath)
			}

			formatter, err := output.NewFormatter(format)
			if err != nil {
				return err
			}
			rendered, err := formatter.Format(&output.Report{
				Profile:    cfg.Input.Profile,
				Parameters: cfg.Input.Parameters,
				LifeEvents: cfg.LifeEvents,
				Ledger:     ledger,
			})
			if err != nil {
				return err
			}

			if outputPath == "" {
				_, err = os.Stdout.Write(rendered)
				return err
			}
			if err := os.WriteFile(outputPath, rendered, 0o644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			fmt.Printf("ledger written to %s (%s, %d years)\n", outputPath, formatter.Name(), len(ledger.Years))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "YAML input file (required)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format: csv, json or console")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "also write a JSON state snapshot")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
