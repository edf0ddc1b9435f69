package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lpsim/lifeplan-simulator/internal/config"
)

func newExampleCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example input file to get started",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteExampleFile(outputPath); err != nil {
				return err
			}
			fmt.Printf("example input written to %s\n", outputPath)
			fmt.Println("run: lifeplan project -i " + outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "lifeplan.yaml", "where to write the example file")
	return cmd
}
