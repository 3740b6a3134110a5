package main

import (
	"path/filepath"

	"github.com/minewise/pitpixie/internal/batch"
	"github.com/minewise/pitpixie/internal/config"
	"github.com/minewise/pitpixie/internal/report"
	"github.com/spf13/cobra"
)

var (
	convertInput  string
	convertOutput string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a structured batch document to CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		appCfg := config.NewAppConfig(ctx)

		input := convertInput
		if input == "" {
			input = filepath.Join(appCfg.OutputsPath, batch.JSONFileName)
		}
		output := convertOutput
		if output == "" {
			output = input[:len(input)-len(filepath.Ext(input))] + ".csv"
		}

		return report.ConvertJSONToCSV(input, output)
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "", "batch JSON document (default from config)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "CSV destination (default next to input)")
	rootCmd.AddCommand(convertCmd)
}
