package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"ResumeBot/document"
	"ResumeBot/model"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	renderInput  string
	renderOutput string
)

//nolint:gochecknoglobals // Cobra boilerplate
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a résumé record file to PDF without Telegram",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return renderFile(renderInput, renderOutput)
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	renderCmd.Flags().StringVarP(&renderInput, "input", "i", "", "YAML record file (required)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", document.FileName, "PDF output path")
	_ = renderCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(renderCmd)
}

// loadRecord reads a record written in the YAML form of model.Record.
func loadRecord(path string) (model.Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Record{}, fmt.Errorf("error reading record: %w", err)
	}
	var rec model.Record
	if err := yaml.Unmarshal(raw, &rec); err != nil {
		return model.Record{}, fmt.Errorf("error parsing record %s: %w", path, err)
	}
	return rec, nil
}

func writePDF(rec model.Record, output string) error {
	data, err := document.Generate(rec)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", output, err)
	}
	return nil
}

func renderFile(input, output string) error {
	rec, err := loadRecord(input)
	if err != nil {
		return err
	}
	return writePDF(rec, output)
}
