package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/minewise/pitpixie/internal/batch"
)

// referenceSeparator joins cited titles into one CSV cell.
const referenceSeparator = "; "

// ConvertJSONToCSV flattens a structured batch document into a CSV with
// columns prompt, answer, references.
func ConvertJSONToCSV(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputPath, err)
	}

	var doc batch.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode %s: %w", inputPath, err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outputPath, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"prompt", "answer", "references"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, record := range doc.Responses {
		row := []string{
			record.Prompt,
			record.Answer,
			strings.Join(record.References, referenceSeparator),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
