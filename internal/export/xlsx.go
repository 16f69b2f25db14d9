package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"jobtrail/internal/domain"
)

const sheetName = "Jobs"

// WriteXLSX renders jobs as a single-sheet workbook and writes it to w.
func WriteXLSX(w io.Writer, jobs []domain.Job) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	for i := range jobs {
		job := &jobs[i]
		row := []interface{}{
			job.Company,
			job.Title,
			string(job.Status),
			job.AppliedDate,
			job.Notes,
			job.ImageURL,
			job.CreatedAt.Format(time.RFC3339),
			job.UpdatedAt.Format(time.RFC3339),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("resolving cell: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
