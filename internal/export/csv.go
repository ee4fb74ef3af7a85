package export

import (
	"encoding/csv"
	"os"

	"nippou/internal/errors"
	"nippou/internal/model"
)

// ToCSV writes reports to a CSV file, one row per report.
func ToCSV(reports []model.DailyReport, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.NewSystemErrorWithOp("export", "create csv file", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"ID", "Date", "Start", "End", "Total", "Location",
		"TaskStatus", "Tasks", "NextDayLocation", "Notes"}
	if err := w.Write(header); err != nil {
		return errors.NewSystemErrorWithOp("export", "write csv header", err)
	}

	for _, r := range reports {
		row := []string{
			r.ID,
			r.Date,
			r.WorkHours.Start,
			r.WorkHours.End,
			r.WorkHours.Total,
			r.Location,
			r.TaskStatus,
			r.Tasks,
			r.NextDayLocation,
			r.Notes,
		}
		if err := w.Write(row); err != nil {
			return errors.NewSystemErrorWithOp("export", "write csv row", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return errors.NewSystemErrorWithOp("export", "flush csv", err)
	}
	return nil
}
