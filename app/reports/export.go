package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Nayan-navghane/School-application/app/apperr"
	"github.com/Nayan-navghane/School-application/app/store"
)

// AttendanceRegister builds an xlsx register for one date's attendance
// records, one row per marked entity.
func AttendanceRegister(date string, records []store.Record) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Attendance"

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, apperr.Collaborator("build attendance register", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, apperr.Collaborator("build attendance register", err)
	}

	headers := []string{"Entity ID", "Kind", "Class", "Date", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, apperr.Collaborator("build attendance register", err)
		}
	}

	for row, rec := range records {
		values := []string{
			rec.Field("entity_id"),
			rec.Field("kind"),
			rec.Field("class"),
			rec.Field("date"),
			rec.Field("status"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, apperr.Collaborator("build attendance register", err)
			}
		}
	}

	title, _ := excelize.CoordinatesToCellName(1, len(records)+3)
	if err := f.SetCellValue(sheet, title, fmt.Sprintf("Register for %s (%d records)", date, len(records))); err != nil {
		return nil, apperr.Collaborator("build attendance register", err)
	}
	return f, nil
}
