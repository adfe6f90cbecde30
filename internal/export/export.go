package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/yukikurage/shift-schedule-api/internal/constants"
	"github.com/yukikurage/shift-schedule-api/internal/models"
	"github.com/yukikurage/shift-schedule-api/internal/utils"
)

var header = []interface{}{"Name", "Position", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun", "Total hours"}

var columnWidths = []float64{25, 15, 12, 12, 12, 12, 12, 12, 12, 12}

// headerRow is the row holding column titles; staff rows follow it.
const headerRow = 3

// WeekWorkbook renders the schedules of one week into an xlsx workbook.
// Schedules are written in the order given.
func WeekWorkbook(week utils.WeekBounds, loc *time.Location, schedules []models.Schedule) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := constants.ExportSheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetCellValue(sheet, "A1", Title(week, loc)); err != nil {
		return nil, err
	}
	if err := setRow(f, sheet, headerRow, header); err != nil {
		return nil, err
	}

	for i, schedule := range schedules {
		if err := setRow(f, sheet, headerRow+1+i, scheduleRow(schedule)); err != nil {
			return nil, err
		}
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Title is the heading written above the table.
func Title(week utils.WeekBounds, loc *time.Location) string {
	return "Schedule for the week " + week.ShortLabel(loc)
}

// Filename is the attachment name for the week's export.
func Filename(week utils.WeekBounds, loc *time.Location) string {
	s, e := week.Start.In(loc), week.End.In(loc)
	return fmt.Sprintf("schedule_%d-%d_%d-%d.xlsx", s.Day(), int(s.Month()), e.Day(), int(e.Month()))
}

func scheduleRow(schedule models.Schedule) []interface{} {
	row := make([]interface{}, 0, len(header))
	row = append(row, schedule.User.FullName(), schedule.User.Position)
	for _, day := range models.WeekOrder {
		value := constants.DayOffMarker
		if shift := schedule.Day(day); shift != nil && *shift != "" {
			value = *shift
		}
		row = append(row, value)
	}
	return append(row, schedule.TotalHours)
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
