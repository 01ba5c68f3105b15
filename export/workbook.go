// Package export writes an allocation as a spreadsheet workbook, one sheet per team.
package export

import (
	"fmt"
	"io"
	"os"
	"team-lab/domain"
	"team-lab/domain/mimetypes"
	"team-lab/errors"

	"github.com/xuri/excelize/v2"
)

const (
	FileName    = "teams_output.xlsx"
	ContentType = string(mimetypes.ApplicationXLSX)
)

var header = []any{"Name", "Position"}

func SheetName(id domain.GroupID) string {
	return fmt.Sprintf("Team_%d", id)
}

// Write renders each group on its own sheet, in group order, with members in assignment order.
func Write(w io.Writer, allocation domain.Allocation) (err error) {
	if len(allocation.Groups) == 0 {
		return errors.ErrEmptyRoster
	}

	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	for i, group := range allocation.Groups {
		sheet := SheetName(group.ID)
		if err = addSheet(f, i, sheet); err != nil {
			return err
		}
		if err = writeGroup(f, sheet, group); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if _, err = f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// addSheet reuses the sheet every new workbook starts with for the first group.
func addSheet(f *excelize.File, index int, sheet string) error {
	if index == 0 {
		if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
			return fmt.Errorf("rename sheet to %s: %w", sheet, err)
		}
		return nil
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}
	return nil
}

func writeGroup(f *excelize.File, sheet string, group domain.Group) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}
	for i, member := range group.Members {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{member.Name, member.Role.String()}
		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

// WriteFile writes the workbook to path. The file is always closed and removed again when writing fails.
func WriteFile(path string, allocation domain.Allocation) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	return Write(file, allocation)
}
