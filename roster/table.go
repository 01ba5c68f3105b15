package roster

import (
	"fmt"
	"strings"
	"team-lab/domain"
	"team-lab/errors"

	"github.com/samber/lo"
)

const (
	NameColumn     = "Name"
	PositionColumn = "Position"
)

// ParseTable reads rows whose first row is a header holding the Name and Position columns.
// Header cells match case-insensitively; other columns are ignored.
func ParseTable(rows [][]string) (domain.Roster, error) {
	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}
	nameIndex, err := columnIndex(header, NameColumn)
	if err != nil {
		return nil, err
	}
	positionIndex, err := columnIndex(header, PositionColumn)
	if err != nil {
		return nil, err
	}

	var roster domain.Roster
	for i, row := range lo.Drop(rows, 1) {
		if blank(row) {
			continue
		}
		entry, err := newEntry(cell(row, nameIndex), cell(row, positionIndex), fmt.Sprintf("row %d", i+2))
		if err != nil {
			return nil, err
		}
		roster = append(roster, entry)
	}
	if len(roster) == 0 {
		return nil, errors.ErrEmptyRoster
	}
	return roster, nil
}

func columnIndex(header []string, column string) (int, error) {
	_, index, found := lo.FindIndexOf(header, func(value string) bool {
		return strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(value, "\ufeff")), column)
	})
	if !found {
		return -1, errors.MissingColumnError{Column: column}
	}
	return index, nil
}

// cell tolerates short rows; spreadsheet readers drop trailing empty cells.
func cell(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return row[index]
}

func blank(row []string) bool {
	return lo.EveryBy(row, func(value string) bool {
		return strings.TrimSpace(value) == ""
	})
}
