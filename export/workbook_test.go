package export

import (
	"bytes"
	"os"
	"path/filepath"
	"team-lab/domain"
	"team-lab/errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleAllocation() domain.Allocation {
	return domain.Allocation{
		Requested: 2,
		Effective: 2,
		Groups: []domain.Group{
			{ID: 1, Members: []domain.RosterEntry{
				domain.NewRosterEntry("Tony", domain.Attack),
				domain.NewRosterEntry("Sam", domain.Midfield),
			}},
			{ID: 2, Members: []domain.RosterEntry{
				domain.NewRosterEntry("Mayo", domain.Defense),
			}},
		},
	}
}

func readWorkbook(t *testing.T, content []byte) map[string][][]string {
	t.Helper()
	req := require.New(t)
	f, err := excelize.OpenReader(bytes.NewReader(content))
	req.NoError(err)
	defer func() {
		_ = f.Close()
	}()

	sheets := make(map[string][][]string)
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		req.NoError(err)
		sheets[sheet] = rows
	}
	req.Equal([]string{"Team_1", "Team_2"}, f.GetSheetList())
	return sheets
}

func TestWrite_OneSheetPerGroup(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer

	req.NoError(Write(&buf, sampleAllocation()))

	sheets := readWorkbook(t, buf.Bytes())
	req.Equal([][]string{
		{"Name", "Position"},
		{"Tony", "ATT"},
		{"Sam", "MID"},
	}, sheets["Team_1"])
	req.Equal([][]string{
		{"Name", "Position"},
		{"Mayo", "DEF"},
	}, sheets["Team_2"])
}

func TestWrite_RejectsEmptyAllocation(t *testing.T) {
	var buf bytes.Buffer

	err := Write(&buf, domain.Allocation{})

	require.ErrorIs(t, err, errors.ErrEmptyRoster)
	require.Zero(t, buf.Len())
}

func TestWriteFile(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), FileName)

	req.NoError(WriteFile(path, sampleAllocation()))

	content, err := os.ReadFile(path)
	req.NoError(err)
	readWorkbook(t, content)
}

func TestWriteFile_RemovesPartialFile(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), FileName)

	err := WriteFile(path, domain.Allocation{})

	req.ErrorIs(err, errors.ErrEmptyRoster)
	_, statErr := os.Stat(path)
	req.True(os.IsNotExist(statErr))
}

func TestSheetName(t *testing.T) {
	require.Equal(t, "Team_12", SheetName(12))
	require.Equal(t, "teams_output.xlsx", FileName)
	require.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", ContentType)
}
