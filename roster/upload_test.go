package roster

import (
	"strings"
	"team-lab/domain"
	"team-lab/errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseTable(t *testing.T) {
	req := require.New(t)
	rows := [][]string{
		{"Age", " position ", "NAME"},
		{"31", "ATT", "Tony"},
		{"", "", ""},
		{"28", "def", "Mayo"},
	}

	roster, err := ParseTable(rows)

	req.NoError(err)
	req.Equal(domain.Roster{
		domain.NewRosterEntry("Tony", domain.Attack),
		domain.NewRosterEntry("Mayo", domain.Defense),
	}, roster)
}

func TestParseTable_Rejections(t *testing.T) {
	tests := []struct {
		description string
		rows        [][]string
		want        error
	}{
		{"Should reject a table without Position", [][]string{{"Name", "Role"}, {"Tony", "ATT"}}, errors.ErrMissingColumn},
		{"Should reject a table without Name", [][]string{{"Player", "Position"}, {"Tony", "ATT"}}, errors.ErrMissingColumn},
		{"Should reject a table without header", nil, errors.ErrMissingColumn},
		{"Should reject an unknown position", [][]string{{"Name", "Position"}, {"Tony", "ATT"}, {"Mayo", "GK"}}, errors.ErrInvalidRole},
		{"Should reject a row without name", [][]string{{"Name", "Position"}, {"", "ATT"}}, errors.ErrMalformedLine},
		{"Should reject a header without rows", [][]string{{"Name", "Position"}}, errors.ErrEmptyRoster},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			roster, err := ParseTable(tt.rows)
			req.Nil(roster)
			req.ErrorIs(err, tt.want)
		})
	}
}

func TestParseTable_NamesTheMissingColumn(t *testing.T) {
	_, err := ParseTable([][]string{{"Name", "Role"}})

	require.EqualError(t, err, `missing required column "Position"`)
}

func TestLoadTable_CSV(t *testing.T) {
	req := require.New(t)
	upload := "\ufeffName,Position\nTony,ATT\nMayo,def\nSam, MID\n"

	roster, err := LoadTable(strings.NewReader(upload))

	req.NoError(err)
	req.Equal(domain.Roster{
		domain.NewRosterEntry("Tony", domain.Attack),
		domain.NewRosterEntry("Mayo", domain.Defense),
		domain.NewRosterEntry("Sam", domain.Midfield),
	}, roster)
}

func TestLoadTable_CSVMissingPosition(t *testing.T) {
	_, err := LoadTable(strings.NewReader("Name,Role\nTony,ATT\nMayo,DEF\n"))

	require.ErrorIs(t, err, errors.ErrMissingColumn)
}

func TestLoadTable_Workbook(t *testing.T) {
	req := require.New(t)
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()
	req.NoError(f.SetSheetRow("Sheet1", "A1", &[]any{"Name", "Position"}))
	req.NoError(f.SetSheetRow("Sheet1", "A2", &[]any{"Tony", "ATT"}))
	req.NoError(f.SetSheetRow("Sheet1", "A3", &[]any{"Lee", "mid"}))
	buf, err := f.WriteToBuffer()
	req.NoError(err)

	roster, err := LoadTable(buf)

	req.NoError(err)
	req.Equal(domain.Roster{
		domain.NewRosterEntry("Tony", domain.Attack),
		domain.NewRosterEntry("Lee", domain.Midfield),
	}, roster)
}

func TestLoadTable_UnsupportedFormat(t *testing.T) {
	_, err := LoadTable(strings.NewReader("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n"))

	require.ErrorIs(t, err, errors.ErrUnsupportedFormat)
}

func TestLoad(t *testing.T) {
	req := require.New(t)

	roster, err := Load(strings.NewReader("Tony - ATT\nMayo - DEF"), FormatFromPath("players.txt"))
	req.NoError(err)
	req.Len(roster, 2)

	roster, err = Load(strings.NewReader("Name,Position\nTony,ATT\n"), FormatFromPath("players.CSV"))
	req.NoError(err)
	req.Len(roster, 1)

	_, err = Load(strings.NewReader(""), Format("yaml"))
	req.ErrorIs(err, errors.ErrUnsupportedFormat)
}
