package roster

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"team-lab/domain"
	"team-lab/domain/mimetypes"
	"team-lab/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
)

// FormatFromPath picks the table format for .csv and .xlsx files and free text otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".xlsx":
		return FormatTable
	}
	return FormatText
}

// Load reads r in the given format.
func Load(r io.Reader, format Format) (domain.Roster, error) {
	switch format {
	case FormatTable:
		return LoadTable(r)
	case FormatText:
		content, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read roster: %w", err)
		}
		return ParseText(string(content))
	}
	return nil, fmt.Errorf("%w: %q", errors.ErrUnsupportedFormat, format)
}

// LoadTable sniffs an uploaded table and decodes it as XLSX (first sheet) or CSV.
func LoadTable(r io.Reader) (domain.Roster, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	rows, err := decodeTable(content)
	if err != nil {
		return nil, err
	}
	return ParseTable(rows)
}

func decodeTable(content []byte) ([][]string, error) {
	detected := mimetype.Detect(content).String()
	format, ok := mimetypes.Tabular(detected)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedFormat, detected)
	}
	switch format {
	case mimetypes.ApplicationXLSX, mimetypes.ApplicationZip:
		return readWorkbook(content)
	default:
		return readCSV(content)
	}
}

func readWorkbook(content []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrUnsupportedFormat, err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", errors.ErrUnsupportedFormat, sheets[0], err)
	}
	return rows, nil
}

func readCSV(content []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedLine, err)
	}
	return rows, nil
}
