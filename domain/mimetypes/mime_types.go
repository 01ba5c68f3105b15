package mimetypes

import "mime"

type MIME string

const (
	Unknown   MIME = "unknown"
	TextPlain MIME = "text/plain"
	TextCSV   MIME = "text/csv"

	ApplicationZip  MIME = "application/zip"
	ApplicationXLSX MIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Matches strips parameters such as charset before comparing detected with expected.
func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	if mt != string(expected) {
		return Unknown, false
	}
	return expected, true
}

// Tabular reports which of the table formats the roster loader accepts detected belongs to.
// A bare zip is accepted; the workbook reader decides whether it holds a workbook.
func Tabular(detected string) (MIME, bool) {
	for _, candidate := range []MIME{ApplicationXLSX, ApplicationZip, TextCSV, TextPlain} {
		if mt, ok := Matches(detected, candidate); ok {
			return mt, true
		}
	}
	return Unknown, false
}
