package export

import (
	"bytes"
	"encoding/base64"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Flashcards"

var tableHeader = []string{"Question", "Answer", "Created At"}

// field renders rec[key] as text. Missing and null values are empty.
func field(rec Record, key string) string {
	switch v := rec[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

func row(rec Record) []string {
	return []string{field(rec, "question"), field(rec, "answer"), field(rec, "created_at")}
}

func encodeJSON(records []Record) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func encodeCSV(records []Record) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true
	if err := w.Write(tableHeader); err != nil {
		return "", err
	}
	for _, rec := range records {
		if err := w.Write(row(rec)); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// encodeTabSeparated writes one question<TAB>answer line per record, the
// import format shared by Anki and Quizlet.
func encodeTabSeparated(records []Record) string {
	lines := make([]string, 0, len(records))
	for _, rec := range records {
		lines = append(lines, field(rec, "question")+"\t"+field(rec, "answer"))
	}
	return strings.Join(lines, "\n")
}

func encodeXLSX(records []Record) (string, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return "", err
	}

	header := make([]any, len(tableHeader))
	for i, h := range tableHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return "", err
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		values := row(rec)
		cells := []any{values[0], values[1], values[2]}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return "", err
		}
	}

	_ = f.SetColWidth(sheetName, "A", "B", 60)
	_ = f.SetColWidth(sheetName, "C", "C", 28)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
