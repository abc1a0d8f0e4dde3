package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfFile reads every page in order and joins the page texts with a newline.
// The parser panics on some malformed inputs, so panics are converted to
// extraction errors.
func pdfFile(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{Kind: KindPDF, Err: fmt.Errorf("malformed PDF: %v", r)}
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractionError{Kind: KindPDF, Err: err}
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{Kind: KindPDF, Err: fmt.Errorf("page %d: %w", i, err)}
		}
		if i > 1 {
			sb.WriteString("\n")
		}
		sb.WriteString(pageText)
	}

	return sb.String(), nil
}
