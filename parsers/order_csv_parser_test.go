// C:\Users\seoro\OneDrive\바탕 화면\SEROE\parsers\order_csv_parser_test.go
package parsers

import (
	"bytes"
	"testing"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

func encodeEUCKR(t *testing.T, s string) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	w := transform.NewWriter(&buf, korean.EUCKR.NewEncoder())
	if _, err := w.Write([]byte(s)); err != nil {
		t.Fatalf("encode EUC-KR: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close encoder: %v", err)
	}
	return &buf
}

func TestParseOrderCSV(t *testing.T) {
	t.Parallel()

	csvText := "상품이름,옵션이름,상품수량,수취인이름\n" +
		"[서로 수정과] 계피 수제,수정과 500ml 3병,2,홍길동\n" +
		"식혜,\"5개, 240ml\",1,\n"

	rows, err := ParseOrderCSV(encodeEUCKR(t, csvText))
	if err != nil {
		t.Fatalf("ParseOrderCSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	if rows[0].OptionText != "수정과 500ml 3병" || rows[0].Quantity != 2 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[0].RecipientName != "홍길동" {
		t.Fatalf("RecipientName = %q, want 홍길동", rows[0].RecipientName)
	}
	if rows[1].OptionText != "5개, 240ml" {
		t.Fatalf("quoted option text = %q", rows[1].OptionText)
	}
}

func TestParseOrderCSVEmpty(t *testing.T) {
	t.Parallel()

	if _, err := ParseOrderCSV(encodeEUCKR(t, "")); err == nil {
		t.Fatalf("expected error for empty CSV")
	}
}

func TestParseOrderCSVMissingColumn(t *testing.T) {
	t.Parallel()

	if _, err := ParseOrderCSV(encodeEUCKR(t, "상품이름,상품수량\n식혜,1\n")); err == nil {
		t.Fatalf("expected error for missing 옵션이름 column")
	}
}
