// C:\Users\seoro\OneDrive\바탕 화면\SEROE\parsers\excel_order_parser_test.go
package parsers

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildOrderWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf
}

func TestParseOrderXLSX(t *testing.T) {
	t.Parallel()

	buf := buildOrderWorkbook(t, [][]interface{}{
		{"상품이름", "옵션이름", "상품수량", "수취인이름", "주문자이름", "주문자전화번호1"},
		{"[서로 단호박식혜] 국산", "단호박식혜 1L 2병", "3", "김영희", "김철수", "010-1234-5678"},
		{"", "", "", "", "", ""},
		{"수정과", "500ml 3병", "비정상", "", "이몽룡", "010-9999-0000"},
	})

	rows, err := ParseOrderXLSX(buf)
	if err != nil {
		t.Fatalf("ParseOrderXLSX: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (빈 행 제외)", len(rows))
	}

	first := rows[0]
	if first.ProductName != "[서로 단호박식혜] 국산" || first.OptionText != "단호박식혜 1L 2병" {
		t.Fatalf("unexpected first row: %+v", first)
	}
	if first.Quantity != 3 {
		t.Fatalf("Quantity = %d, want 3", first.Quantity)
	}
	if first.RecipientName != "김영희" || first.OrdererName != "김철수" || first.OrdererPhone != "010-1234-5678" {
		t.Fatalf("unexpected personal fields: %+v", first)
	}

	// 수량 파싱 실패는 기본값 1로 복구
	if rows[1].Quantity != 1 {
		t.Fatalf("fallback Quantity = %d, want 1", rows[1].Quantity)
	}
}

func TestParseOrderXLSXMissingRequiredColumn(t *testing.T) {
	t.Parallel()

	buf := buildOrderWorkbook(t, [][]interface{}{
		{"상품이름", "상품수량"},
		{"수정과", "1"},
	})

	if _, err := ParseOrderXLSX(buf); err == nil {
		t.Fatalf("expected error for missing 옵션이름 column")
	}
}

func TestParseOrderXLSXWithoutOptionalColumns(t *testing.T) {
	t.Parallel()

	buf := buildOrderWorkbook(t, [][]interface{}{
		{"상품이름", "옵션이름", "상품수량"},
		{"식혜", "진하고 깊은 식혜 1L", "2"},
	})

	rows, err := ParseOrderXLSX(buf)
	if err != nil {
		t.Fatalf("ParseOrderXLSX: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].RecipientName != "" || rows[0].OrdererName != "" {
		t.Fatalf("optional fields should be empty: %+v", rows[0])
	}
}
