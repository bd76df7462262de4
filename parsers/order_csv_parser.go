// C:\Users\seoro\OneDrive\바탕 화면\SEROE\parsers\order_csv_parser.go
package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"seroe/model"
)

// ParseOrderCSV는 EUC-KR 로 내려오는 구버전 주문서 CSV 를 읽습니다.
// 컬럼 구성은 엑셀 주문서와 동일합니다.
func ParseOrderCSV(r io.Reader) ([]model.OrderRow, error) {
	decoder := korean.EUCKR.NewDecoder()
	reader := csv.NewReader(SkipBOM(transform.NewReader(r, decoder)))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV 파일이 비어있습니다")
	}
	if err != nil {
		return nil, fmt.Errorf("CSV 헤더 읽기에 실패했습니다: %w", err)
	}

	colIndex, err := getColIndex(header, requiredOrderHeaders)
	if err != nil {
		return nil, err
	}

	idxRecipient, hasRecipient := colIndex["수취인이름"]
	idxOrderer, hasOrderer := colIndex["주문자이름"]
	idxPhone, hasPhone := colIndex["주문자전화번호1"]

	var orders []model.OrderRow
	line := 1
	for {
		line++
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("WARN: CSV %d행 읽기 오류 (건너뜀): %v", line, err)
			continue
		}

		get := func(idx int) string {
			if idx < len(rec) {
				return strings.TrimSpace(rec[idx])
			}
			return ""
		}

		row := model.OrderRow{
			ProductName: get(colIndex["상품이름"]),
			OptionText:  get(colIndex["옵션이름"]),
			Quantity:    SafeInt(get(colIndex["상품수량"]), 1),
		}
		if row.ProductName == "" && row.OptionText == "" {
			continue
		}

		if hasRecipient {
			row.RecipientName = get(idxRecipient)
		}
		if hasOrderer {
			row.OrdererName = get(idxOrderer)
		}
		if hasPhone {
			row.OrdererPhone = get(idxPhone)
		}
		orders = append(orders, row)
	}
	return orders, nil
}
