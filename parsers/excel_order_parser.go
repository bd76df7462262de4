// C:\Users\seoro\OneDrive\바탕 화면\SEROE\parsers\excel_order_parser.go
package parsers

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"

	"seroe/model"
)

// 주문서 필수 컬럼. 수취인/주문자 컬럼은 있으면 읽고 없으면 빈 값으로 둡니다.
var requiredOrderHeaders = []string{"상품이름", "옵션이름", "상품수량"}

// ParseOrderXLSX는 쇼핑몰에서 내려받은 주문서(.xlsx)를 읽어 OrderRow 목록으로
// 변환합니다. 첫 번째 시트를 사용하고 첫 행을 헤더로 취급합니다.
// 행 단위 문제(수량 파싱 실패 등)는 기본값으로 복구하고 에러를 내지 않습니다.
func ParseOrderXLSX(r io.Reader) ([]model.OrderRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("엑셀 파일을 열 수 없습니다: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("엑셀 파일에 시트가 없습니다")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("시트 읽기에 실패했습니다: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("엑셀 파일이 비어있습니다")
	}

	colIndex, err := getColIndex(rows[0], requiredOrderHeaders)
	if err != nil {
		return nil, err
	}

	idxRecipient, hasRecipient := colIndex["수취인이름"]
	idxOrderer, hasOrderer := colIndex["주문자이름"]
	idxPhone, hasPhone := colIndex["주문자전화번호1"]

	var orders []model.OrderRow
	for lineNo, rec := range rows[1:] {
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
			// 빈 행은 조용히 건너뜀
			continue
		}
		if row.Quantity < 0 {
			log.Printf("WARN: %d행의 상품수량이 음수입니다. 1로 대체합니다.", lineNo+2)
			row.Quantity = 1
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
