// C:\Users\seoro\OneDrive\바탕 화면\SEROE\customer\matching.go
package customer

import (
	"fmt"
	"strings"
	"time"

	"seroe/model"
	"seroe/parsers"
)

// MatchPhoneNumber는 전화번호 뒤 4자리만 비교합니다. 고객정보 파일의
// 번호 표기(하이픈 유무)가 제각각이라 전체 비교는 신뢰할 수 없습니다.
func MatchPhoneNumber(stored, current string) bool {
	storedDigits := reNonDigit.ReplaceAllString(stored, "")
	currentDigits := reNonDigit.ReplaceAllString(current, "")
	if len(storedDigits) < 4 || len(currentDigits) < 4 {
		return false
	}
	return storedDigits[len(storedDigits)-4:] == currentDigits[len(currentDigits)-4:]
}

// ParseOrderHistory는 "날짜:상품,날짜:상품,..." 문자열을 이력 목록으로
// 풀어냅니다. 콜론이 없는 조각은 건너뜁니다.
func ParseOrderHistory(history string) []model.OrderHistoryItem {
	history = strings.TrimSpace(history)
	if history == "" {
		return nil
	}
	var items []model.OrderHistoryItem
	for _, part := range strings.Split(history, ",") {
		date, product, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		items = append(items, model.OrderHistoryItem{
			Date:    strings.TrimSpace(date),
			Product: strings.TrimSpace(product),
		})
	}
	return items
}

// orderCount 는 이력 항목 수입니다. 이력이 비어 있으면 이번 주문이
// 첫 주문이므로 1로 칩니다.
func orderCount(history string) int {
	history = strings.TrimSpace(history)
	if history == "" {
		return 1
	}
	return len(strings.Split(history, ","))
}

// lastOrderDate 는 이력 마지막 항목의 날짜입니다.
func lastOrderDate(history string) string {
	items := ParseOrderHistory(history)
	if len(items) == 0 {
		return "알 수 없음"
	}
	return items[len(items)-1].Date
}

// ExtractDailyCustomers는 주문서 행에서 당일 주문자 목록을 뽑아냅니다.
// 상품 요약은 "분류 용량 N개" 형식입니다.
func ExtractDailyCustomers(rows []model.OrderRow, now time.Time) []model.DailyCustomer {
	orderDate := now.Format("2006-01-02")
	var customers []model.DailyCustomer
	for _, row := range rows {
		item := parsers.DeriveLineItem(row, false)

		var productInfo string
		if item.Capacity != "" {
			productInfo = fmt.Sprintf("%s %s %d개", item.Category, item.Capacity, item.EffectiveQuantity)
		} else {
			productInfo = fmt.Sprintf("%s %d개", item.Category, item.EffectiveQuantity)
		}

		customers = append(customers, model.DailyCustomer{
			OrdererName:   strings.TrimSpace(row.OrdererName),
			OrdererPhone:  strings.TrimSpace(row.OrdererPhone),
			RecipientName: strings.TrimSpace(row.RecipientName),
			ProductInfo:   productInfo,
			OrderDate:     orderDate,
		})
	}
	return customers
}

// findMatchingRecord 는 1차로 주문자 이름, 2차로 전화번호 뒤 4자리로
// 기존 고객을 찾습니다.
func findMatchingRecord(daily model.DailyCustomer, records []model.CustomerRecord) *model.CustomerRecord {
	for i := range records {
		if records[i].Name != "" && records[i].Name == daily.OrdererName {
			return &records[i]
		}
		if MatchPhoneNumber(records[i].Phone, daily.OrdererPhone) {
			return &records[i]
		}
	}
	return nil
}

// FindReorderCustomers는 당일 주문자와 고객정보 파일을 대조하여
// 재주문 고객 목록을 만듭니다. 응답에서 수취인이름은 마스킹합니다.
func FindReorderCustomers(daily []model.DailyCustomer, records []model.CustomerRecord) []model.ReorderCustomer {
	var reorders []model.ReorderCustomer
	for _, d := range daily {
		if d.OrdererName == "" && d.OrdererPhone == "" {
			continue
		}
		matched := findMatchingRecord(d, records)
		if matched == nil {
			continue
		}
		reorders = append(reorders, model.ReorderCustomer{
			CustomerID:    matched.CustomerID,
			DisplayName:   d.OrdererName,
			RecipientName: MaskName(d.RecipientName),
			OrderCount:    orderCount(matched.OrderHistory),
			LastOrderDate: lastOrderDate(matched.OrderHistory),
			CurrentOrder:  d.ProductInfo,
			History:       ParseOrderHistory(matched.OrderHistory),
		})
	}
	return reorders
}
