// C:\Users\seoro\OneDrive\바탕 화면\SEROE\model\stock_types.go
package model

import "strings"

// StockKey는 재고 항목의 복합 키입니다. 직렬화 경계에서만 "상품명|용량"
// 문자열로 바꾸고, 내부 로직에서는 이 구조체를 사용합니다.
type StockKey struct {
	Name     string
	Capacity string
}

func (k StockKey) String() string {
	return k.Name + "|" + k.Capacity
}

// ParseStockKey는 "상품명|용량" 문자열을 StockKey 로 되돌립니다.
// 구분자가 없으면 전체를 상품명으로 취급합니다.
func ParseStockKey(s string) StockKey {
	name, capacity, found := strings.Cut(s, "|")
	if !found {
		return StockKey{Name: s}
	}
	return StockKey{Name: name, Capacity: capacity}
}

// StockEntry는 재고 입력 1회분입니다. 출고반영이 true 면 출고 현황 차감으로
// 자동 생성된 항목, false 면 수동 입력입니다.
type StockEntry struct {
	EnteredAt         string         `json:"입력일시"` // "YYYY-MM-DD HH:MM:SS"
	Quantities        map[string]int `json:"입력용"`  // "상품명|용량" → 수량
	ShipmentReflected bool           `json:"출고반영"`
}

// StockHistory는 재고 입력 이력입니다. 이력은 최신이 맨 앞이고,
// 최근입력이 현재 재고입니다.
type StockHistory struct {
	Latest  *StockEntry  `json:"최근입력,omitempty"`
	Entries []StockEntry `json:"이력"`
}

// Push는 새 항목을 이력 맨 앞에 추가하고 최근입력을 갱신합니다.
func (h *StockHistory) Push(entry StockEntry) {
	h.Entries = append([]StockEntry{entry}, h.Entries...)
	h.Latest = &h.Entries[0]
}

// LatestQuantities는 최근입력의 수량 맵 사본을 반환합니다. 없으면 빈 맵입니다.
func (h *StockHistory) LatestQuantities() map[string]int {
	out := make(map[string]int)
	if h == nil || h.Latest == nil {
		return out
	}
	for k, v := range h.Latest.Quantities {
		out[k] = v
	}
	return out
}
