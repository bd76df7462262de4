// C:\Users\seoro\OneDrive\바탕 화면\SEROE\model\stock_types_test.go
package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestStockKeyRoundTrip(t *testing.T) {
	t.Parallel()

	key := StockKey{Name: "단호박식혜", Capacity: "1L"}
	if key.String() != "단호박식혜|1L" {
		t.Fatalf("String = %q", key.String())
	}
	if got := ParseStockKey(key.String()); got != key {
		t.Fatalf("ParseStockKey = %+v, want %+v", got, key)
	}
	if got := ParseStockKey("기타"); got.Name != "기타" || got.Capacity != "" {
		t.Fatalf("ParseStockKey without separator = %+v", got)
	}
}

func TestStockHistoryPush(t *testing.T) {
	t.Parallel()

	var history StockHistory
	history.Push(StockEntry{EnteredAt: "2026-08-28 09:00:00", Quantities: map[string]int{"식혜|1L": 3}})
	history.Push(StockEntry{EnteredAt: "2026-08-29 09:00:00", Quantities: map[string]int{"식혜|1L": 7}})

	if len(history.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(history.Entries))
	}
	// 최신이 맨 앞
	if history.Entries[0].EnteredAt != "2026-08-29 09:00:00" {
		t.Fatalf("head entry = %+v", history.Entries[0])
	}
	if history.Latest == nil || history.Latest.Quantities["식혜|1L"] != 7 {
		t.Fatalf("latest not updated: %+v", history.Latest)
	}

	quantities := history.LatestQuantities()
	quantities["식혜|1L"] = 0
	if history.Latest.Quantities["식혜|1L"] != 7 {
		t.Fatalf("LatestQuantities should return a copy")
	}
}

func TestStockHistoryJSONFieldNames(t *testing.T) {
	t.Parallel()

	var history StockHistory
	history.Push(StockEntry{
		EnteredAt:         "2026-08-29 09:00:00",
		Quantities:        map[string]int{"식혜|1L": 7},
		ShipmentReflected: true,
	})

	data, err := json.Marshal(&history)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, field := range []string{"최근입력", "이력", "입력일시", "입력용", "출고반영"} {
		if !strings.Contains(string(data), field) {
			t.Fatalf("serialized history missing field %q: %s", field, data)
		}
	}
}

func TestParsedLineItemProductKey(t *testing.T) {
	t.Parallel()

	item := ParsedLineItem{Category: CategorySikhye, Capacity: "1L"}
	if got := item.ProductKey(); got != "식혜 1L" {
		t.Fatalf("ProductKey = %q", got)
	}
	item.Capacity = ""
	if got := item.ProductKey(); got != "식혜" {
		t.Fatalf("ProductKey without capacity = %q", got)
	}
}
