// C:\Users\seoro\OneDrive\바탕 화면\SEROE\aggregation\aggregation_test.go
package aggregation

import (
	"reflect"
	"testing"

	"seroe/model"
	"seroe/parsers"
)

func sampleRows() []model.OrderRow {
	return []model.OrderRow{
		{ProductName: "[서로 단호박식혜] 국산", OptionText: "단호박식혜 1L 2병", Quantity: 1, RecipientName: "김영희"},
		{ProductName: "[서로 단호박식혜] 국산", OptionText: "단호박식혜 1L 2병", Quantity: 2, RecipientName: "박민수"},
		{ProductName: "수정과", OptionText: "수정과 500ml 3병", Quantity: 1, RecipientName: "김영희"},
		{ProductName: "플레인 쌀요거트", OptionText: "5개, 200ml", Quantity: 1, RecipientName: ""},
	}
}

func TestAggregateShipment(t *testing.T) {
	t.Parallel()

	results := AggregateShipment(sampleRows())

	want := model.ShipmentAggregate{
		"단호박식혜 1L":       6,
		"수정과 500ml":      3,
		"플레인 쌀요거트 200ml": 5,
	}
	if !reflect.DeepEqual(results, want) {
		t.Fatalf("AggregateShipment = %v, want %v", results, want)
	}
}

func TestAggregateShipmentConservation(t *testing.T) {
	t.Parallel()

	rows := sampleRows()
	results := AggregateShipment(rows)

	wantTotal := 0
	for _, row := range rows {
		item := parsers.DeriveLineItem(row, false)
		wantTotal += item.EffectiveQuantity
	}
	if got := results.Total(); got != wantTotal {
		t.Fatalf("Total = %d, want %d (행별 유효 수량 합계와 일치해야 함)", got, wantTotal)
	}
}

func TestAggregateShipmentIdempotent(t *testing.T) {
	t.Parallel()

	rows := sampleRows()
	first := AggregateShipment(rows)
	second := AggregateShipment(rows)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("re-aggregation differs: %v vs %v", first, second)
	}
}

func TestAggregateShipmentEmpty(t *testing.T) {
	t.Parallel()

	results := AggregateShipment(nil)
	if len(results) != 0 || results.Total() != 0 {
		t.Fatalf("empty input should aggregate to empty, got %v", results)
	}
}

func TestGroupOrdersByRecipient(t *testing.T) {
	t.Parallel()

	orders := GroupOrdersByRecipient(sampleRows())

	if len(orders) != 3 {
		t.Fatalf("got %d recipients, want 3", len(orders))
	}

	// 같은 수취인의 같은 상품 키는 합산
	kim := orders["김영희"]
	if kim["단호박식혜 1L"] != 2 || kim["수정과 500ml"] != 3 {
		t.Fatalf("unexpected orders for 김영희: %v", kim)
	}

	// 박스 계산용이므로 200ml 는 240ml 로 접힘
	unknown := orders[model.UnknownRecipient]
	if unknown["플레인 쌀요거트 240ml"] != 5 {
		t.Fatalf("200ml should fold to 240ml for box grouping: %v", unknown)
	}
}
