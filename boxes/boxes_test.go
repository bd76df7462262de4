// C:\Users\seoro\OneDrive\바탕 화면\SEROE\boxes\boxes_test.go
package boxes

import (
	"testing"

	"seroe/model"
)

func TestDecideBox(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		quantities model.CapacityQuantities
		want       string
	}{
		{"1L 2개", model.CapacityQuantities{"1L": 2}, BoxA},
		{"500ml 3개", model.CapacityQuantities{"500ml": 3}, BoxA},
		{"240ml 5개", model.CapacityQuantities{"240ml": 5}, BoxA},
		{"1L 4개", model.CapacityQuantities{"1L": 4}, BoxB},
		{"240ml 10개", model.CapacityQuantities{"240ml": 10}, BoxB},
		{"500ml 10개", model.CapacityQuantities{"500ml": 10}, BoxC},
		{"1L 6개", model.CapacityQuantities{"1L": 6}, BoxD},
		{"1.5L 4개", model.CapacityQuantities{"1.5L": 4}, BoxE},
		{"1.5L 1개", model.CapacityQuantities{"1.5L": 1}, BoxF},
		// 두 가지 이상 용량이 섞이면 무조건 검토
		{"1L+500ml 혼합", model.CapacityQuantities{"1L": 2, "500ml": 1}, NeedsReview},
		// 규칙표 범위 밖
		{"1L 7개", model.CapacityQuantities{"1L": 7}, NeedsReview},
		{"500ml 8개", model.CapacityQuantities{"500ml": 8}, NeedsReview},
		{"1.5L 5개", model.CapacityQuantities{"1.5L": 5}, NeedsReview},
		{"수량 없음", model.CapacityQuantities{}, NeedsReview},
	}

	for _, tc := range cases {
		if got := DecideBox(tc.quantities); got != tc.want {
			t.Fatalf("%s: DecideBox = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestQuantitiesByCapacity(t *testing.T) {
	t.Parallel()

	products := map[string]int{
		"단호박식혜 1.5L":     2,
		"식혜 1L":          3,
		"수정과 500ml":      1,
		"단호박식혜 240ml":    4,
		"플레인 쌀요거트 200ml": 5, // 접히지 않고 남은 키도 240ml 로
	}

	quantities := QuantitiesByCapacity(products)

	// "1.5L" 키가 "1L" 버킷으로 새면 안 됨
	if quantities["1.5L"] != 2 {
		t.Fatalf("1.5L bucket = %d, want 2", quantities["1.5L"])
	}
	if quantities["1L"] != 3 {
		t.Fatalf("1L bucket = %d, want 3", quantities["1L"])
	}
	if quantities["500ml"] != 1 {
		t.Fatalf("500ml bucket = %d, want 1", quantities["500ml"])
	}
	if quantities["240ml"] != 9 {
		t.Fatalf("240ml bucket = %d, want 9 (200ml 포함)", quantities["240ml"])
	}
}

func TestCalculateBoxRequirements(t *testing.T) {
	t.Parallel()

	orders := model.RecipientOrders{
		"김영희": {"단호박식혜 1L": 2},             // 박스 A
		"박민수": {"식혜 1L": 4},                // 박스 B
		"최지우": {"수정과 500ml": 10},           // 박스 C
		"혼합씨": {"식혜 1L": 2, "수정과 500ml": 1}, // 검토
		"초과씨": {"식혜 1L": 9},                // 검토
	}

	results := CalculateBoxRequirements(orders)

	if results.TotalBoxes[BoxA] != 1 || results.TotalBoxes[BoxB] != 1 || results.TotalBoxes[BoxC] != 1 {
		t.Fatalf("unexpected box counts: %v", results.TotalBoxes)
	}
	if len(results.ReviewOrders) != 2 {
		t.Fatalf("review queue length = %d, want 2", len(results.ReviewOrders))
	}

	// 박스 수 합계 + 검토 건수 = 수취인 수
	totalBoxCount := 0
	for _, count := range results.TotalBoxes {
		totalBoxCount += count
	}
	if totalBoxCount+len(results.ReviewOrders) != len(orders) {
		t.Fatalf("partition incomplete: boxes=%d review=%d recipients=%d",
			totalBoxCount, len(results.ReviewOrders), len(orders))
	}

	// 검토 항목에는 원본 상품 수량이 같이 담김
	for _, review := range results.ReviewOrders {
		if len(review.Products) == 0 || len(review.Quantities) == 0 {
			t.Fatalf("review order missing detail: %+v", review)
		}
	}
}
