// C:\Users\seoro\OneDrive\바탕 화면\SEROE\boxes\boxes.go
package boxes

import (
	"strings"

	"seroe/model"
)

// 용량 버킷 검사 순서. "1.5L"를 "1L"보다 먼저 봐야 "1.5L" 키 안의
// 부분 문자열 "1L"에 잘못 걸리지 않습니다. 순서를 바꾸면 안 됩니다.
var capacityBuckets = []string{"1.5L", "1L", "500ml", "240ml"}

// QuantitiesByCapacity는 한 수취인의 상품별 수량에서 분류를 떼고
// 용량별 수량 벡터를 만듭니다. 상류(수취인 그룹화)에서 이미 200ml 는
// 240ml 로 접혀 있지만, 혹시 남은 200ml 키도 여기서 한 번 더 접습니다.
func QuantitiesByCapacity(products map[string]int) model.CapacityQuantities {
	quantities := make(model.CapacityQuantities)

	for productKey, qty := range products {
		matched := false
		for _, bucket := range capacityBuckets {
			if strings.Contains(productKey, bucket) {
				quantities[bucket] += qty
				matched = true
				break
			}
		}
		if !matched && strings.Contains(productKey, "200ml") {
			quantities["240ml"] += qty
		}
	}
	return quantities
}

// DecideBox는 용량별 수량 벡터 하나에 대해 박스를 결정합니다.
// 1단계: 두 가지 이상 용량이 섞인 주문은 무조건 검토 필요(절대 규칙).
// 2단계: 단일 용량이면 규칙표에서 첫 매치.
// 3단계: 매치가 없으면 검토 필요.
func DecideBox(quantities model.CapacityQuantities) string {
	nonZero := 0
	for _, qty := range quantities {
		if qty > 0 {
			nonZero++
		}
	}
	if nonZero > 1 {
		return NeedsReview
	}

	for _, bucket := range capacityBuckets {
		qty := quantities[bucket]
		if qty <= 0 {
			continue
		}
		for _, rule := range boxRules {
			if rule.Capacity == bucket && rule.Min <= qty && qty <= rule.Max {
				return rule.Box
			}
		}
	}
	return NeedsReview
}

// CalculateBoxRequirements는 수취인별 주문 전체에 대해 박스 개수와
// 검토 대기열을 계산합니다. 박스 수 합계 + 검토 건수 = 수취인 수입니다.
func CalculateBoxRequirements(orders model.RecipientOrders) model.BoxResults {
	results := model.BoxResults{
		TotalBoxes:   make(map[string]int),
		ReviewOrders: []model.ReviewOrder{},
	}

	for recipient, products := range orders {
		quantities := QuantitiesByCapacity(products)
		box := DecideBox(quantities)

		if box == NeedsReview {
			results.ReviewOrders = append(results.ReviewOrders, model.ReviewOrder{
				Recipient:  recipient,
				Quantities: quantities,
				Products:   products,
			})
			continue
		}
		results.TotalBoxes[box]++
	}
	return results
}
