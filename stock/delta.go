// C:\Users\seoro\OneDrive\바탕 화면\SEROE\stock\delta.go
package stock

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"seroe/model"
)

// SupplementaryProducts는 출고 현황에 없어도 재고 입력 대상에 항상 포함하는
// 상품 목록입니다(밥알없는 제품 포함).
var SupplementaryProducts = []string{
	"단호박식혜 1.5L",
	"단호박식혜 1L",
	"단호박식혜 240ml",
	"식혜 1.5L",
	"식혜 1L",
	"식혜 240ml",
	"수정과 500ml",
	"플레인 쌀요거트 1L",
	"플레인 쌀요거트 200ml",
	"밥알없는 단호박식혜 1.5L",
	"밥알없는 단호박식혜 1L",
	"밥알없는 단호박식혜 240ml",
	"밥알없는 식혜 1.5L",
	"밥알없는 식혜 1L",
	"밥알없는 식혜 240ml",
}

// Thresholds는 상품별 재고 부족 기준입니다. 이하로 떨어지면 부족 표시.
var Thresholds = map[string]int{
	"단호박식혜 1.5L":       5,
	"단호박식혜 1L":         10,
	"단호박식혜 240ml":      20,
	"식혜 1.5L":          5,
	"식혜 1L":            10,
	"식혜 240ml":         20,
	"수정과 500ml":        10,
	"플레인 쌀요거트 1L":      5,
	"플레인 쌀요거트 200ml":   10,
	"밥알없는 단호박식혜 1.5L":  3,
	"밥알없는 단호박식혜 1L":    5,
	"밥알없는 단호박식혜 240ml": 10,
	"밥알없는 식혜 1.5L":     3,
	"밥알없는 식혜 1L":       5,
	"밥알없는 식혜 240ml":    10,
}

// 마지막 토큰이 용량 표기인지 확인 (예: "240ml", "1.5L")
var reCapacityTail = regexp.MustCompile(`^\d+(?:\.\d+)?(?:ml|L)`)

// SplitProductKey는 "단호박식혜 1L" 같은 상품 키를 (상품명, 용량)으로
// 나눕니다. 마지막 토큰이 용량 표기가 아니면 전체를 상품명으로 취급합니다.
func SplitProductKey(productKey string) model.StockKey {
	parts := strings.Fields(strings.TrimSpace(productKey))
	if len(parts) >= 2 && reCapacityTail.MatchString(parts[len(parts)-1]) {
		return model.StockKey{
			Name:     strings.Join(parts[:len(parts)-1], " "),
			Capacity: parts[len(parts)-1],
		}
	}
	return model.StockKey{Name: productKey}
}

// ProductKeyUniverse는 출고 집계의 키와 보충 상품 목록의 합집합을
// 정렬해서 반환합니다. 재고 차감은 이 전체 키 집합에 대해 수행합니다.
func ProductKeyUniverse(shipment model.ShipmentAggregate) []string {
	seen := make(map[string]struct{})
	for key := range shipment {
		seen[key] = struct{}{}
	}
	for _, key := range SupplementaryProducts {
		seen[key] = struct{}{}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ReflectShipment는 최근 재고에서 출고 수량을 차감한 새 재고 항목을
// 만듭니다. 재고가 없던 키는 0에서 시작하고, 결과는 절대 음수가 되지
// 않습니다. latest 는 "상품명|용량" 키의 최근 재고이고, now 는 입력일시가
// 됩니다.
func ReflectShipment(latest map[string]int, shipment model.ShipmentAggregate, now time.Time) model.StockEntry {
	updated := make(map[string]int)

	for _, productKey := range ProductKeyUniverse(shipment) {
		key := SplitProductKey(productKey)

		currentQty := latest[key.String()]
		shipmentQty := shipment[productKey]

		finalQty := currentQty - shipmentQty
		if finalQty < 0 {
			finalQty = 0
		}
		updated[key.String()] = finalQty
	}

	return model.StockEntry{
		EnteredAt:         now.Format("2006-01-02 15:04:05"),
		Quantities:        updated,
		ShipmentReflected: true,
	}
}

// IsLowStock은 상품 전체 이름("단호박식혜 1L")과 수량으로 부족 여부를
// 판단합니다. 기준이 없는 상품은 부족으로 보지 않습니다.
func IsLowStock(fullName string, quantity int) bool {
	threshold, ok := Thresholds[fullName]
	return ok && threshold > 0 && quantity <= threshold
}
