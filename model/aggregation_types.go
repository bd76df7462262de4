// C:\Users\seoro\OneDrive\바탕 화면\SEROE\model\aggregation_types.go
package model

// ShipmentAggregate는 상품 키("단호박식혜 1L" 등) → 총 출고 수량입니다.
// 업로드마다 새로 만들어 통째로 덮어씁니다(병합하지 않음).
type ShipmentAggregate map[string]int

// Total은 집계된 전체 수량 합계를 반환합니다.
// 모든 행의 EffectiveQuantity 합과 일치해야 합니다(보존 법칙).
func (a ShipmentAggregate) Total() int {
	sum := 0
	for _, qty := range a {
		sum += qty
	}
	return sum
}

// RecipientOrders는 수취인이름 → (상품 키 → 수량)입니다.
// 박스 계산용이므로 용량은 200ml→240ml 접기가 적용된 상태입니다.
type RecipientOrders map[string]map[string]int

// CapacityQuantities는 한 수취인의 용량별 수량 벡터입니다.
type CapacityQuantities map[string]int

// ReviewOrder는 규칙표로 박스를 정할 수 없어 수동 검토가 필요한 주문입니다.
type ReviewOrder struct {
	Recipient  string         `json:"recipient"`
	Quantities map[string]int `json:"quantities"`
	Products   map[string]int `json:"products"`
}

// BoxResults는 박스 계산 결과 전체입니다.
// 검토 대기열의 JSON 필드명 box_e_orders 는 초기 버전의 이름을 그대로 유지합니다.
// (기존에 저장된 스냅샷과의 호환을 위해 바꾸지 않습니다)
type BoxResults struct {
	TotalBoxes   map[string]int `json:"total_boxes"`
	ReviewOrders []ReviewOrder  `json:"box_e_orders"`
}

// UploadRecord는 주문서 업로드 이력 1건입니다. 원본 행은 저장하지 않고
// 건수와 집계 요약만 남깁니다.
type UploadRecord struct {
	ID             string `db:"id" json:"id"`
	FileName       string `db:"file_name" json:"fileName"`
	RowCount       int    `db:"row_count" json:"rowCount"`
	RecipientCount int    `db:"recipient_count" json:"recipientCount"`
	TotalQuantity  int    `db:"total_quantity" json:"totalQuantity"`
	UploadedAt     string `db:"uploaded_at" json:"uploadedAt"`
}
