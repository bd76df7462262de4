// C:\Users\seoro\OneDrive\바탕 화면\SEROE\model\order_types.go
package model

// 상품 분류 (옵션/상품명 텍스트에서 추출되는 카테고리)
const (
	CategoryPumpkinSikhye = "단호박식혜"
	CategorySikhye        = "식혜"
	CategorySujeonggwa    = "수정과"
	CategoryRiceYogurt    = "플레인 쌀요거트"
	CategoryOther         = "기타"
)

// UnknownRecipient는 수취인이름이 비어있는 행에 사용하는 대체 이름입니다.
const UnknownRecipient = "알 수 없음"

// OrderRow는 업로드된 주문서의 1행입니다.
// 수량 파싱 실패 시의 기본값(1) 처리는 파서 단계에서 한 번만 수행하고,
// 이후 단계는 값이 채워져 있다고 가정합니다.
// 개인 정보 필드(주문자/수취인)는 집계가 끝나면 버려지며 절대 저장하지 않습니다.
type OrderRow struct {
	ProductName   string // 상품이름 (G열)
	OptionText    string // 옵션이름 (H열)
	Quantity      int    // 상품수량 (N열, 파싱 실패 시 1)
	RecipientName string // 수취인이름 (선택)
	OrdererName   string // 주문자이름 (선택)
	OrdererPhone  string // 주문자전화번호1 (선택)
}

// ParsedLineItem은 1행의 옵션/상품명 텍스트에서 뽑아낸 정규화 결과입니다.
type ParsedLineItem struct {
	Category          string // 상품 분류
	Capacity          string // 정규화된 용량 토큰 ("", 240ml, 200ml, 500ml, 1L, 1.5L)
	UnitMultiplier    int    // 옵션에 적힌 묶음 수량 (없으면 1)
	EffectiveQuantity int    // 상품수량 × UnitMultiplier
}

// ProductKey는 집계 키 "{분류} {용량}"을 만듭니다. 용량이 없으면 분류만 사용합니다.
func (li ParsedLineItem) ProductKey() string {
	if li.Capacity == "" {
		return li.Category
	}
	return li.Category + " " + li.Capacity
}
