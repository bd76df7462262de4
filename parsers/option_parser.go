// C:\Users\seoro\OneDrive\바탕 화면\SEROE\parsers\option_parser.go
package parsers

import (
	"regexp"
	"strings"

	"seroe/model"
)

// 용량 토큰: 숫자(소수 허용) + ml/L (대소문자 무시)
const capToken = `(\d+(?:\.\d+)?(?:[mM][lL]|[lL]))`

var (
	// 패턴 1: "5개, 240ml"
	reCountUnitCap = regexp.MustCompile(`(\d+)개,\s*` + capToken)
	// 패턴 2: "2, 1L" (단위 없는 묶음 수)
	reCountCap = regexp.MustCompile(`(\d+),\s*` + capToken)
	// 패턴 3: "용량 : 1L 2병"
	reVolumeBottles = regexp.MustCompile(`용량\s*:\s*` + capToken + `\s*(\d+)병`)
	// 패턴 4: "500ml 3병"
	reCapBottles = regexp.MustCompile(capToken + `\s*(\d+)병`)
	// 패턴 5: 텍스트 어딘가의 용량 표기만
	reBareCap = regexp.MustCompile(capToken)
)

// ClassifyOptionText는 옵션이름 텍스트에서 상품 분류를 추출합니다.
// 부분 문자열 검사 순서가 결과를 좌우합니다: 복합어 "단호박식혜"를
// 먼저 확인해야 안에 포함된 "식혜"로 오분류되지 않습니다.
func ClassifyOptionText(text string) string {
	if text == "" {
		return model.CategoryOther
	}
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "단호박식혜"):
		return model.CategoryPumpkinSikhye
	case strings.Contains(lower, "수정과"):
		return model.CategorySujeonggwa
	case strings.Contains(lower, "쌀요거트"),
		strings.Contains(lower, "요거트"),
		strings.Contains(lower, "플레인"):
		return model.CategoryRiceYogurt
	case strings.Contains(lower, "식혜") && !strings.Contains(lower, "단호박"):
		// "단호박 식혜"처럼 띄어 쓴 표기는 복합어 검사를 통과하지 못하므로
		// 여기서도 단호박이 보이면 분류하지 않습니다.
		return model.CategorySikhye
	}
	return model.CategoryOther
}

var reBracketTag = regexp.MustCompile(`\[서로\s+([^\]]+)\]`)

// ClassifyProductName은 상품이름(보조)에서 분류를 추출합니다.
// "[서로 ...]" 대괄호 태그 안을 먼저 검사하고, 없으면 전체 문자열을 봅니다.
func ClassifyProductName(name string) string {
	if name == "" {
		return model.CategoryOther
	}
	lower := strings.ToLower(name)

	if m := reBracketTag.FindStringSubmatch(lower); m != nil {
		tag := strings.TrimSpace(m[1])
		switch {
		case strings.Contains(tag, "단호박식혜"):
			return model.CategoryPumpkinSikhye
		case strings.Contains(tag, "진하고 깊은 식혜"), strings.Contains(tag, "식혜"):
			return model.CategorySikhye
		case strings.Contains(tag, "수정과"):
			return model.CategorySujeonggwa
		case strings.Contains(tag, "쌀요거트"):
			return model.CategoryRiceYogurt
		}
	}

	if strings.Contains(lower, "쌀요거트") ||
		strings.Contains(lower, "요거트") ||
		strings.Contains(lower, "플레인") {
		return model.CategoryRiceYogurt
	}
	return model.CategoryOther
}

// ClassifyRow는 옵션이름 우선, 기타면 상품이름으로 분류를 정합니다.
func ClassifyRow(row model.OrderRow) string {
	category := ClassifyOptionText(row.OptionText)
	if category == model.CategoryOther {
		category = ClassifyProductName(row.ProductName)
	}
	return category
}

// ParseOptionInfo는 옵션 텍스트에서 (묶음 수량, 용량 토큰)을 추출합니다.
// 다섯 패턴을 순서대로 시도하고 첫 매치에서 반환합니다. 아무것도 없으면 (1, "").
func ParseOptionInfo(text string) (multiplier int, capacity string) {
	if text == "" {
		return 1, ""
	}

	if m := reCountUnitCap.FindStringSubmatch(text); m != nil {
		return SafeInt(m[1], 1), m[2]
	}
	if m := reCountCap.FindStringSubmatch(text); m != nil {
		return SafeInt(m[1], 1), m[2]
	}
	if m := reVolumeBottles.FindStringSubmatch(text); m != nil {
		return SafeInt(m[2], 1), m[1]
	}
	if m := reCapBottles.FindStringSubmatch(text); m != nil {
		return SafeInt(m[2], 1), m[1]
	}
	if m := reBareCap.FindStringSubmatch(text); m != nil {
		return 1, m[1]
	}
	return 1, ""
}

var (
	reCap15L = regexp.MustCompile(`^1\.5l`)
	reCap1L  = regexp.MustCompile(`^(?:1l|1000ml)`)
	reCap500 = regexp.MustCompile(`^500ml`)
	reCap240 = regexp.MustCompile(`^240ml`)
	reCap200 = regexp.MustCompile(`^200ml`)
)

// NormalizeCapacity는 용량 토큰을 표준형으로 정리합니다.
// forBox 가 true 면 200ml 를 240ml 로 접습니다. 두 용량은 같은 박스 규격을
// 쓰기 때문에 박스 계산에서만 동일하게 취급하고, 출고 집계에서는 구분을
// 유지합니다. 인식하지 못한 토큰은 그대로 돌려줍니다(에러 아님).
func NormalizeCapacity(token string, forBox bool) string {
	if token == "" {
		return ""
	}
	lower := strings.ToLower(token)

	switch {
	case reCap15L.MatchString(lower):
		return "1.5L"
	case reCap1L.MatchString(lower):
		return "1L"
	case reCap500.MatchString(lower):
		return "500ml"
	case reCap240.MatchString(lower):
		return "240ml"
	case reCap200.MatchString(lower):
		if forBox {
			return "240ml"
		}
		return "200ml"
	}
	return token
}

// DeriveLineItem은 1행을 정규화된 라인 아이템으로 변환합니다.
// forBox 는 용량 정규화 모드를 결정합니다(박스 계산이면 200ml→240ml).
func DeriveLineItem(row model.OrderRow, forBox bool) model.ParsedLineItem {
	multiplier, rawCap := ParseOptionInfo(row.OptionText)
	return model.ParsedLineItem{
		Category:          ClassifyRow(row),
		Capacity:          NormalizeCapacity(rawCap, forBox),
		UnitMultiplier:    multiplier,
		EffectiveQuantity: row.Quantity * multiplier,
	}
}
