// C:\Users\seoro\OneDrive\바탕 화면\SEROE\customer\masking.go
package customer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var reNonDigit = regexp.MustCompile(`\D`)

// 동/읍/면/가/리 까지만 남기고 상세 주소를 가립니다.
var reAddressHead = regexp.MustCompile(`(.+?(?:동|읍|면|가|리))(.+)`)

// MaskName은 이름의 첫 글자만 남깁니다. (김철수 → 김○○)
func MaskName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "알 수 없음"
	}
	runes := []rune(name)
	if len(runes) < 2 {
		return name
	}
	return string(runes[0]) + strings.Repeat("○", len(runes)-1)
}

// MaskPhone은 전화번호 가운데를 가립니다. (010-****-1234)
func MaskPhone(phone string) string {
	digits := reNonDigit.ReplaceAllString(phone, "")
	switch {
	case len(digits) >= 8:
		return digits[:3] + "-****-" + digits[len(digits)-4:]
	case len(digits) >= 4:
		return "****-" + digits[len(digits)-4:]
	default:
		return "****"
	}
}

// MaskAddress는 동/읍/면 단위까지만 남깁니다. (서울시 강남구 역삼동 ○○○)
// 패턴이 없으면 앞 10글자만 보여줍니다.
func MaskAddress(address string) string {
	address = strings.TrimSpace(address)
	if address == "" {
		return "주소 미확인"
	}
	if m := reAddressHead.FindStringSubmatch(address); m != nil {
		return m[1] + " ○○○"
	}
	if utf8.RuneCountInString(address) > 10 {
		return string([]rune(address)[:10]) + "..."
	}
	return address
}
