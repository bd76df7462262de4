// C:\Users\seoro\OneDrive\바탕 화면\SEROE\customer\masking_test.go
package customer

import "testing"

func TestMaskName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want string
	}{
		{"김철수", "김○○"},
		{"홍길동", "홍○○"},
		{"이황", "이○"},
		{"김", "김"},
		{"", "알 수 없음"},
		{"  ", "알 수 없음"},
	}

	for _, tc := range cases {
		if got := MaskName(tc.name); got != tc.want {
			t.Fatalf("MaskName(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestMaskPhone(t *testing.T) {
	t.Parallel()

	cases := []struct {
		phone string
		want  string
	}{
		{"010-1234-5678", "010-****-5678"},
		{"01012345678", "010-****-5678"},
		{"1234567", "****-4567"},
		{"123", "****"},
		{"", "****"},
	}

	for _, tc := range cases {
		if got := MaskPhone(tc.phone); got != tc.want {
			t.Fatalf("MaskPhone(%q) = %q, want %q", tc.phone, got, tc.want)
		}
	}
}

func TestMaskAddress(t *testing.T) {
	t.Parallel()

	cases := []struct {
		address string
		want    string
	}{
		{"서울시 강남구 역삼동 123-45 아파트 101호", "서울시 강남구 역삼동 ○○○"},
		{"전남 구례군 구례읍 산업로 12", "전남 구례군 구례읍 ○○○"},
		{"", "주소 미확인"},
		{"짧은 주소", "짧은 주소"},
		{"패턴없는아주아주아주 긴 주소 문자열", "패턴없는아주아주아주..."},
	}

	for _, tc := range cases {
		if got := MaskAddress(tc.address); got != tc.want {
			t.Fatalf("MaskAddress(%q) = %q, want %q", tc.address, got, tc.want)
		}
	}
}
