// C:\Users\seoro\OneDrive\바탕 화면\SEROE\customer\matching_test.go
package customer

import (
	"testing"
	"time"

	"seroe/model"
)

func TestMatchPhoneNumber(t *testing.T) {
	t.Parallel()

	cases := []struct {
		stored  string
		current string
		want    bool
	}{
		{"010-1234-5678", "01012345678", true},
		{"010.9999.5678", "010-1234-5678", true}, // 뒤 4자리만 비교
		{"010-1234-5678", "010-1234-0000", false},
		{"123", "010-1234-5678", false},
		{"", "010-1234-5678", false},
		{"010-1234-5678", "", false},
	}

	for _, tc := range cases {
		if got := MatchPhoneNumber(tc.stored, tc.current); got != tc.want {
			t.Fatalf("MatchPhoneNumber(%q, %q) = %v, want %v", tc.stored, tc.current, got, tc.want)
		}
	}
}

func TestParseOrderHistory(t *testing.T) {
	t.Parallel()

	items := ParseOrderHistory("2026-01-15:단호박식혜 1L 2개, 2026-03-02:수정과 500ml 3개")
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Date != "2026-01-15" || items[0].Product != "단호박식혜 1L 2개" {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].Date != "2026-03-02" {
		t.Fatalf("unexpected second item: %+v", items[1])
	}

	if got := ParseOrderHistory(""); got != nil {
		t.Fatalf("empty history should parse to nil, got %v", got)
	}

	// 콜론 없는 조각은 건너뜀
	if got := ParseOrderHistory("잘못된 조각,2026-05-01:식혜 1L 1개"); len(got) != 1 {
		t.Fatalf("malformed fragment should be skipped, got %v", got)
	}
}

func TestExtractDailyCustomers(t *testing.T) {
	t.Parallel()

	rows := []model.OrderRow{
		{
			ProductName:   "[서로 단호박식혜] 국산",
			OptionText:    "단호박식혜 1L 2병",
			Quantity:      2,
			RecipientName: "김영희",
			OrdererName:   "김철수",
			OrdererPhone:  "010-1234-5678",
		},
	}

	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	daily := ExtractDailyCustomers(rows, now)

	if len(daily) != 1 {
		t.Fatalf("got %d daily customers, want 1", len(daily))
	}
	d := daily[0]
	if d.OrdererName != "김철수" || d.RecipientName != "김영희" {
		t.Fatalf("unexpected customer: %+v", d)
	}
	if d.ProductInfo != "단호박식혜 1L 4개" {
		t.Fatalf("ProductInfo = %q, want %q", d.ProductInfo, "단호박식혜 1L 4개")
	}
	if d.OrderDate != "2026-08-29" {
		t.Fatalf("OrderDate = %q", d.OrderDate)
	}
}

func TestFindReorderCustomers(t *testing.T) {
	t.Parallel()

	records := []model.CustomerRecord{
		{
			CustomerID:   "1",
			Name:         "김철수",
			Phone:        "010-1234-5678",
			OrderHistory: "2026-01-15:단호박식혜 1L 2개,2026-03-02:수정과 500ml 3개",
		},
		{
			CustomerID: "2",
			Name:       "박민수",
			Phone:      "010-2222-3333",
		},
	}

	daily := []model.DailyCustomer{
		// 이름은 다르지만 전화 뒤 4자리 일치
		{OrdererName: "김CS", OrdererPhone: "01099995678", RecipientName: "김영희", ProductInfo: "식혜 1L 1개", OrderDate: "2026-08-29"},
		// 어느 고객과도 일치하지 않음
		{OrdererName: "성춘향", OrdererPhone: "010-0000-0000", ProductInfo: "수정과 500ml 1개", OrderDate: "2026-08-29"},
		// 이름도 전화도 없는 행은 무시
		{ProductInfo: "식혜 1L 1개", OrderDate: "2026-08-29"},
	}

	reorders := FindReorderCustomers(daily, records)
	if len(reorders) != 1 {
		t.Fatalf("got %d reorder customers, want 1", len(reorders))
	}

	r := reorders[0]
	if r.CustomerID != "1" {
		t.Fatalf("CustomerID = %q, want 1", r.CustomerID)
	}
	if r.OrderCount != 2 {
		t.Fatalf("OrderCount = %d, want 2", r.OrderCount)
	}
	if r.LastOrderDate != "2026-03-02" {
		t.Fatalf("LastOrderDate = %q", r.LastOrderDate)
	}
	if r.CurrentOrder != "식혜 1L 1개" {
		t.Fatalf("CurrentOrder = %q", r.CurrentOrder)
	}
	// 수취인이름은 마스킹되어 나감
	if r.RecipientName != "김○○" {
		t.Fatalf("RecipientName = %q, want 김○○", r.RecipientName)
	}
	if len(r.History) != 2 {
		t.Fatalf("History length = %d, want 2", len(r.History))
	}
}

func TestFindReorderCustomersFirstOrder(t *testing.T) {
	t.Parallel()

	records := []model.CustomerRecord{
		{CustomerID: "3", Name: "이몽룡", Phone: "010-7777-8888"},
	}
	daily := []model.DailyCustomer{
		{OrdererName: "이몽룡", OrdererPhone: "010-7777-8888", ProductInfo: "수정과 500ml 2개"},
	}

	reorders := FindReorderCustomers(daily, records)
	if len(reorders) != 1 {
		t.Fatalf("got %d, want 1", len(reorders))
	}
	// 이력이 빈 기존 고객은 주문 횟수 1, 최근 주문일은 알 수 없음
	if reorders[0].OrderCount != 1 || reorders[0].LastOrderDate != "알 수 없음" {
		t.Fatalf("unexpected reorder summary: %+v", reorders[0])
	}
}
