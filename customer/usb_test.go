// C:\Users\seoro\OneDrive\바탕 화면\SEROE\customer\usb_test.go
package customer

import (
	"path/filepath"
	"testing"

	"seroe/model"
)

func TestHistoryFilePath(t *testing.T) {
	t.Parallel()

	got := HistoryFilePath(`E:\`, 2026)
	if filepath.Base(got) != "고객정보_2026.xlsx" {
		t.Fatalf("HistoryFilePath = %q", got)
	}
}

func TestLoadCustomerRecordsMissingFile(t *testing.T) {
	t.Parallel()

	records, err := LoadCustomerRecords(filepath.Join(t.TempDir(), "고객정보_2026.xlsx"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if records != nil {
		t.Fatalf("missing file should load as nil, got %v", records)
	}
}

func TestAppendCustomerOrdersRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "고객정보_2026.xlsx")

	orders := []model.DailyCustomer{
		{OrdererName: "김철수", OrdererPhone: "010-1234-5678", ProductInfo: "단호박식혜 1L 2개", OrderDate: "2026-08-29"},
		{OrdererName: "박민수", OrdererPhone: "010-2222-3333", ProductInfo: "수정과 500ml 3개", OrderDate: "2026-08-29"},
	}

	// 파일이 없으면 새로 만들면서 신규 고객으로 추가
	added, updated, err := AppendCustomerOrders(path, orders)
	if err != nil {
		t.Fatalf("AppendCustomerOrders: %v", err)
	}
	if added != 2 || updated != 0 {
		t.Fatalf("first append: added=%d updated=%d, want 2/0", added, updated)
	}

	records, err := LoadCustomerRecords(path)
	if err != nil {
		t.Fatalf("LoadCustomerRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Name != "김철수" || records[0].OrderHistory != "2026-08-29:단호박식혜 1L 2개" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}

	// 같은 고객의 재주문은 이력에 덧붙임
	added, updated, err = AppendCustomerOrders(path, []model.DailyCustomer{
		{OrdererName: "김철수", OrdererPhone: "010-1234-5678", ProductInfo: "식혜 1L 1개", OrderDate: "2026-09-10"},
	})
	if err != nil {
		t.Fatalf("second append: %v", err)
	}
	if added != 0 || updated != 1 {
		t.Fatalf("second append: added=%d updated=%d, want 0/1", added, updated)
	}

	records, err = LoadCustomerRecords(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	var kim *model.CustomerRecord
	for i := range records {
		if records[i].Name == "김철수" {
			kim = &records[i]
		}
	}
	if kim == nil {
		t.Fatalf("김철수 record missing after update")
	}
	wantHistory := "2026-08-29:단호박식혜 1L 2개,2026-09-10:식혜 1L 1개"
	if kim.OrderHistory != wantHistory {
		t.Fatalf("OrderHistory = %q, want %q", kim.OrderHistory, wantHistory)
	}

	history := ParseOrderHistory(kim.OrderHistory)
	if len(history) != 2 || history[1].Product != "식혜 1L 1개" {
		t.Fatalf("unexpected parsed history: %v", history)
	}
}
