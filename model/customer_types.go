// C:\Users\seoro\OneDrive\바탕 화면\SEROE\model\customer_types.go
package model

// CustomerRecord는 이동식 드라이브의 고객정보 파일 1행입니다.
type CustomerRecord struct {
	CustomerID   string
	Name         string
	Phone        string
	OrderHistory string // "날짜:상품,날짜:상품,..." 형식
}

// DailyCustomer는 당일 출고내역서에서 추출한 주문자 1명입니다.
// 비교가 끝나면 메모리에서 버려집니다.
type DailyCustomer struct {
	OrdererName   string
	OrdererPhone  string
	RecipientName string
	ProductInfo   string // "단호박식혜 1L 3개" 형식 요약
	OrderDate     string // "YYYY-MM-DD"
}

// OrderHistoryItem은 과거 주문 이력 1건입니다.
type OrderHistoryItem struct {
	Date    string `json:"date"`
	Product string `json:"product"`
}

// ReorderCustomer는 재주문이 확인된 고객입니다.
type ReorderCustomer struct {
	CustomerID    string             `json:"customerId"`
	DisplayName   string             `json:"displayName"`
	RecipientName string             `json:"recipientName"`
	OrderCount    int                `json:"orderCount"`
	LastOrderDate string             `json:"lastOrderDate"`
	CurrentOrder  string             `json:"currentOrder"`
	History       []OrderHistoryItem `json:"orderHistoryDetails"`
}

// CustomerStats는 고객정보 파일의 요약 통계입니다.
type CustomerStats struct {
	TotalCustomers      int     `json:"totalCustomers"`
	CustomersWithOrders int     `json:"customersWithOrders"`
	ReorderRate         float64 `json:"reorderRate"`
}
