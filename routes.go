// C:\Users\seoro\OneDrive\바탕 화면\SEROE\routes.go
package main

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"seroe/auth"
	"seroe/automation"
	"seroe/customer"
	"seroe/shipment"
	"seroe/stock"
)

func SetupRoutes(mux *http.ServeMux, dbConn *sqlx.DB) {

	// 인증
	mux.HandleFunc("/api/login", auth.LoginHandler())
	mux.HandleFunc("/api/logout", auth.LogoutHandler())

	// 조회는 누구나, 업로드/입력/설정은 관리자만
	mux.HandleFunc("/api/shipment/latest", shipment.GetShipmentHandler())
	mux.HandleFunc("/api/boxes/latest", shipment.GetBoxResultsHandler())
	mux.HandleFunc("/api/stock", stock.GetStockHandler(dbConn))

	mux.HandleFunc("/api/orders/upload", auth.RequireAdmin(shipment.UploadOrdersHandler(dbConn)))
	mux.HandleFunc("/api/uploads", auth.RequireAdmin(shipment.ListUploadsHandler(dbConn)))

	mux.HandleFunc("/api/stock/save", auth.RequireAdmin(stock.SaveStockHandler(dbConn)))
	mux.HandleFunc("/api/stock/reflect", auth.RequireAdmin(stock.ReflectShipmentHandler(dbConn)))

	// 고객 관리는 개인정보 보호를 위해 전부 관리자 전용
	mux.HandleFunc("/api/customers/reorders", auth.RequireAdmin(customer.CheckReordersHandler()))
	mux.HandleFunc("/api/customers/history/append", auth.RequireAdmin(customer.AppendHistoryHandler()))
	mux.HandleFunc("/api/customers/stats", auth.RequireAdmin(customer.StatsHandler()))

	mux.HandleFunc("/api/config", auth.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			GetConfigHandler()(w, r)
		case http.MethodPost:
			SaveConfigHandler()(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	}))

	mux.HandleFunc("/api/automation/orders/download", auth.RequireAdmin(automation.DownloadOrdersHandler(dbConn)))
}
