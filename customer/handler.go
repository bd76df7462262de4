// C:\Users\seoro\OneDrive\바탕 화면\SEROE\customer\handler.go
package customer

import (
	"encoding/json"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"seroe/model"
	"seroe/parsers"
	"seroe/storage"
)

func respondJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// rowsFromRequest 는 요청에 첨부된 출고내역서에서 주문 행을 읽습니다.
// 고객 대조는 요청에 올라온 파일로만 수행하고, 원본 행은 응답을 만든 뒤
// 버립니다(세션이나 DB 에 남기지 않음).
func rowsFromRequest(r *http.Request) ([]model.OrderRow, error) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return nil, fmt.Errorf("파일 업로드 오류: %w", err)
	}
	fileHeaders := r.MultipartForm.File["file"]
	if len(fileHeaders) == 0 {
		return nil, fmt.Errorf("출고내역서 파일이 없습니다")
	}

	var rows []model.OrderRow
	for _, fh := range fileHeaders {
		var parsed []model.OrderRow
		err := func(fh *multipart.FileHeader) error {
			file, err := fh.Open()
			if err != nil {
				return fmt.Errorf("%s 파일을 열 수 없습니다: %w", fh.Filename, err)
			}
			defer file.Close()

			switch strings.ToLower(filepath.Ext(fh.Filename)) {
			case ".xlsx":
				parsed, err = parsers.ParseOrderXLSX(file)
			case ".csv":
				parsed, err = parsers.ParseOrderCSV(file)
			default:
				return fmt.Errorf("%s: .xlsx 또는 .csv 파일만 지원합니다", fh.Filename)
			}
			if err != nil {
				return fmt.Errorf("%s 처리 실패: %w", fh.Filename, err)
			}
			return nil
		}(fh)
		if err != nil {
			return nil, err
		}
		rows = append(rows, parsed...)
	}
	return rows, nil
}

// yearFromRequest 는 ?year= 파라미터를 읽고, 없으면 올해를 씁니다.
func yearFromRequest(r *http.Request) int {
	if s := r.URL.Query().Get("year"); s != "" {
		if year, err := strconv.Atoi(s); err == nil && year > 2000 {
			return year
		}
	}
	return time.Now().In(storage.KST).Year()
}

// CheckReordersHandler는 업로드된 출고내역서와 이동식 드라이브의
// 고객정보 파일을 대조하여 재주문 고객을 돌려줍니다.
func CheckReordersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			respondJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		drive, err := DetectRemovableDrive()
		if err != nil {
			respondJSONError(w, "이동식 드라이브가 연결되지 않았습니다. 고객정보 파일이 저장된 드라이브를 연결해주세요.", http.StatusConflict)
			return
		}

		path := HistoryFilePath(drive, yearFromRequest(r))
		records, err := LoadCustomerRecords(path)
		if err != nil {
			log.Printf("Error loading customer records: %v", err)
			respondJSONError(w, "고객정보 파일을 읽지 못했습니다: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if records == nil {
			respondJSONError(w, fmt.Sprintf("고객 정보 파일을 찾을 수 없습니다: %s", path), http.StatusNotFound)
			return
		}

		rows, err := rowsFromRequest(r)
		if err != nil {
			respondJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer r.MultipartForm.RemoveAll()

		daily := ExtractDailyCustomers(rows, time.Now().In(storage.KST))
		reorders := FindReorderCustomers(daily, records)

		log.Printf("Reorder check: %d daily orderers, %d reorder customers", len(daily), len(reorders))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"reorderCustomers": reorders,
			"dailyCount":       len(daily),
		})
	}
}

// AppendHistoryHandler는 업로드된 출고내역서의 당일 주문을 연도별
// 고객정보 파일에 추가합니다.
func AppendHistoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			respondJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		drive, err := DetectRemovableDrive()
		if err != nil {
			respondJSONError(w, "이동식 드라이브가 연결되지 않았습니다. 고객정보 파일이 저장된 드라이브를 연결해주세요.", http.StatusConflict)
			return
		}

		rows, err := rowsFromRequest(r)
		if err != nil {
			respondJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer r.MultipartForm.RemoveAll()

		now := time.Now().In(storage.KST)
		daily := ExtractDailyCustomers(rows, now)
		path := HistoryFilePath(drive, now.Year())

		added, updated, err := AppendCustomerOrders(path, daily)
		if err != nil {
			log.Printf("Error appending customer orders: %v", err)
			respondJSONError(w, "고객 주문 이력 저장 실패: "+err.Error(), http.StatusInternalServerError)
			return
		}

		log.Printf("Customer history updated: %d added, %d updated (%s)", added, updated, path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": fmt.Sprintf("고객 주문 이력 저장 완료 (신규 %d명, 갱신 %d명)", added, updated),
			"added":   added,
			"updated": updated,
		})
	}
}

// StatsHandler는 고객정보 파일의 요약 통계를 반환합니다.
func StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drive, err := DetectRemovableDrive()
		if err != nil {
			respondJSONError(w, "이동식 드라이브가 연결되지 않았습니다.", http.StatusConflict)
			return
		}

		records, err := LoadCustomerRecords(HistoryFilePath(drive, yearFromRequest(r)))
		if err != nil {
			log.Printf("Error loading customer records: %v", err)
			respondJSONError(w, "고객정보 파일을 읽지 못했습니다: "+err.Error(), http.StatusInternalServerError)
			return
		}

		stats := model.CustomerStats{TotalCustomers: len(records)}
		for _, rec := range records {
			if strings.TrimSpace(rec.OrderHistory) != "" {
				stats.CustomersWithOrders++
			}
		}
		if stats.TotalCustomers > 0 {
			stats.ReorderRate = float64(stats.CustomersWithOrders) / float64(stats.TotalCustomers) * 100
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	}
}
