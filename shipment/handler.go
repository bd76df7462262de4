// C:\Users\seoro\OneDrive\바탕 화면\SEROE\shipment\handler.go
package shipment

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"seroe/aggregation"
	"seroe/boxes"
	"seroe/database"
	"seroe/model"
	"seroe/parsers"
	"seroe/storage"
)

func respondJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// UploadOrdersHandler는 주문서 업로드 1건을 처리합니다.
// 파싱 → 출고 집계 → 박스 계산 → 원격 저장 → 업로드 로그 순서로 진행하고,
// 도중에 실패하면 어떤 집계도 저장하지 않습니다(부분 결과 없음).
// 원본 행은 응답을 만든 뒤 버려지며 어디에도 저장되지 않습니다.
func UploadOrdersHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			respondJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		log.Println("Received order sheet upload request...")

		if err := r.ParseMultipartForm(32 << 20); err != nil {
			respondJSONError(w, "파일 업로드 오류: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer r.MultipartForm.RemoveAll()

		fileHeaders := r.MultipartForm.File["file"]
		if len(fileHeaders) == 0 {
			respondJSONError(w, "업로드된 파일이 없습니다.", http.StatusBadRequest)
			return
		}

		// 여러 파일이 올라오면 행을 합쳐서 한 번에 집계합니다.
		var rows []model.OrderRow
		var fileNames []string
		for _, fh := range fileHeaders {
			log.Printf("Processing file: %s", fh.Filename)
			fileNames = append(fileNames, fh.Filename)

			file, err := fh.Open()
			if err != nil {
				respondJSONError(w, fmt.Sprintf("%s 파일을 열 수 없습니다: %v", fh.Filename, err), http.StatusBadRequest)
				return
			}

			var parsed []model.OrderRow
			switch strings.ToLower(filepath.Ext(fh.Filename)) {
			case ".xlsx":
				parsed, err = parsers.ParseOrderXLSX(file)
			case ".csv":
				parsed, err = parsers.ParseOrderCSV(file)
			default:
				file.Close()
				respondJSONError(w, fmt.Sprintf("%s: .xlsx 또는 .csv 파일만 지원합니다.", fh.Filename), http.StatusBadRequest)
				return
			}
			file.Close()
			if err != nil {
				respondJSONError(w, fmt.Sprintf("%s 처리 실패: %v", fh.Filename, err), http.StatusBadRequest)
				return
			}
			rows = append(rows, parsed...)
		}

		result, err := ProcessOrders(db, rows, strings.Join(fileNames, ", "))
		if err != nil {
			log.Printf("Error processing orders: %v", err)
			respondJSONError(w, err.Error(), http.StatusBadGateway)
			return
		}

		log.Printf("Upload %s processed: %d rows, %d recipients", result.UploadID, len(rows), result.RecipientCount)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message":     fmt.Sprintf("주문 %d건 처리 완료 (수취인 %d명)", len(rows), result.RecipientCount),
			"uploadId":    result.UploadID,
			"shipment":    result.Shipment,
			"totalBoxes":  result.Boxes.TotalBoxes,
			"reviewCount": len(result.Boxes.ReviewOrders),
		})
	}
}

// ProcessResult 는 주문 처리 1회의 결과 묶음입니다.
type ProcessResult struct {
	UploadID       string
	Shipment       model.ShipmentAggregate
	Boxes          model.BoxResults
	RecipientCount int
}

// ProcessOrders는 정제된 주문 행을 집계하고 박스를 계산한 뒤 원격에
// 저장하고 업로드 로그를 남깁니다. 업로드 핸들러와 자동 다운로드가
// 같이 씁니다. 빈 입력은 빈 집계로 끝납니다(에러 아님).
func ProcessOrders(db *sqlx.DB, rows []model.OrderRow, fileName string) (*ProcessResult, error) {
	results := aggregation.AggregateShipment(rows)
	recipientOrders := aggregation.GroupOrdersByRecipient(rows)
	boxResults := boxes.CalculateBoxRequirements(recipientOrders)

	if err := storage.SaveShipmentData(results); err != nil {
		return nil, fmt.Errorf("출고 현황 저장에 실패했습니다: %w", err)
	}
	if err := storage.SaveBoxData(boxResults); err != nil {
		return nil, fmt.Errorf("박스 계산 저장에 실패했습니다: %w", err)
	}

	record := model.UploadRecord{
		ID:             uuid.NewString(),
		FileName:       fileName,
		RowCount:       len(rows),
		RecipientCount: len(recipientOrders),
		TotalQuantity:  results.Total(),
		UploadedAt:     time.Now().In(storage.KST).Format("2006-01-02 15:04:05"),
	}
	tx, err := db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("업로드 로그 기록에 실패했습니다: %w", err)
	}
	defer tx.Rollback()
	if err := database.InsertUploadLogTx(tx, record); err != nil {
		return nil, fmt.Errorf("업로드 로그 기록에 실패했습니다: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("업로드 로그 커밋에 실패했습니다: %w", err)
	}

	return &ProcessResult{
		UploadID:       record.ID,
		Shipment:       results,
		Boxes:          boxResults,
		RecipientCount: record.RecipientCount,
	}, nil
}

// GetShipmentHandler는 최신 출고 현황을 반환합니다.
func GetShipmentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, lastUpdate, err := storage.LoadShipmentData()
		if err != nil {
			log.Printf("Error loading shipment data: %v", err)
			respondJSONError(w, "출고 현황을 불러오지 못했습니다.", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results":    results,
			"lastUpdate": lastUpdate,
		})
	}
}

// GetBoxResultsHandler는 최신 박스 계산 결과를 단가순 정렬 정보와 함께
// 반환합니다.
func GetBoxResultsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, lastUpdate, err := storage.LoadBoxData()
		if err != nil {
			log.Printf("Error loading box data: %v", err)
			respondJSONError(w, "박스 계산 결과를 불러오지 못했습니다.", http.StatusBadGateway)
			return
		}

		totalBoxCount := 0
		for _, count := range results.TotalBoxes {
			totalBoxCount += count
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results":       results,
			"totalBoxCount": totalBoxCount,
			"reviewCount":   len(results.ReviewOrders),
			"costOrder":     boxes.CostOrder,
			"descriptions":  boxes.Descriptions,
			"lastUpdate":    lastUpdate,
		})
	}
}

// ListUploadsHandler는 업로드 이력을 반환합니다.
func ListUploadsHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := database.ListUploads(db, 30)
		if err != nil {
			log.Printf("Error listing uploads: %v", err)
			respondJSONError(w, "업로드 이력을 불러오지 못했습니다.", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(records)
	}
}
