// C:\Users\seoro\OneDrive\바탕 화면\SEROE\automation\handler.go
package automation

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	"seroe/config"
	"seroe/parsers"
	"seroe/shipment"
)

func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// DownloadOrdersHandler는 판매자센터에서 주문서를 자동으로 내려받아
// 업로드와 같은 파이프라인으로 처리합니다.
func DownloadOrdersHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSONError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			writeJSONError(w, "설정을 불러오지 못했습니다: "+err.Error(), http.StatusInternalServerError)
			return
		}

		if cfg.StoreUserID == "" || cfg.StorePassword == "" {
			writeJSONError(w, "판매자센터 아이디 또는 비밀번호가 설정되지 않았습니다. 설정 화면에서 입력해주세요.", http.StatusBadRequest)
			return
		}

		saveDir := cfg.DownloadFolderPath
		if saveDir == "" {
			saveDir = os.TempDir()
			log.Printf("다운로드 폴더 설정이 없어 임시 폴더를 사용합니다: %s", saveDir)
		}

		log.Println("Starting order sheet automation...")
		filePath, err := DownloadOrderSheet(cfg.StoreUserID, cfg.StorePassword, saveDir)

		if err != nil {
			log.Printf("Automation Error: %v", err)
			writeJSONError(w, "자동 다운로드 오류: "+err.Error(), http.StatusInternalServerError)
			return
		}

		if filePath == "NO_DATA" {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{
				"status":  "no_data",
				"message": "내려받을 주문이 없습니다.",
			})
			return
		}

		log.Printf("Importing downloaded order sheet: %s", filePath)
		file, err := os.Open(filePath)
		if err != nil {
			writeJSONError(w, "다운로드 파일 열기 실패: "+err.Error(), http.StatusInternalServerError)
			return
		}
		defer file.Close()

		rows, err := parsers.ParseOrderXLSX(file)
		if err != nil {
			writeJSONError(w, "주문서 파싱 실패: "+err.Error(), http.StatusInternalServerError)
			return
		}

		result, err := shipment.ProcessOrders(db, rows, filepath.Base(filePath))
		if err != nil {
			writeJSONError(w, "주문 처리 중 오류: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":      "success",
			"message":     fmt.Sprintf("다운로드 및 집계 완료: 주문 %d건 (수취인 %d명)", len(rows), result.RecipientCount),
			"filePath":    filePath,
			"uploadId":    result.UploadID,
			"totalBoxes":  result.Boxes.TotalBoxes,
			"reviewCount": len(result.Boxes.ReviewOrders),
		})
	}
}
