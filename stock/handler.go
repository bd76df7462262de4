// C:\Users\seoro\OneDrive\바탕 화면\SEROE\stock\handler.go
package stock

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"seroe/database"
	"seroe/model"
	"seroe/storage"
)

func respondJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// persistEntry는 새 재고 항목을 로컬 이력에 기록하고 원격 이력에도
// 반영합니다. 원격 실패는 경고로만 남기고 로컬 기록은 유지합니다
// (원격 저장소는 last-write-wins 공유 뷰이고, 로컬이 입력 이력의
// 기준입니다).
func persistEntry(db *sqlx.DB, entry model.StockEntry) (remoteSaved bool, err error) {
	tx, err := db.Beginx()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if _, err := database.InsertStockEntryTx(tx, entry); err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}

	history, _, err := storage.LoadStockData()
	if err != nil {
		log.Printf("WARN: 원격 재고 이력 로드 실패: %v", err)
		return false, nil
	}
	if history == nil {
		history = &model.StockHistory{}
	}
	history.Push(entry)
	if err := storage.SaveStockData(history); err != nil {
		log.Printf("WARN: 원격 재고 이력 저장 실패: %v", err)
		return false, nil
	}
	return true, nil
}

// SaveStockHandler는 수동 재고 입력을 저장합니다.
// 본문은 {"상품명|용량": 수량, ...} 형식입니다.
func SaveStockHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			respondJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var quantities map[string]int
		if err := json.NewDecoder(r.Body).Decode(&quantities); err != nil {
			respondJSONError(w, "요청 형식이 올바르지 않습니다.", http.StatusBadRequest)
			return
		}
		for key, qty := range quantities {
			if qty < 0 {
				respondJSONError(w, "재고 수량은 음수일 수 없습니다: "+key, http.StatusBadRequest)
				return
			}
		}

		entry := model.StockEntry{
			EnteredAt:         time.Now().In(storage.KST).Format("2006-01-02 15:04:05"),
			Quantities:        quantities,
			ShipmentReflected: false,
		}

		remoteSaved, err := persistEntry(db, entry)
		if err != nil {
			log.Printf("Error saving stock entry: %v", err)
			respondJSONError(w, "재고 저장 중 오류가 발생했습니다. 다시 시도해주세요.", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message":     "재고 입력이 저장되었습니다.",
			"remoteSaved": remoteSaved,
		})
	}
}

// ReflectShipmentHandler는 최신 출고 현황을 현재 재고에서 차감한
// 새 재고 항목을 만듭니다. 재고는 0 아래로 내려가지 않습니다.
func ReflectShipmentHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			respondJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		shipment, _, err := storage.LoadShipmentData()
		if err != nil {
			log.Printf("Error loading shipment data: %v", err)
			respondJSONError(w, "출고 현황을 불러오지 못했습니다.", http.StatusBadGateway)
			return
		}
		if len(shipment) == 0 {
			respondJSONError(w, "먼저 출고 현황 데이터를 업로드해주세요.", http.StatusConflict)
			return
		}

		latest := make(map[string]int)
		latestEntry, err := database.GetLatestStockEntry(db)
		if err != nil {
			log.Printf("Error loading latest stock entry: %v", err)
			respondJSONError(w, "재고 이력을 불러오지 못했습니다.", http.StatusInternalServerError)
			return
		}
		if latestEntry != nil {
			latest = latestEntry.Quantities
		}

		entry := ReflectShipment(latest, shipment, time.Now().In(storage.KST))

		remoteSaved, err := persistEntry(db, entry)
		if err != nil {
			log.Printf("Error saving reflected stock entry: %v", err)
			respondJSONError(w, "출고 현황 반영 중 오류가 발생했습니다. 다시 시도해주세요.", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message":     "출고 현황이 재고에 반영되었습니다.",
			"entry":       entry,
			"remoteSaved": remoteSaved,
		})
	}
}

// stockItemView는 화면 표시용 재고 1건입니다.
type stockItemView struct {
	ProductName string `json:"productName"`
	Capacity    string `json:"capacity"`
	Quantity    int    `json:"quantity"`
	LowStock    bool   `json:"lowStock"`
}

// GetStockHandler는 최근 재고와 이력을 부족 표시와 함께 반환합니다.
func GetStockHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := database.ListStockEntries(db, 20)
		if err != nil {
			log.Printf("Error listing stock entries: %v", err)
			respondJSONError(w, "재고 이력을 불러오지 못했습니다.", http.StatusInternalServerError)
			return
		}

		var items []stockItemView
		if len(entries) > 0 {
			for key, qty := range entries[0].Quantities {
				k := model.ParseStockKey(key)
				fullName := k.Name
				if k.Capacity != "" {
					fullName += " " + k.Capacity
				}
				items = append(items, stockItemView{
					ProductName: k.Name,
					Capacity:    k.Capacity,
					Quantity:    qty,
					LowStock:    IsLowStock(fullName, qty),
				})
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"items":   items,
			"history": entries,
		})
	}
}
