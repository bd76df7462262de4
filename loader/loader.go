// C:\Users\seoro\OneDrive\바탕 화면\SEROE\loader\loader.go
package loader

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

// 로컬 sqlite 는 재고 입력 이력과 업로드 로그만 보관합니다.
// 주문서 원본 행(개인 정보 포함)은 어떤 테이블에도 저장하지 않습니다.
const schema = `
CREATE TABLE IF NOT EXISTS stock_entries (
    id                 INTEGER PRIMARY KEY AUTOINCREMENT,
    entered_at         TEXT    NOT NULL,
    shipment_reflected INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS stock_entry_items (
    entry_id     INTEGER NOT NULL REFERENCES stock_entries(id),
    product_name TEXT    NOT NULL,
    capacity     TEXT    NOT NULL,
    quantity     INTEGER NOT NULL,
    PRIMARY KEY (entry_id, product_name, capacity)
);

CREATE INDEX IF NOT EXISTS idx_stock_entry_items_entry
    ON stock_entry_items(entry_id);

CREATE TABLE IF NOT EXISTS upload_log (
    id              TEXT PRIMARY KEY,
    file_name       TEXT    NOT NULL,
    row_count       INTEGER NOT NULL,
    recipient_count INTEGER NOT NULL,
    total_quantity  INTEGER NOT NULL,
    uploaded_at     TEXT    NOT NULL
);
`

// InitDatabase는 sqlite 스키마를 적용합니다.
func InitDatabase(db *sqlx.DB) error {
	log.Println("Applying database schema...")
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	log.Println("Schema applied successfully.")
	return nil
}
