// C:\Users\seoro\OneDrive\바탕 화면\SEROE\database\stock_history.go
package database

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"seroe/model"
)

type stockEntryRow struct {
	ID                int64  `db:"id"`
	EnteredAt         string `db:"entered_at"`
	ShipmentReflected int    `db:"shipment_reflected"`
}

type stockItemRow struct {
	EntryID     int64  `db:"entry_id"`
	ProductName string `db:"product_name"`
	Capacity    string `db:"capacity"`
	Quantity    int    `db:"quantity"`
}

// InsertStockEntryTx는 재고 입력 1회분을 저장합니다.
// 수량 맵의 "상품명|용량" 키는 경계에서 분해해 컬럼으로 저장합니다.
func InsertStockEntryTx(tx *sqlx.Tx, entry model.StockEntry) (int64, error) {
	reflected := 0
	if entry.ShipmentReflected {
		reflected = 1
	}

	res, err := tx.Exec(
		`INSERT INTO stock_entries (entered_at, shipment_reflected) VALUES (?, ?)`,
		entry.EnteredAt, reflected)
	if err != nil {
		return 0, fmt.Errorf("failed to insert stock entry: %w", err)
	}
	entryID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for key, qty := range entry.Quantities {
		k := model.ParseStockKey(key)
		if _, err := tx.Exec(
			`INSERT INTO stock_entry_items (entry_id, product_name, capacity, quantity) VALUES (?, ?, ?, ?)`,
			entryID, k.Name, k.Capacity, qty); err != nil {
			return 0, fmt.Errorf("failed to insert stock item %s: %w", key, err)
		}
	}
	return entryID, nil
}

func loadEntryItems(db *sqlx.DB, entryID int64) (map[string]int, error) {
	var items []stockItemRow
	if err := db.Select(&items,
		`SELECT entry_id, product_name, capacity, quantity FROM stock_entry_items WHERE entry_id = ?`,
		entryID); err != nil {
		return nil, err
	}
	quantities := make(map[string]int, len(items))
	for _, item := range items {
		key := model.StockKey{Name: item.ProductName, Capacity: item.Capacity}
		quantities[key.String()] = item.Quantity
	}
	return quantities, nil
}

func rowToEntry(db *sqlx.DB, row stockEntryRow) (model.StockEntry, error) {
	quantities, err := loadEntryItems(db, row.ID)
	if err != nil {
		return model.StockEntry{}, fmt.Errorf("failed to load items for entry %d: %w", row.ID, err)
	}
	return model.StockEntry{
		EnteredAt:         row.EnteredAt,
		Quantities:        quantities,
		ShipmentReflected: row.ShipmentReflected != 0,
	}, nil
}

// GetLatestStockEntry는 가장 최근 재고 입력을 반환합니다. 없으면 nil.
func GetLatestStockEntry(db *sqlx.DB) (*model.StockEntry, error) {
	var row stockEntryRow
	err := db.Get(&row,
		`SELECT id, entered_at, shipment_reflected FROM stock_entries ORDER BY id DESC LIMIT 1`)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest stock entry: %w", err)
	}

	entry, err := rowToEntry(db, row)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListStockEntries는 최신순으로 재고 이력을 반환합니다.
func ListStockEntries(db *sqlx.DB, limit int) ([]model.StockEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []stockEntryRow
	if err := db.Select(&rows,
		`SELECT id, entered_at, shipment_reflected FROM stock_entries ORDER BY id DESC LIMIT ?`,
		limit); err != nil {
		return nil, fmt.Errorf("failed to list stock entries: %w", err)
	}

	entries := make([]model.StockEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := rowToEntry(db, row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
