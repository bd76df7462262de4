// C:\Users\seoro\OneDrive\바탕 화면\SEROE\database\upload_log.go
package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"seroe/model"
)

// InsertUploadLogTx는 업로드 이력 1건을 기록합니다. 요약 수치만 저장하고
// 원본 행은 남기지 않습니다.
func InsertUploadLogTx(tx *sqlx.Tx, rec model.UploadRecord) error {
	_, err := tx.NamedExec(`
		INSERT INTO upload_log (id, file_name, row_count, recipient_count, total_quantity, uploaded_at)
		VALUES (:id, :file_name, :row_count, :recipient_count, :total_quantity, :uploaded_at)`,
		rec)
	if err != nil {
		return fmt.Errorf("failed to insert upload log: %w", err)
	}
	return nil
}

// ListUploads는 최신순 업로드 이력을 반환합니다.
func ListUploads(db *sqlx.DB, limit int) ([]model.UploadRecord, error) {
	if limit <= 0 {
		limit = 30
	}
	var records []model.UploadRecord
	if err := db.Select(&records, `
		SELECT id, file_name, row_count, recipient_count, total_quantity, uploaded_at
		FROM upload_log ORDER BY uploaded_at DESC LIMIT ?`,
		limit); err != nil {
		return nil, fmt.Errorf("failed to list uploads: %w", err)
	}
	return records, nil
}
