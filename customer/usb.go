// C:\Users\seoro\OneDrive\바탕 화면\SEROE\customer\usb.go
package customer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"seroe/model"
)

// 고객 정보는 오프라인 보안을 위해 이동식 드라이브에만 둡니다.
var removableDriveCandidates = []string{`D:\`, `E:\`, `F:\`, `G:\`, `H:\`}

var ErrDriveNotFound = errors.New("이동식 드라이브를 찾을 수 없습니다")

// DetectRemovableDrive는 D:~H: 드라이브를 순서대로 확인합니다.
func DetectRemovableDrive() (string, error) {
	for _, path := range removableDriveCandidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", ErrDriveNotFound
}

// HistoryFilePath는 연도별 고객정보 파일 경로를 만듭니다.
func HistoryFilePath(drive string, year int) string {
	return filepath.Join(drive, fmt.Sprintf("고객정보_%d.xlsx", year))
}

// 고객정보 파일은 영문/한글 헤더가 섞여 있어 둘 다 받아줍니다.
var customerColumnAliases = map[string][]string{
	"customer_id":   {"customer_id", "고객번호"},
	"name":          {"name", "고객명"},
	"phone":         {"phone", "전화번호"},
	"order_history": {"order_history", "주문이력"},
}

func resolveCustomerColumns(header []string) (map[string]int, error) {
	index := make(map[string]int)
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	cols := make(map[string]int)
	for key, aliases := range customerColumnAliases {
		cols[key] = -1
		for _, alias := range aliases {
			if i, ok := index[alias]; ok {
				cols[key] = i
				break
			}
		}
	}
	if cols["name"] < 0 {
		return nil, errors.New("고객정보 파일에 고객명 컬럼이 없습니다")
	}
	return cols, nil
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// LoadCustomerRecords는 이동식 드라이브의 고객정보 파일을 읽습니다.
// 파일이 없으면 빈 목록을 돌려줍니다.
func LoadCustomerRecords(path string) ([]model.CustomerRecord, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("고객정보 파일 확인 실패: %w", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("고객정보 파일 열기 실패: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("고객정보 파일에 시트가 없습니다")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("고객정보 시트 읽기 실패: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols, err := resolveCustomerColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var records []model.CustomerRecord
	for _, row := range rows[1:] {
		rec := model.CustomerRecord{
			CustomerID:   cellAt(row, cols["customer_id"]),
			Name:         cellAt(row, cols["name"]),
			Phone:        cellAt(row, cols["phone"]),
			OrderHistory: cellAt(row, cols["order_history"]),
		}
		if rec.Name == "" && rec.Phone == "" {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// nextCustomerID 는 기존 번호 중 가장 큰 숫자 + 1 을 돌려줍니다.
func nextCustomerID(records []model.CustomerRecord) string {
	max := 0
	for _, rec := range records {
		if n, err := strconv.Atoi(rec.CustomerID); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

// AppendCustomerOrders는 당일 주문을 고객정보 파일에 반영합니다.
// 기존 고객이면 이력에 "날짜:상품"을 덧붙이고, 처음 보는 주문자면
// 새 고객으로 추가합니다. 파일이 없으면 새로 만듭니다.
func AppendCustomerOrders(path string, orders []model.DailyCustomer) (added, updated int, err error) {
	records, err := LoadCustomerRecords(path)
	if err != nil {
		return 0, 0, err
	}

	for _, order := range orders {
		if order.OrdererName == "" && order.OrdererPhone == "" {
			continue
		}
		entry := order.OrderDate + ":" + order.ProductInfo

		matched := findMatchingRecord(order, records)
		if matched != nil {
			if matched.OrderHistory == "" {
				matched.OrderHistory = entry
			} else {
				matched.OrderHistory += "," + entry
			}
			updated++
			continue
		}

		records = append(records, model.CustomerRecord{
			CustomerID:   nextCustomerID(records),
			Name:         order.OrdererName,
			Phone:        order.OrdererPhone,
			OrderHistory: entry,
		})
		added++
	}

	if err := writeCustomerRecords(path, records); err != nil {
		return 0, 0, err
	}
	return added, updated, nil
}

func writeCustomerRecords(path string, records []model.CustomerRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := []interface{}{"고객번호", "고객명", "전화번호", "주문이력"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("고객정보 헤더 기록 실패: %w", err)
	}
	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{rec.CustomerID, rec.Name, rec.Phone, rec.OrderHistory}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("고객정보 행 기록 실패: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("고객정보 파일 저장 실패: %w", err)
	}
	return nil
}
