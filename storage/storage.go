// C:\Users\seoro\OneDrive\바탕 화면\SEROE\storage\storage.go
package storage

import (
	"fmt"
	"time"

	"seroe/config"
	"seroe/model"
)

// KST는 한국 시간대입니다. 입력일시와 커밋 메시지에 사용합니다.
var KST = time.FixedZone("KST", 9*60*60)

func clientFromConfig() (*Client, config.Config, error) {
	cfg := config.GetConfig()
	if cfg.RepoOwner == "" || cfg.RepoName == "" || cfg.GithubToken == "" {
		return nil, cfg, fmt.Errorf("원격 저장소 설정이 비어있습니다 (repoOwner/repoName/githubToken)")
	}
	if cfg.EncryptionKey == "" {
		return nil, cfg, fmt.Errorf("암호화 키가 설정되지 않았습니다")
	}
	return NewClient(cfg.RepoOwner, cfg.RepoName, cfg.RepoBranch, cfg.GithubToken), cfg, nil
}

func save(filePath string, results interface{}, commitPrefix string) error {
	client, cfg, err := clientFromConfig()
	if err != nil {
		return err
	}

	encrypted, err := EncryptResults(results, cfg.EncryptionKey)
	if err != nil {
		return err
	}

	now := time.Now().In(KST)
	message := fmt.Sprintf("%s - %s", commitPrefix, now.Format("2006-01-02 15:04"))
	return client.Save(filePath, encrypted, message, now)
}

func load(filePath string, out interface{}) (lastUpdate string, err error) {
	client, cfg, err := clientFromConfig()
	if err != nil {
		return "", err
	}

	encrypted, lastUpdate, err := client.Load(filePath)
	if err != nil {
		return "", err
	}
	if encrypted == "" {
		// 아직 저장된 데이터가 없음
		return "", nil
	}
	if err := DecryptResults(encrypted, cfg.EncryptionKey, out); err != nil {
		return "", err
	}
	return lastUpdate, nil
}

// SaveShipmentData는 출고 현황 집계를 원격에 저장합니다(통째로 덮어쓰기).
func SaveShipmentData(results model.ShipmentAggregate) error {
	return save(config.GetConfig().ShipmentFilePath, results, "출고 현황 업데이트")
}

// LoadShipmentData는 최신 출고 현황 집계를 불러옵니다. 없으면 빈 맵입니다.
func LoadShipmentData() (model.ShipmentAggregate, string, error) {
	results := make(model.ShipmentAggregate)
	lastUpdate, err := load(config.GetConfig().ShipmentFilePath, &results)
	if err != nil {
		return nil, "", err
	}
	return results, lastUpdate, nil
}

// SaveBoxData는 박스 계산 결과를 원격에 저장합니다.
func SaveBoxData(results model.BoxResults) error {
	return save(config.GetConfig().BoxFilePath, results, "박스 계산 업데이트")
}

// LoadBoxData는 최신 박스 계산 결과를 불러옵니다.
func LoadBoxData() (model.BoxResults, string, error) {
	results := model.BoxResults{
		TotalBoxes:   make(map[string]int),
		ReviewOrders: []model.ReviewOrder{},
	}
	lastUpdate, err := load(config.GetConfig().BoxFilePath, &results)
	if err != nil {
		return model.BoxResults{}, "", err
	}
	return results, lastUpdate, nil
}

// SaveStockData는 재고 이력 전체를 원격에 저장합니다.
func SaveStockData(history *model.StockHistory) error {
	return save(config.GetConfig().StockFilePath, history, "재고 현황 업데이트")
}

// LoadStockData는 재고 이력을 불러옵니다. 없으면 빈 이력입니다.
func LoadStockData() (*model.StockHistory, string, error) {
	history := &model.StockHistory{}
	lastUpdate, err := load(config.GetConfig().StockFilePath, history)
	if err != nil {
		return nil, "", err
	}
	return history, lastUpdate, nil
}
