package config

import (
	"encoding/json"
	"os"
	"sync"
)

type Config struct {
	RepoOwner     string `json:"repoOwner"`
	RepoName      string `json:"repoName"`
	RepoBranch    string `json:"repoBranch"`
	GithubToken   string `json:"githubToken"`
	EncryptionKey string `json:"encryptionKey"` // base64, 32바이트

	ShipmentFilePath string `json:"shipmentFilePath"`
	BoxFilePath      string `json:"boxFilePath"`
	StockFilePath    string `json:"stockFilePath"`

	AdminPasswordHash string `json:"adminPasswordHash"` // bcrypt
	JWTSecret         string `json:"jwtSecret"`

	StoreUserID        string `json:"storeUserID"`
	StorePassword      string `json:"storePassword"`
	DownloadFolderPath string `json:"downloadFolderPath"`
}

var (
	cfg Config
	mu  sync.RWMutex
)

const configFilePath = "./seroe_config.json"

func applyDefaults(c *Config) {
	if c.RepoBranch == "" {
		c.RepoBranch = "main"
	}
	if c.ShipmentFilePath == "" {
		c.ShipmentFilePath = "data/출고현황_encrypted.json"
	}
	if c.BoxFilePath == "" {
		c.BoxFilePath = "data/박스계산_encrypted.json"
	}
	if c.StockFilePath == "" {
		c.StockFilePath = "data/재고현황_encrypted.json"
	}
	if c.DownloadFolderPath == "" {
		c.DownloadFolderPath = "./downloads"
	}
}

func LoadConfig() (Config, error) {
	mu.Lock()
	defer mu.Unlock()

	file, err := os.ReadFile(configFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			applyDefaults(&cfg)
			return cfg, nil
		}
		return Config{}, err
	}

	var tempCfg Config
	if err := json.Unmarshal(file, &tempCfg); err != nil {
		return Config{}, err
	}
	applyDefaults(&tempCfg)
	cfg = tempCfg

	return cfg, nil
}

func SaveConfig(newCfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	applyDefaults(&newCfg)

	file, err := json.MarshalIndent(newCfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(configFilePath, file, 0600); err != nil {
		return err
	}
	cfg = newCfg
	return nil
}

func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}
