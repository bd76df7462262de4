// C:\Users\seoro\OneDrive\바탕 화면\SEROE\config_handler.go
package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"

	"seroe/config"
)

// 헬퍼 함수: 에러를 JSON 으로 반환
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// GetConfigHandler는 현재 설정을 반환합니다
func GetConfigHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := config.GetConfig()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(cfg)
	}
}

// SaveConfigHandler는 설정을 저장합니다
func SaveConfigHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var newCfg config.Config
		if err := json.NewDecoder(r.Body).Decode(&newCfg); err != nil {
			writeJSONError(w, "요청 형식이 올바르지 않습니다.", http.StatusBadRequest)
			return
		}

		// 폴더 경로 검증 (주문서 다운로드 폴더)
		if err := validateFolderPath(newCfg.DownloadFolderPath); err != nil {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := config.SaveConfig(newCfg); err != nil {
			log.Printf("Error saving config: %v", err)
			writeJSONError(w, "설정 저장에 실패했습니다.", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "설정을 저장했습니다."})
	}
}

// 폴더 경로를 검증하는 헬퍼 함수
func validateFolderPath(path string) error {
	if path == "" {
		return nil // 비어 있으면 검증하지 않음
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.New("지정한 폴더 경로를 찾을 수 없습니다: " + path)
		}
		log.Printf("Error checking folder path: %v", err)
		return errors.New("폴더 경로 확인 중 오류가 발생했습니다.")
	}
	if !info.IsDir() {
		return errors.New("지정한 경로가 폴더가 아닙니다: " + path)
	}
	return nil
}
