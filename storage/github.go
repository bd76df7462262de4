// C:\Users\seoro\OneDrive\바탕 화면\SEROE\storage\github.go
package storage

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// 원격 저장소는 GitHub contents API 를 쓰는 단순한 last-write-wins
// 키-값 저장소입니다. 동시 업로드 충돌 감지는 하지 않습니다(낙관적 덮어쓰기).

const maxRetries = 3

// Client는 GitHub 저장소 1개에 대한 접근 클라이언트입니다.
type Client struct {
	Owner      string
	Repo       string
	Branch     string
	Token      string
	HTTPClient *http.Client
}

func NewClient(owner, repo, branch, token string) *Client {
	return &Client{
		Owner:      owner,
		Repo:       repo,
		Branch:     branch,
		Token:      token,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// dataPackage는 원격 파일 1개의 JSON 포맷입니다.
type dataPackage struct {
	EncryptedData string  `json:"encrypted_data"`
	LastUpdate    string  `json:"last_update"`
	Timestamp     float64 `json:"timestamp"`
}

type contentsResponse struct {
	SHA     string `json:"sha"`
	Content string `json:"content"`
}

func (c *Client) contentsURL(filePath string) string {
	return fmt.Sprintf("https://api.github.com/repos/%s/%s/contents/%s", c.Owner, c.Repo, filePath)
}

func (c *Client) getContents(filePath string) (*contentsResponse, int, error) {
	req, err := http.NewRequest(http.MethodGet, c.contentsURL(filePath), nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Authorization", "token "+c.Token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, nil
	}

	var contents contentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&contents); err != nil {
		return nil, resp.StatusCode, err
	}
	return &contents, resp.StatusCode, nil
}

// Save는 암호화된 데이터를 원격 파일에 저장합니다. 기존 파일이 있으면
// sha 를 붙여 덮어쓰고, 실패 시 지수 백오프로 재시도합니다.
func (c *Client) Save(filePath, encryptedData, commitMessage string, now time.Time) error {
	pkg := dataPackage{
		EncryptedData: encryptedData,
		LastUpdate:    now.Format(time.RFC3339),
		Timestamp:     float64(now.UnixNano()) / 1e9,
	}
	raw, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return fmt.Errorf("데이터 패키지 직렬화 실패: %w", err)
	}
	content := base64.StdEncoding.EncodeToString(raw)

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(1<<attempt) * time.Second)
		}

		var sha string
		contents, status, err := c.getContents(filePath)
		if err != nil {
			lastErr = err
			log.Printf("WARN: 원격 파일 조회 실패 (시도 %d/%d): %v", attempt+1, maxRetries, err)
			continue
		}
		if status == http.StatusOK && contents != nil {
			sha = contents.SHA
		}

		payload := map[string]interface{}{
			"message": commitMessage,
			"content": content,
			"branch":  c.Branch,
		}
		if sha != "" {
			payload["sha"] = sha
		}

		body, err := json.Marshal(payload)
		if err != nil {
			return err
		}

		req, err := http.NewRequest(http.MethodPut, c.contentsURL(filePath), bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "token "+c.Token)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			lastErr = err
			log.Printf("WARN: 원격 저장 네트워크 오류 (시도 %d/%d): %v", attempt+1, maxRetries, err)
			continue
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
			return nil
		}
		lastErr = fmt.Errorf("원격 저장 실패: HTTP %d", resp.StatusCode)
		log.Printf("WARN: 원격 저장 실패 (시도 %d/%d): HTTP %d", attempt+1, maxRetries, resp.StatusCode)
	}
	return fmt.Errorf("원격 저장에 %d회 모두 실패했습니다: %w", maxRetries, lastErr)
}

// Load는 원격 파일을 읽어 암호화된 본문과 마지막 갱신 시각을 반환합니다.
// 파일이 아직 없으면(404) 빈 값을 반환하며 에러가 아닙니다.
func (c *Client) Load(filePath string) (encryptedData string, lastUpdate string, err error) {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Second)
		}

		contents, status, err := c.getContents(filePath)
		if err != nil {
			lastErr = err
			continue
		}
		if status == http.StatusNotFound {
			return "", "", nil
		}
		if status != http.StatusOK || contents == nil {
			lastErr = fmt.Errorf("원격 로드 실패: HTTP %d", status)
			continue
		}

		decoded, err := base64.StdEncoding.DecodeString(contents.Content)
		if err != nil {
			// contents API 는 본문에 개행을 끼워 넣을 수 있음
			decoded, err = base64.StdEncoding.DecodeString(stripNewlines(contents.Content))
			if err != nil {
				return "", "", fmt.Errorf("원격 파일 디코딩 실패: %w", err)
			}
		}

		var pkg dataPackage
		if err := json.Unmarshal(decoded, &pkg); err != nil {
			return "", "", fmt.Errorf("데이터 패키지 역직렬화 실패: %w", err)
		}
		return pkg.EncryptedData, pkg.LastUpdate, nil
	}
	return "", "", fmt.Errorf("원격 로드에 %d회 모두 실패했습니다: %w", maxRetries, lastErr)
}

func stripNewlines(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' || s[i] == '\r' {
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}
