// C:\Users\seoro\OneDrive\바탕 화면\SEROE\automation\automation.go
package automation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
)

// DownloadOrderSheet는 스마트스토어 판매자센터에 로그인하여 당일
// 발주(주문)확인 내역 엑셀을 내려받습니다. 내려받은 파일 경로를
// 돌려주고, 내려받을 주문이 없으면 "NO_DATA" 를 돌려줍니다.
func DownloadOrderSheet(userID, password, saveDir string) (string, error) {
	// 저장 폴더 확보
	if _, err := os.Stat(saveDir); os.IsNotExist(err) {
		if err := os.MkdirAll(saveDir, 0755); err != nil {
			return "", fmt.Errorf("저장 폴더 생성 실패: %v", err)
		}
	}

	// 1. 브라우저 실행
	// Leakless(false) 는 보안 프로그램 오탐 대응
	u := launcher.New().
		Headless(false).
		Leakless(false).
		MustLaunch()

	browser := rod.New().ControlURL(u).MustConnect()
	defer browser.MustClose()

	// 2. 로그인 화면으로
	fmt.Println("판매자센터에 접속 중...")
	page := browser.MustPage("https://sell.smartstore.naver.com/")
	page.MustWaitStable()

	// 3. 로그인
	fmt.Println("로그인 정보 입력 중...")

	if err := rod.Try(func() {
		page.MustElement("input[name='id']").MustInput(userID)
	}); err != nil {
		return "", fmt.Errorf("아이디 입력란을 찾을 수 없습니다: %v", err)
	}

	if err := rod.Try(func() {
		page.MustElement("input[name='pw']").MustInput(password)
	}); err != nil {
		return "", fmt.Errorf("비밀번호 입력란을 찾을 수 없습니다: %v", err)
	}

	fmt.Println("로그인 버튼 클릭...")
	loginBtn, err := page.ElementR("button, a, input", "로그인")
	if err == nil {
		loginBtn.MustClick()
	} else {
		page.KeyActions().Press(input.Enter).MustDo()
	}

	page.MustWaitStable()

	// 4. 주문 관리 메뉴로
	fmt.Println("메뉴[발주(주문)확인/발송관리] 검색 중...")
	if err := rod.Try(func() {
		page.MustElementR("a, span, div", "발주\\(주문\\)확인").MustClick()
	}); err != nil {
		return "", fmt.Errorf("주문 관리 메뉴를 찾을 수 없습니다(로그인 실패 가능성 있음): %v", err)
	}
	page.MustWaitStable()

	// 5. 다운로드 준비
	wait := browser.MustWaitDownload()

	// 확인 대화상자가 뜨면 자동으로 닫음
	go page.MustHandleDialog()

	// 6. 엑셀 다운로드 버튼 클릭
	fmt.Println("엑셀 다운로드 버튼 클릭...")
	clicked := false
	selectors := []string{
		"button[class*='excel']",
		"button",
		"a",
	}

	for _, sel := range selectors {
		if el, err := page.ElementR(sel, "엑셀다운"); err == nil {
			el.MustClick()
			clicked = true
			break
		}
	}

	if !clicked {
		return "", fmt.Errorf("엑셀 다운로드 버튼을 찾을 수 없습니다")
	}

	// 7. 감시 루프 (다운로드 시작 vs 화면 메시지 변화)
	fmt.Println("다운로드 대기 중...")

	var fileData []byte
	resultChan := make(chan string)

	// A. 다운로드 감시
	go func() {
		defer func() {
			_ = recover()
		}()
		data := wait()
		fileData = data
		resultChan <- "downloaded"
	}()

	// B. 화면 메시지 감시
	go func() {
		// 최대 30초
		for i := 0; i < 60; i++ {
			time.Sleep(500 * time.Millisecond)

			if body, err := page.Element("body"); err == nil {
				text, _ := body.Text()

				if strings.Contains(text, "조회 결과가 없습니다") {
					resultChan <- "no_data"
					return
				}
			}
		}
	}()

	select {
	case res := <-resultChan:
		if res == "no_data" {
			return "NO_DATA", nil
		}
		// "downloaded" 이면 아래로 계속

	case <-time.After(60 * time.Second):
		return "", fmt.Errorf("처리 시간이 초과되었습니다(다운로드도 메시지도 확인 못 함)")
	}

	if len(fileData) == 0 {
		return "", fmt.Errorf("다운로드 데이터가 비어 있습니다")
	}

	// 8. 파일 저장
	fileName := fmt.Sprintf("주문내역_%s.xlsx", time.Now().Format("20060102150405"))
	destPath := filepath.Join(saveDir, fileName)

	if err := os.WriteFile(destPath, fileData, 0644); err != nil {
		return "", fmt.Errorf("파일 쓰기 실패: %v", err)
	}

	fmt.Printf("다운로드 완료: %s\n", destPath)
	return destPath, nil
}
