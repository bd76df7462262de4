// C:\Users\seoro\OneDrive\바탕 화면\SEROE\parsers\parser_utils.go
package parsers

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SkipBOM은 UTF-8 BOM이 있으면 건너뜁니다.
func SkipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	bom := []byte{0xEF, 0xBB, 0xBF}
	peeked, err := br.Peek(3)
	if err != nil {
		return br
	}
	isBOM := true
	for i, b := range bom {
		if peeked[i] != b {
			isBOM = false
			break
		}
	}
	if isBOM {
		br.Read(make([]byte, 3))
	}
	return br
}

// getColIndex는 헤더 이름 → 열 인덱스 맵을 만들고 필수 헤더를 검증합니다.
func getColIndex(header []string, required []string) (map[string]int, error) {
	colIndex := make(map[string]int)
	for i, colName := range header {
		colIndex[strings.TrimSpace(colName)] = i
	}
	for _, req := range required {
		if _, ok := colIndex[req]; !ok {
			return nil, fmt.Errorf("필수 컬럼이 없습니다: %s", req)
		}
	}
	return colIndex, nil
}

// SafeInt는 문자열을 정수로 파싱하고, 실패하면 기본값을 반환합니다.
// 행 단위 오류는 에러가 아니라 기본값으로 복구합니다.
func SafeInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// "3.0" 같은 소수 표기로 들어오는 경우가 있어 한 번 더 시도
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return def
		}
		return int(f)
	}
	return n
}
