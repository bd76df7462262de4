// C:\Users\seoro\OneDrive\바탕 화면\SEROE\boxes\rules.go
package boxes

// 박스 결정 결과
const (
	BoxA = "박스 A"
	BoxB = "박스 B"
	BoxC = "박스 C"
	BoxD = "박스 D"
	BoxE = "박스 E"
	BoxF = "박스 F"

	// NeedsReview는 규칙표로 정할 수 없어 수동 검토가 필요한 경우입니다.
	// 실패가 아니라 정상적인 결과값입니다.
	NeedsReview = "검토 필요"
)

// boxRule은 규칙표의 1행입니다. 범위는 양끝 포함입니다.
type boxRule struct {
	Capacity string
	Min, Max int
	Box      string
}

// 박스 배정 규칙표. 표 순서대로 첫 매치가 이깁니다.
// 500ml 7~9개, 1L 0개/7개 이상 등 빠진 구간은 의도된 것으로,
// 검토 필요로 떨어집니다.
var boxRules = []boxRule{
	{"1L", 1, 2, BoxA},
	{"500ml", 1, 3, BoxA},
	{"240ml", 1, 5, BoxA},
	{"1L", 3, 4, BoxB},
	{"500ml", 4, 6, BoxB},
	{"240ml", 6, 10, BoxB},
	{"500ml", 10, 10, BoxC},
	{"1L", 5, 6, BoxD},
	{"1.5L", 3, 4, BoxE},
	{"1.5L", 1, 2, BoxF},
}

// CostOrder는 박스를 단가순으로 정렬할 때 쓰는 우선순위입니다.
var CostOrder = map[string]int{
	BoxA: 1,
	BoxB: 2,
	BoxC: 3,
	BoxD: 4,
	BoxE: 5,
	BoxF: 6,
}

// Descriptions는 박스별 수용 규격 설명입니다. 화면 표시용.
var Descriptions = map[string]string{
	BoxA: "1L 1~2개 · 500ml 1~3개 · 240ml 1~5개",
	BoxB: "1L 3~4개 · 500ml 4~6개 · 240ml 6~10개",
	BoxC: "500ml 10개",
	BoxD: "1L 5~6개",
	BoxE: "1.5L 3~4개",
	BoxF: "1.5L 1~2개",
}
