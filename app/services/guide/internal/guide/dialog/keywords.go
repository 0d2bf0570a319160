package dialog

import (
	"regexp"
	"strconv"
	"strings"
)

// Keyword sets are ordered: the first set whose keyword appears in the
// utterance wins. Matching is on the lowercased raw utterance.

var categoryKeywords = []struct {
	category Category
	words    []string
}{
	{CategoryLaptop, []string{"노트북", "랩탑", "laptop", "notebook"}},
	{CategoryDesktop, []string{"pc", "컴퓨터", "데스크탑", "desktop", "데스크톱"}},
}

var usageKeywords = []struct {
	usage Usage
	words []string
}{
	{UsageGaming, []string{"게임", "게이밍", "gaming", "롤", "배그", "오버워치"}},
	{UsageWork, []string{"작업", "편집", "영상", "프리미어", "에프터이펙트", "포토샵"}},
	{UsageOffice, []string{"사무", "오피스", "문서", "워드", "엑셀"}},
	{UsageLecture, []string{"인강", "강의", "학습", "온라인"}},
}

var (
	lightWords   = []string{"가벼운", "가볍", "경량", "light", "1kg", "1.5kg"}
	heavyWords   = []string{"무거운", "무거워", "heavy", "3kg", "2.5kg"}
	yesWords     = []string{"네", "예", "yes", "필요", "있어", "맞아"}
	rescoreWords = []string{"다시", "재추천", "재검색"}

	portableMentionWords = []string{"휴대", "휴대용", "포기", "안필요", "불필요"}
	portableNoWords      = []string{"포기", "안필요", "불필요"}
	portableYesWords     = []string{"필요", "있어"}
)

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// ClassifyCategory detects the product category in an utterance.
func ClassifyCategory(utterance string) (Category, bool) {
	lower := strings.ToLower(utterance)
	for _, set := range categoryKeywords {
		if containsAny(lower, set.words) {
			return set.category, true
		}
	}
	return CategoryUnknown, false
}

// ClassifyUsage detects the declared usage in an utterance.
func ClassifyUsage(utterance string) (Usage, bool) {
	lower := strings.ToLower(utterance)
	for _, set := range usageKeywords {
		if containsAny(lower, set.words) {
			return set.usage, true
		}
	}
	return UsageUnknown, false
}

// ClassifyWeight maps an utterance to a weight preference. Anything that is
// neither clearly light nor clearly heavy counts as Normal, so this never
// fails.
func ClassifyWeight(utterance string) WeightPref {
	lower := strings.ToLower(utterance)
	if containsAny(lower, lightWords) {
		return WeightLight
	}
	if containsAny(lower, heavyWords) {
		return WeightHeavyOK
	}
	return WeightNormal
}

// ClassifyYes reports whether the utterance reads as an affirmative answer.
func ClassifyYes(utterance string) bool {
	return containsAny(strings.ToLower(utterance), yesWords)
}

var budgetPattern = regexp.MustCompile(`(\d+)\s*(만)?\s*(원)?`)

// ParseBudget extracts a budget in won from an utterance. A trailing "만"
// scales by 10,000; a bare number below 1000 is assumed to be abbreviated
// 만원 units, larger bare numbers are taken verbatim.
func ParseBudget(utterance string) (int64, bool) {
	cleaned := strings.ReplaceAll(utterance, ",", "")
	m := budgetPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	if m[2] == "만" || n < 1000 {
		return n * 10000, true
	}
	return n, true
}

// WantsRescore reports an explicit search-again request.
func WantsRescore(utterance string) bool {
	return containsAny(strings.ToLower(utterance), rescoreWords)
}

// ClassifyPortableRevision detects a portability change in a follow-up
// utterance after recommendation. Negation keywords win over affirmatives.
func ClassifyPortableRevision(utterance string) (Portable, bool) {
	lower := strings.ToLower(utterance)
	if !containsAny(lower, portableMentionWords) {
		return PortableUnknown, false
	}
	if containsAny(lower, portableNoWords) {
		return PortableNo, true
	}
	if containsAny(lower, portableYesWords) {
		return PortableYes, true
	}
	return PortableUnknown, false
}
