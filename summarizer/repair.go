package summarizer

import (
	"encoding/json"
	"fmt"
	"strings"

	"universal-summarizer/models"
)

const (
	fallbackTitle    = "Summary"
	fallbackKeyPoint = "Unable to extract structured data from the response"
	fallbackMaxRunes = 500
)

// ParseOutcome 은 모델 응답을 어떤 경로로 해석했는지 나타낸다.
type ParseOutcome string

const (
	OutcomeStrict   ParseOutcome = "strict"
	OutcomeRepaired ParseOutcome = "repaired"
	OutcomeFallback ParseOutcome = "fallback"
)

// MissingFieldsError 는 JSON 해석은 됐지만 title/main 키가 없는 응답이다.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields in summary: " + strings.Join(e.Fields, ", ")
}

var requiredFields = []string{"title", "main"}

var quoteReplacer = strings.NewReplacer(
	"'", `"`,
	"‘", `"`,
	"’", `"`,
	"“", `"`,
	"”", `"`,
)

// ParseSummary 는 모델의 자유 텍스트 응답에서 {title, main, keyPoints} 를 최대한 복원한다.
// 1) 첫 '{' 부터 마지막 '}' 까지 잘라 그대로 해석하고
// 2) 실패하면 따옴표를 정규화해 다시 시도하며
// 3) 그래도 실패하면 원문 앞 500자를 담은 fallback 요약을 반환한다.
func ParseSummary(raw string) (*models.Summary, ParseOutcome, error) {
	span, ok := extractObjectSpan(raw)
	if ok {
		if s, err := decodeSummary(span); err == nil {
			return s, OutcomeStrict, nil
		} else if isMissingFields(err) {
			return nil, OutcomeStrict, err
		}

		if s, err := decodeSummary(quoteReplacer.Replace(span)); err == nil {
			return s, OutcomeRepaired, nil
		} else if isMissingFields(err) {
			return nil, OutcomeRepaired, err
		}
	}
	return fallbackSummary(raw), OutcomeFallback, nil
}

func extractObjectSpan(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

func decodeSummary(s string) (*models.Summary, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &keys); err != nil {
		return nil, err
	}
	var missing []string
	for _, f := range requiredFields {
		if _, ok := keys[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	var out models.Summary
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}
	return &out, nil
}

func isMissingFields(err error) bool {
	_, ok := err.(*MissingFieldsError)
	return ok
}

func fallbackSummary(raw string) *models.Summary {
	return &models.Summary{
		Title:     fallbackTitle,
		Main:      truncate(raw, fallbackMaxRunes),
		KeyPoints: []string{fallbackKeyPoint},
	}
}

// truncate returns s truncated to max runes.
func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}
