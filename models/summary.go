package models

import (
	"fmt"
	"strings"
)

// SummaryLength 는 요약 길이 단계(short/medium/long)이다.
type SummaryLength string

const (
	LengthShort  SummaryLength = "short"
	LengthMedium SummaryLength = "medium"
	LengthLong   SummaryLength = "long"
)

// ParseSummaryLength 는 빈 값이면 medium 을, 그 외 정의되지 않은 값이면 에러를 반환한다.
func ParseSummaryLength(s string) (SummaryLength, error) {
	switch l := SummaryLength(strings.TrimSpace(s)); l {
	case "":
		return LengthMedium, nil
	case LengthShort, LengthMedium, LengthLong:
		return l, nil
	default:
		return "", fmt.Errorf("length must be one of: short, medium, long")
	}
}

// Summary 는 LLM 응답을 정규화한 구조화 요약이다.
type Summary struct {
	Title     string   `json:"title"`
	Main      string   `json:"main"`
	KeyPoints []string `json:"keyPoints,omitempty"`
}

// SummaryRecord 는 히스토리 파일에 저장되는 요약 1건이다.
// 생성 이후에는 삭제 외에 변경되지 않는다.
type SummaryRecord struct {
	ID             string        `json:"id"`
	URL            string        `json:"url"`
	Title          string        `json:"title"`
	Summary        Summary       `json:"summary"`
	CreatedAt      Timestamp     `json:"created_at" swaggertype:"string" format:"date-time"`
	Length         SummaryLength `json:"length"`
	ContentPreview string        `json:"content_preview"`
}
