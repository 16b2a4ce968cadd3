package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"universal-summarizer/models"
)

var errRecordWithoutID = errors.New("history record has no id")

// decodeRecord 는 배열 원소 1개를 읽는다.
// 형식이 맞지 않는 예전 레코드는 필드 단위로 변환하고 id 가 없을 때만 실패한다.
func decodeRecord(raw json.RawMessage) (models.SummaryRecord, error) {
	var rec models.SummaryRecord
	if err := json.Unmarshal(raw, &rec); err == nil && rec.ID != "" {
		return rec, nil
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.SummaryRecord{}, fmt.Errorf("history record is not an object: %w", err)
	}

	rec = models.SummaryRecord{
		ID:             stringValue(fields["id"]),
		URL:            stringValue(fields["url"]),
		Title:          stringValue(fields["title"]),
		Summary:        summaryValue(fields["summary"]),
		ContentPreview: stringValue(fields["content_preview"]),
		Length:         models.LengthMedium,
	}
	if rec.ID == "" {
		return models.SummaryRecord{}, errRecordWithoutID
	}
	if l, err := models.ParseSummaryLength(stringValue(fields["length"])); err == nil {
		rec.Length = l
	}
	if s, ok := fields["created_at"].(string); ok {
		var ts models.Timestamp
		if b, err := json.Marshal(s); err == nil && ts.UnmarshalJSON(b) == nil {
			rec.CreatedAt = ts
		}
	}
	return rec, nil
}

func stringValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

// summaryValue 는 LLM 응답이 그대로 저장된 summary 값을 Summary 로 맞춘다.
func summaryValue(v any) models.Summary {
	switch x := v.(type) {
	case string:
		return models.Summary{Main: x}
	case map[string]any:
		return models.Summary{
			Title:     stringValue(x["title"]),
			Main:      stringValue(x["main"]),
			KeyPoints: keyPointsValue(x["keyPoints"]),
		}
	default:
		return models.Summary{}
	}
}

func keyPointsValue(v any) []string {
	switch x := v.(type) {
	case string:
		if strings.TrimSpace(x) == "" {
			return nil
		}
		return []string{x}
	case []any:
		points := make([]string, 0, len(x))
		for _, p := range x {
			if s := stringValue(p); s != "" {
				points = append(points, s)
			}
		}
		return points
	default:
		return nil
	}
}
