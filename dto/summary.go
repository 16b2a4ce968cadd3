package dto

// SummarizeRequestDTO 는 POST /api/summarize 요청 본문이다.
type SummarizeRequestDTO struct {
	URL         string  `json:"url" example:"https://go.dev/blog/intro"`
	Title       *string `json:"title,omitempty" example:"Go blog"`
	Content     string  `json:"content"`
	Length      string  `json:"length,omitempty" enums:"short,medium,long" example:"medium"`
	IsSelection bool    `json:"isSelection,omitempty"`
	SaveHistory *bool   `json:"save_history,omitempty"`
	// ContentType 이 html 이면 서버에서 본문 텍스트를 추출한다.
	ContentType string `json:"content_type,omitempty" enums:"text,html" example:"text"`
}

// FeedbackRequestDTO 는 POST /api/feedback 요청 본문이다.
type FeedbackRequestDTO struct {
	URL     string  `json:"url"`
	Rating  int     `json:"rating" minimum:"1" maximum:"5"`
	Comment *string `json:"comment,omitempty"`
}
