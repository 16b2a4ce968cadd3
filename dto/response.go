package dto

// ErrorResponseDTO 는 공통 에러 응답 형식이다.
// 브라우저 확장이 읽는 키에 맞춰 detail 로 내려준다.
type ErrorResponseDTO struct {
	Detail string `json:"detail" example:"Summary not found"`
}

// MessageResponseDTO 는 단순 메시지 응답 형식이다.
type MessageResponseDTO struct {
	Message string `json:"message" example:"Summary deleted successfully"`
}

// StatusResponseDTO 는 /api/status 응답이다.
type StatusResponseDTO struct {
	Status     string `json:"status" example:"online"`
	APIVersion string `json:"api_version" example:"1.0.0"`
	Message    string `json:"message" example:"API is operational and ready to process requests"`
}
