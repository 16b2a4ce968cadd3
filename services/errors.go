package services

import "fmt"

// ValidationError 는 요청 값이 잘못되어 외부 호출 전에 거절된 경우다. HTTP 400 으로 응답한다.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
