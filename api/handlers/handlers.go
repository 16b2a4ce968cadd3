package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"universal-summarizer/dto"
	"universal-summarizer/repositories"
	"universal-summarizer/services"
)

const APIVersion = "1.0.0"

// RootHandler godoc
// @Summary      Service banner
// @Tags         status
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Router       / [get]
func RootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Universal Summarizer API is running"})
	}
}

// StatusHandler godoc
// @Summary      API status
// @Description  Used by the browser extension to verify connectivity
// @Tags         status
// @Produce      json
// @Success      200  {object}  dto.StatusResponseDTO
// @Router       /api/status [get]
func StatusHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.StatusResponseDTO{
			Status:     "online",
			APIVersion: APIVersion,
			Message:    "API is operational and ready to process requests",
		})
	}
}

// respondError 는 서비스 에러를 HTTP 상태 코드로 변환한다.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Detail: verr.Message})
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Detail: "Summary not found"})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Detail: err.Error()})
	}
}

func respondBindError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Detail: "Invalid request body: " + err.Error()})
}
