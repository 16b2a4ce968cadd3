package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"universal-summarizer/dto"
	"universal-summarizer/services"
)

// ListHistoryHandler godoc
// @Summary      List saved summaries
// @Description  All saved summaries, newest first. Returns an empty list when history cannot be read.
// @Tags         history
// @Produce      json
// @Success      200  {array}  models.SummaryRecord
// @Router       /api/history [get]
func ListHistoryHandler(svc *services.HistoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.List(c.Request.Context()))
	}
}

// GetHistoryHandler godoc
// @Summary      Get saved summary
// @Tags         history
// @Param        id   path      string  true  "Summary ID"
// @Produce      json
// @Success      200  {object}  models.SummaryRecord
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /api/history/{id} [get]
func GetHistoryHandler(svc *services.HistoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

// DeleteHistoryHandler godoc
// @Summary      Delete saved summary
// @Tags         history
// @Param        id   path      string  true  "Summary ID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /api/history/{id} [delete]
func DeleteHistoryHandler(svc *services.HistoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Summary deleted successfully"})
	}
}
