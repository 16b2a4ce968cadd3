package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"universal-summarizer/dto"
	"universal-summarizer/services"
)

// SummarizeHandler godoc
// @Summary      Summarize page or selection
// @Description  Summarize raw page text (or HTML) with Gemini and store it in history
// @Tags         summaries
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SummarizeRequestDTO  true  "Content to summarize"
// @Success      200   {object}  models.Summary
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /api/summarize [post]
func SummarizeHandler(svc *services.SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SummarizeRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		in := services.SummarizeInput{
			URL:         req.URL,
			Content:     req.Content,
			Length:      req.Length,
			IsSelection: req.IsSelection,
			SaveHistory: req.SaveHistory,
			ContentType: req.ContentType,
		}
		if req.Title != nil {
			in.Title = *req.Title
		}

		summary, err := svc.Summarize(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// FeedbackHandler godoc
// @Summary      Submit feedback
// @Description  Rate a summary from 1 to 5. Feedback is logged, not stored.
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body      dto.FeedbackRequestDTO  true  "Feedback"
// @Success      200   {object}  dto.MessageResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /api/feedback [post]
func FeedbackHandler(svc *services.FeedbackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.FeedbackRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		in := services.FeedbackInput{URL: req.URL, Rating: req.Rating}
		if req.Comment != nil {
			in.Comment = *req.Comment
		}
		if err := svc.Submit(c.Request.Context(), in); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Feedback received successfully"})
	}
}
