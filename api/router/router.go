package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"universal-summarizer/api/handlers"
	"universal-summarizer/api/middleware"
	_ "universal-summarizer/docs"
	"universal-summarizer/metrics"
	"universal-summarizer/services"
)

// Services 는 라우터가 사용하는 서비스 묶음이다.
type Services struct {
	Summary  *services.SummaryService
	History  *services.HistoryService
	Feedback *services.FeedbackService
	Metrics  *metrics.Metrics
}

func New(svcs Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace(svcs.Metrics))

	r.GET("/", handlers.RootHandler())

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if svcs.Metrics != nil {
		r.GET("/metrics", gin.WrapH(svcs.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		api.GET("/status", handlers.StatusHandler())
		api.POST("/summarize", handlers.SummarizeHandler(svcs.Summary))
		api.POST("/feedback", handlers.FeedbackHandler(svcs.Feedback))

		api.GET("/history", handlers.ListHistoryHandler(svcs.History))
		api.GET("/history/:id", handlers.GetHistoryHandler(svcs.History))
		api.DELETE("/history/:id", handlers.DeleteHistoryHandler(svcs.History))
	}

	return r
}

// WithCORS 는 브라우저 확장에서 호출할 수 있도록 CORS 헤더를 붙인다.
// "*" 는 요청 Origin 을 그대로 돌려준다. credentials 와 함께 "*" 를 보내면 브라우저가 거부한다.
func WithCORS(h http.Handler, allowedOrigins []string) http.Handler {
	opts := cors.Options{
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
	}
	if allowsAnyOrigin(allowedOrigins) {
		opts.AllowOriginFunc = func(string) bool { return true }
	} else {
		opts.AllowedOrigins = allowedOrigins
	}
	return cors.New(opts).Handler(h)
}

func allowsAnyOrigin(origins []string) bool {
	if len(origins) == 0 {
		return true
	}
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
