package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sentiment/api"
	"sentiment/config"
	_ "sentiment/docs"
	"sentiment/middleware"
	"sentiment/service"
	"sentiment/storage"
	"sentiment/web"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, store *storage.HistoryStore, detector *service.LanguageDetector, classifier *service.SentimentClient) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// 嵌入的静态文件 - 前端入口页面
	staticFS, _ := fs.Sub(web.StaticFS, ".")
	r.GET("/", func(c *gin.Context) {
		content, err := fs.ReadFile(staticFS, "index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "加载页面失败")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	})

	analyzeHandler := api.NewAnalyzeHandler(store, detector, classifier, cfg.Upload.MaxSizeMB*1024*1024)
	historyHandler := api.NewHistoryHandler(store)

	// 分析接口（外部模型调用开销大，可选限流）
	analyze := r.Group("/analyze")
	if cfg.RateLimit.Enabled {
		analyze.Use(middleware.AnalyzeRateLimit(
			cfg.RateLimit.MaxRequests,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		))
	}
	analyze.POST("", analyzeHandler.Analyze)

	// 历史接口
	r.GET("/history", historyHandler.GetHistory)
	r.DELETE("/clear-history", historyHandler.ClearHistory)

	// 导出接口
	export := r.Group("/history/export")
	{
		export.GET("/csv", historyHandler.ExportCSV)
		export.GET("/excel", historyHandler.ExportExcel)
	}

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
