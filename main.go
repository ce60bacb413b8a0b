package main

import (
	"flag"
	"log"
	"net/http"
	"strings"

	"github.com/joho/godotenv"

	"sentiment/config"
	"sentiment/router"
	"sentiment/service"
	"sentiment/storage"
)

// @title 情感分析系统 API
// @version 1.0
// @description 基于大语言模型的文本情感分析服务，支持文本与 txt/pdf/docx 文档上传，保留最近 100 条分析历史
// @host localhost:5001
// @BasePath /

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 5001 或 :5001")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("情感分析系统 v1.0.0")
		return
	}

	// 加载 .env（可选，不存在时忽略）
	_ = godotenv.Load()

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("命令行指定端口: %s", port)
	}

	// 外部分类服务的凭证缺失时直接终止启动
	if cfg.OpenAI.APIKey == "" {
		log.Fatal("缺少 API 凭证: 请设置 OPENAI_API_KEY 环境变量或 openai.api_key 配置")
	}

	// 打印配置信息
	config.PrintConfig()

	// 组装依赖：历史存储、语言检测器、情感分类客户端
	store := storage.NewHistoryStore(cfg.History.File)
	detector := service.NewLanguageDetector()
	classifier := service.NewSentimentClient(
		&http.Client{},
		cfg.OpenAI.BaseURL,
		cfg.OpenAI.APIKey,
		cfg.OpenAI.Model,
		cfg.OpenAI.Timeout,
	)

	// 设置路由
	r := router.SetupRouter(cfg, store, detector, classifier)

	// 启动服务器
	log.Printf("==========================================")
	log.Printf("  📊 情感分析系统已启动")
	log.Printf("==========================================")
	log.Printf("  前端页面: http://localhost%s/", cfg.Server.Port)
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  分析接口: http://localhost%s/analyze", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}
