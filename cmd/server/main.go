package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"ashare-research-backend/internal/config"
	"ashare-research-backend/internal/fallback"
	"ashare-research-backend/internal/handler"
	"ashare-research-backend/internal/llm"
	"ashare-research-backend/internal/logger"
	"ashare-research-backend/internal/middleware"
	"ashare-research-backend/internal/service"
	"ashare-research-backend/internal/snapshot"
	"ashare-research-backend/internal/tushare"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Logging); err != nil {
		log.Fatal().Err(err).Msg("初始化日志失败")
	}

	// 未配置 Tushare token 时不挂实时数据源，全部走兜底数据
	var (
		live   service.SnapshotSource
		quotes service.QuoteSource
	)
	market := tushare.NewClient(cfg.Tushare.Token, cfg.Tushare.BaseURL)
	if market.Configured() {
		live = snapshot.NewAssembler(market, nil)
		quotes = market
	} else {
		log.Warn().Msg("Tushare token 未配置，使用兜底数据")
	}

	commentator := llm.NewClient(cfg.OpenRouter.APIKey, cfg.OpenRouter.BaseURL, cfg.OpenRouter.Model)
	if !commentator.Configured() {
		log.Warn().Msg("OpenRouter API Key 未配置，AI 解读返回占位文案")
	}

	svc := service.NewResearch(live, quotes, fallback.NewProvider(), commentator)

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging())
	r.Use(middleware.Recovery())

	// 配置 CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	handler.New(svc).Register(r.Group("/api"))

	log.Info().Str("port", cfg.Server.Port).Msg("服务启动")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("启动服务失败")
	}
}
