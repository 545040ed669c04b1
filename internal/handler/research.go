package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ashare-research-backend/internal/service"
)

// 首页默认自选股
var defaultWatchlist = []string{"600519", "300750", "601318", "000858", "600036"}

// Handler 投研接口
type Handler struct {
	svc *service.Research
}

// New 创建 Handler
func New(svc *service.Research) *Handler {
	return &Handler{svc: svc}
}

// Register 注册 /api 路由
func (h *Handler) Register(api gin.IRouter) {
	api.GET("/analyze/:symbol", h.Analyze)
	api.GET("/company/:symbol", h.Company)
	api.GET("/watchlist", h.Watchlist)
	api.GET("/briefing", h.Briefing)
	api.GET("/themes", h.Themes)
	api.GET("/discover", h.Discover)
	api.POST("/news/impact", h.NewsImpact)
	api.POST("/themes/thesis", h.ThemeThesis)
}

// Analyze 生成公司 AI 分析
func (h *Handler) Analyze(c *gin.Context) {
	symbol := c.Param("symbol")

	analysis, err := h.svc.AnalyzeCompany(c.Request.Context(), symbol)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "生成分析失败",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"analysis": analysis,
	})
}

// Company 获取公司快照
func (h *Handler) Company(c *gin.Context) {
	symbol := c.Param("symbol")

	snap, err := h.svc.CompanySnapshot(c.Request.Context(), symbol)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "获取公司数据失败",
		})
		return
	}

	c.JSON(http.StatusOK, snap)
}

// Watchlist 自选股行情，symbols 为逗号分隔的代码列表，缺省用默认自选股
func (h *Handler) Watchlist(c *gin.Context) {
	symbols := defaultWatchlist
	if raw := c.Query("symbols"); raw != "" {
		symbols = strings.Split(raw, ",")
	}

	c.JSON(http.StatusOK, gin.H{
		"data": h.svc.WatchlistQuotes(c.Request.Context(), symbols),
	})
}

// Briefing 每日要闻
func (h *Handler) Briefing(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.DailyBriefing())
}

// Themes 投资主题列表
func (h *Handler) Themes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.svc.ThemeIdeas()})
}

// Discover 选股思路列表
func (h *Handler) Discover(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.svc.DiscoverIdeas()})
}

type newsImpactRequest struct {
	Company string `json:"company" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Summary string `json:"summary"`
}

// NewsImpact 解读新闻对公司的影响
func (h *Handler) NewsImpact(c *gin.Context) {
	var req newsImpactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "参数错误",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"analysis": h.svc.AnalyzeNewsImpact(c.Request.Context(), req.Company, req.Title, req.Summary),
	})
}

type themeThesisRequest struct {
	Name    string   `json:"name" binding:"required"`
	Symbols []string `json:"symbols" binding:"required"`
}

// ThemeThesis 生成投资主题逻辑说明
func (h *Handler) ThemeThesis(c *gin.Context) {
	var req themeThesisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "参数错误",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"thesis":  h.svc.ThemeThesis(c.Request.Context(), req.Name, req.Symbols),
	})
}
