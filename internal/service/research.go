package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"ashare-research-backend/internal/fallback"
	"ashare-research-backend/internal/llm"
	"ashare-research-backend/internal/model"
	"ashare-research-backend/internal/snapshot"
	"ashare-research-backend/internal/tushare"
)

// AnalysisUnavailableText AI 解读失败时展示给用户的固定文案
const AnalysisUnavailableText = "AI 分析暂时不可用，请稍后再试。"

// SnapshotSource 实时快照装配能力
type SnapshotSource interface {
	Assemble(ctx context.Context, symbol string) (*model.CompanySnapshot, error)
}

// QuoteSource 实时行情查询能力
type QuoteSource interface {
	LatestQuote(ctx context.Context, tsCode string) tushare.Row
	DailyBasic(ctx context.Context, tsCode string) tushare.Row
}

// Commentator AI 解读能力
type Commentator interface {
	Chat(ctx context.Context, messages []llm.Message, opts llm.Options) (string, error)
}

// Research 投研服务：聚合公司快照与 AI 解读。
// live/quotes 为 nil 表示未配置实时数据源，全部走兜底数据。
type Research struct {
	live     SnapshotSource
	quotes   QuoteSource
	fallback *fallback.Provider
	llm      Commentator
}

// NewResearch 创建投研服务
func NewResearch(live SnapshotSource, quotes QuoteSource, fb *fallback.Provider, commentator Commentator) *Research {
	return &Research{live: live, quotes: quotes, fallback: fb, llm: commentator}
}

// CompanySnapshot 获取公司快照：优先实时装配，失败时退回兜底数据
func (s *Research) CompanySnapshot(ctx context.Context, symbol string) (*model.CompanySnapshot, error) {
	if s.live != nil {
		snap, err := s.live.Assemble(ctx, symbol)
		if err == nil {
			return snap, nil
		}
		log.Warn().Err(err).Str("symbol", symbol).Msg("实时快照装配失败，改用兜底数据")
		if s.fallback == nil {
			return nil, err
		}
	}
	if s.fallback == nil {
		return nil, fmt.Errorf("%w: %s", snapshot.ErrUnavailable, symbol)
	}
	return s.fallback.CompanySnapshot(symbol), nil
}

// AnalyzeCompany 生成公司投资分析。解读失败时返回固定兜底文案，不透传底层错误。
func (s *Research) AnalyzeCompany(ctx context.Context, symbol string) (string, error) {
	snap, err := s.CompanySnapshot(ctx, symbol)
	if err != nil {
		return "", err
	}

	text, err := s.llm.Chat(ctx, llm.CompanyAnalysisMessages(snap), llm.CompanyAnalysisOptions)
	if err != nil {
		log.Warn().Err(err).Str("symbol", symbol).Msg("生成 AI 分析失败")
		return AnalysisUnavailableText, nil
	}
	return text, nil
}

// AnalyzeNewsImpact 解读单条新闻对公司的影响
func (s *Research) AnalyzeNewsImpact(ctx context.Context, companyName, title, summary string) string {
	text, err := s.llm.Chat(ctx, llm.NewsImpactMessages(companyName, title, summary), llm.NewsImpactOptions)
	if err != nil {
		log.Warn().Err(err).Str("company", companyName).Msg("新闻解读失败")
		return AnalysisUnavailableText
	}
	return text
}

// ThemeThesis 生成投资主题的逻辑说明
func (s *Research) ThemeThesis(ctx context.Context, name string, companies []string) string {
	text, err := s.llm.Chat(ctx, llm.ThemeThesisMessages(name, companies), llm.ThemeThesisOptions)
	if err != nil {
		log.Warn().Err(err).Str("theme", name).Msg("主题逻辑生成失败")
		return AnalysisUnavailableText
	}
	return text
}

// WatchlistQuotes 自选股行情：配置了实时数据源时逐只并发拉取，否则用兜底行情。
// 单只拉取失败退回该标的的兜底数据，不影响其他标的。
func (s *Research) WatchlistQuotes(ctx context.Context, symbols []string) []model.Quote {
	if s.quotes == nil {
		return s.fallback.WatchlistQuotes(symbols)
	}

	result := make([]model.Quote, len(symbols))
	var wg sync.WaitGroup
	for i, symbol := range symbols {
		wg.Add(1)
		go func(i int, symbol string) {
			defer wg.Done()
			result[i] = s.liveQuote(ctx, symbol)
		}(i, symbol)
	}
	wg.Wait()
	return result
}

func (s *Research) liveQuote(ctx context.Context, symbol string) model.Quote {
	tsCode := tushare.ConvertToTsCode(symbol)
	latest := s.quotes.LatestQuote(ctx, tsCode)
	if latest == nil {
		log.Warn().Str("symbol", symbol).Msg("实时行情获取失败，改用兜底行情")
		return s.fallback.Quote(symbol)
	}
	daily := s.quotes.DailyBasic(ctx, tsCode)

	// 实时行情接口不带名称，优先借用兜底表里的
	name := "未知"
	if fq := s.fallback.Quote(symbol); fq.Symbol == symbol {
		name = fq.Name
	}

	return model.Quote{
		Symbol:        symbol,
		Name:          name,
		Price:         latest.Float("close"),
		ChangePercent: latest.Float("pct_chg"),
		PE:            daily.Float("pe"),
		PB:            daily.Float("pb"),
		MarketCap:     daily.Float("total_mv") / 1e6,
	}
}

// DailyBriefing 每日要闻
func (s *Research) DailyBriefing() model.DailyBriefing {
	return s.fallback.DailyBriefing()
}

// ThemeIdeas 投资主题列表
func (s *Research) ThemeIdeas() []model.ThemeIdea {
	return s.fallback.ThemeIdeas()
}

// DiscoverIdeas 选股思路列表
func (s *Research) DiscoverIdeas() []model.DiscoverIdea {
	return s.fallback.DiscoverIdeas()
}
