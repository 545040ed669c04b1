// Package fallback 提供静态兜底数据：未配置实时数据源或实时链路失败时，
// 页面仍能以确定性的演示数据渲染。
package fallback

import (
	"time"

	"ashare-research-backend/internal/model"
)

// 未知代码统一回退到的演示标的
const defaultSymbol = "600519"

var quotes = map[string]model.Quote{
	"600519": {Symbol: "600519", Name: "贵州茅台", Price: 1600, ChangePercent: 1.2, PE: 26.5, PB: 7.1, MarketCap: 2.02},
	"300750": {Symbol: "300750", Name: "宁德时代", Price: 185.4, ChangePercent: -0.8, PE: 24.1, PB: 4.3, MarketCap: 0.86},
	"601318": {Symbol: "601318", Name: "中国平安", Price: 46.3, ChangePercent: 0.5, PE: 8.7, PB: 1.1, MarketCap: 0.84},
	"000858": {Symbol: "000858", Name: "五粮液", Price: 170.1, ChangePercent: 0.3, PE: 18.5, PB: 4.5, MarketCap: 0.66},
	"600036": {Symbol: "600036", Name: "招商银行", Price: 34.8, ChangePercent: 0.1, PE: 5.8, PB: 0.9, MarketCap: 0.88},
}

var news = []model.NewsItem{
	{
		Title:       "AI 服务器订单超预期，龙头厂商上调全年指引",
		Source:      "财联社",
		PublishedAt: "今天 08:30",
		Summary:     "公司披露 2025 年 AI 服务器订单同比+60%，受益于海外云厂商及国内大模型算力扩张。",
		Related:     []string{"603160", "688041"},
	},
	{
		Title:       "白酒行业春节动销平稳，高端价盘坚挺",
		Source:      "券商晨报",
		PublishedAt: "今天 07:45",
		Summary:     "渠道反馈高端白酒批价稳中有升，动销恢复常态。中高端梯队恢复仍需时间。",
		Related:     []string{"600519", "000858"},
	},
	{
		Title:       "新能源车 1 月销量延续高增，电池装机量同比+35%",
		Source:      "乘联会",
		PublishedAt: "昨天 21:00",
		Summary:     "龙头车企新品放量，海外出口贡献增量；电池龙头受益高镍产品放量与成本下行。",
		Related:     []string{"300750", "002594"},
	},
}

var highlights = []model.Highlight{
	{Label: "收入增速", Value: "YOY +12%"},
	{Label: "毛利率", Value: "76%"},
	{Label: "ROE(TTM)", Value: "27%"},
	{Label: "经营现金流", Value: "连续 6 年为正"},
}

// 固定的 2021-2025 年度财务序列，从旧到新
var financials = []model.FinancialData{
	{Year: 2021, Revenue: 1094.6, GrossProfit: 934.2, NetProfit: 524.6, FreeCashFlow: 602.3, RevenueGrowth: 11.2, NetProfitGrowth: 12.5, EPSGrowth: 12.5, FCFGrowth: 15.3},
	{Year: 2022, Revenue: 1275.5, GrossProfit: 1102.8, NetProfit: 627.2, FreeCashFlow: 712.5, RevenueGrowth: 16.5, NetProfitGrowth: 19.6, EPSGrowth: 19.6, FCFGrowth: 18.3},
	{Year: 2023, Revenue: 1506.2, GrossProfit: 1285.3, NetProfit: 747.8, FreeCashFlow: 845.2, RevenueGrowth: 18.1, NetProfitGrowth: 19.2, EPSGrowth: 19.2, FCFGrowth: 18.6},
	{Year: 2024, Revenue: 1689.4, GrossProfit: 1423.6, NetProfit: 823.5, FreeCashFlow: 952.1, RevenueGrowth: 12.2, NetProfitGrowth: 10.1, EPSGrowth: 10.1, FCFGrowth: 12.7},
	{Year: 2025, Revenue: 1876.3, GrossProfit: 1589.2, NetProfit: 912.4, FreeCashFlow: 1089.5, RevenueGrowth: 11.1, NetProfitGrowth: 10.8, EPSGrowth: 10.8, FCFGrowth: 14.4},
}

var themes = []model.ThemeIdea{
	{Name: "AI 服务器/算力", Thesis: "AI 算力和训练需求高增长，服务器与液冷配套受益。", Symbols: []string{"603160", "688041", "300454"}},
	{Name: "高端白酒", Thesis: "高端价盘稳固，需求恢复常态，中长期现金流稳健。", Symbols: []string{"600519", "000858", "603369"}},
	{Name: "新能源车 & 电池", Thesis: "销量高增 + 出口放量，电池技术迭代带来成本下降。", Symbols: []string{"300750", "002594", "002460"}},
}

var discoverIdeas = []model.DiscoverIdea{
	{
		Name:  "高增长低估值",
		Logic: "过去三年收入复合增速 >20%，PE(TTM) <20x。",
		Picks: []model.DiscoverPick{
			{Symbol: "300750", Name: "宁德时代", Reason: "新能源车渗透+储能双驱动"},
			{Symbol: "002594", Name: "比亚迪", Reason: "车型矩阵丰富，出口放量"},
		},
	},
	{
		Name:  "高分红+稳现金流",
		Logic: "自由现金流稳定为正，股息率 5%+。",
		Picks: []model.DiscoverPick{
			{Symbol: "601318", Name: "中国平安", Reason: "寿险修复 + 分红稳定"},
			{Symbol: "600036", Name: "招商银行", Reason: "零售优势，拨备充足"},
		},
	},
	{
		Name:  "行业修复题材",
		Logic: "周期底部向上，供需改善带来业绩弹性。",
		Picks: []model.DiscoverPick{
			{Symbol: "000858", Name: "五粮液", Reason: "高端白酒动销回暖"},
			{Symbol: "603160", Name: "汇顶科技", Reason: "安卓高端机换机周期"},
		},
	},
}

// Provider 只读兜底数据源，启动时注入，可与实时数据源互换
type Provider struct{}

// NewProvider 创建兜底数据源
func NewProvider() *Provider {
	return &Provider{}
}

// Quote 按代码取行情，未知代码返回默认标的而不是报错（演示稳定性优先）
func (p *Provider) Quote(symbol string) model.Quote {
	if q, ok := quotes[symbol]; ok {
		return q
	}
	return quotes[defaultSymbol]
}

// WatchlistQuotes 自选股行情
func (p *Provider) WatchlistQuotes(symbols []string) []model.Quote {
	result := make([]model.Quote, 0, len(symbols))
	for _, s := range symbols {
		result = append(result, p.Quote(s))
	}
	return result
}

// DailyBriefing 每日要闻
func (p *Provider) DailyBriefing() model.DailyBriefing {
	return model.DailyBriefing{Date: time.Now(), Items: news}
}

// ThemeIdeas 投资主题列表
func (p *Provider) ThemeIdeas() []model.ThemeIdea {
	return themes
}

// DiscoverIdeas 选股思路列表
func (p *Provider) DiscoverIdeas() []model.DiscoverIdea {
	return discoverIdeas
}

// CompanySnapshot 公司快照（演示数据）
func (p *Provider) CompanySnapshot(symbol string) *model.CompanySnapshot {
	quote := p.Quote(symbol)
	employees := 48000

	valuation := model.ValuationMetrics{
		CurrentPrice:      quote.Price,
		DCFIntrinsicValue: quote.Price * 0.85, // 模拟 DCF 值
		PotentialUpside:   -15.2,
		PE:                quote.PE,
		PB:                quote.PB,
		PS:                8.5,
		EVEbitda:          12.3,
		DividendYield:     2.1,
		YieldRate:         6.27,
	}

	return &model.CompanySnapshot{
		Profile: model.CompanyProfile{
			Name:      quote.Name,
			Symbol:    symbol,
			Sector:    "示例行业",
			Business:  "主营业务描述占位，后续可由公告/研报/官网抓取生成。",
			Employees: &employees,
			IPODate:   "2001-08-27",
			Country:   "中国",
		},
		Quote:         quote,
		Highlights:    highlights,
		News:          p.relatedNews(symbol, 3),
		FinancialData: financials,
		Valuation:     &valuation,
		LongTermGrowth: &model.LongTermGrowth{
			Revenue3Y: 15.3, Revenue5Y: 11.4, Revenue10Y: 18.2,
			NetProfit3Y: 13.9, NetProfit5Y: 14.6, NetProfit10Y: 16.8,
		},
	}
}

// relatedNews 过滤与代码相关的新闻，最多 limit 条
func (p *Provider) relatedNews(symbol string, limit int) []model.NewsItem {
	result := []model.NewsItem{}
	for _, n := range news {
		for _, r := range n.Related {
			if r == symbol {
				result = append(result, n)
				break
			}
		}
		if len(result) >= limit {
			break
		}
	}
	return result
}
