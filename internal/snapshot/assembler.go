package snapshot

import (
	"context"
	"errors"
	"fmt"

	"ashare-research-backend/internal/model"
	"ashare-research-backend/internal/tushare"
)

// ErrUnavailable 缺少必需数据（基本信息或行情），无法装配快照。
// 装配是全有或全无的：不会返回只填了一半的快照。
var ErrUnavailable = errors.New("无法获取股票数据")

// MarketData 装配快照所需的行情数据源
type MarketData interface {
	FullCompanyData(ctx context.Context, tsCode string) *tushare.CompanyData
}

// Valuer 估值模型。PotentialUpside 为带符号百分比，正数表示低估。
type Valuer interface {
	Valuation(quote model.Quote, daily tushare.Row) model.ValuationMetrics
}

// FixedRatioValuer 固定折价率估值：内在价值 = 现价 × Ratio。
// 这是占位模型，不是真实的 DCF 计算，替换实现时保持字段口径不变即可。
type FixedRatioValuer struct {
	Ratio float64
}

// Valuation 按固定折价率生成估值指标
func (v FixedRatioValuer) Valuation(quote model.Quote, daily tushare.Row) model.ValuationMetrics {
	intrinsic := quote.Price * v.Ratio
	upside := 0.0
	if quote.Price > 0 {
		upside = (intrinsic - quote.Price) / quote.Price * 100
	}
	m := model.ValuationMetrics{
		CurrentPrice:      quote.Price,
		DCFIntrinsicValue: intrinsic,
		PotentialUpside:   upside,
		PE:                quote.PE,
		PB:                quote.PB,
		PS:                daily.Float("ps"),
		DividendYield:     daily.Float("dv_ratio"),
	}
	if totalShare := daily.Float("total_share"); totalShare > 0 {
		m.YieldRate = quote.MarketCap * 10000 / totalShare
	}
	return m
}

// Assembler 把行情网关的原始数据装配为公司快照
type Assembler struct {
	market MarketData
	valuer Valuer
}

// NewAssembler 创建装配器，valuer 为 nil 时使用固定折价率 0.9 的占位估值
func NewAssembler(market MarketData, valuer Valuer) *Assembler {
	if valuer == nil {
		valuer = FixedRatioValuer{Ratio: 0.9}
	}
	return &Assembler{market: market, valuer: valuer}
}

// Assemble 装配一家公司的快照。基本信息与行情缺一不可，缺失时返回 ErrUnavailable。
func (a *Assembler) Assemble(ctx context.Context, symbol string) (*model.CompanySnapshot, error) {
	tsCode := tushare.ConvertToTsCode(symbol)
	data := a.market.FullCompanyData(ctx, tsCode)
	if data == nil || data.StockBasic == nil || data.LatestQuote == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, symbol)
	}

	profile := buildProfile(symbol, data.StockBasic)

	quote := model.Quote{
		Symbol:        symbol,
		Name:          profile.Name,
		Price:         data.LatestQuote.Float("close"),
		ChangePercent: data.LatestQuote.Float("pct_chg"),
		PE:            data.DailyBasic.Float("pe"),
		PB:            data.DailyBasic.Float("pb"),
		// total_mv 单位万元，换算为万亿元
		MarketCap: data.DailyBasic.Float("total_mv") / 1e6,
	}

	series := buildFinancialSeries(data.IncomeStatements, data.FinancialIndicators)
	valuation := a.valuer.Valuation(quote, data.DailyBasic)

	return &model.CompanySnapshot{
		Profile:        profile,
		Quote:          quote,
		Highlights:     buildHighlights(series, quote),
		News:           []model.NewsItem{}, // 新闻需单独获取
		FinancialData:  series,
		Valuation:      &valuation,
		LongTermGrowth: buildLongTermGrowth(series),
	}, nil
}

func buildProfile(symbol string, basic tushare.Row) model.CompanyProfile {
	profile := model.CompanyProfile{
		Name:     basic.Str("name"),
		Symbol:   symbol,
		Sector:   basic.Str("industry"),
		Business: basic.Str("area"),
		Country:  "中国",
	}
	if profile.Name == "" {
		profile.Name = "未知公司"
	}
	if profile.Sector == "" {
		profile.Sector = "未知行业"
	}
	if profile.Business == "" {
		profile.Business = "中国"
	}
	// list_date 格式 YYYYMMDD
	if d := basic.Str("list_date"); len(d) == 8 {
		profile.IPODate = d[:4] + "-" + d[4:6] + "-" + d[6:8]
	}
	return profile
}
