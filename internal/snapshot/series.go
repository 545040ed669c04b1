package snapshot

import (
	"math"
	"strconv"

	"ashare-research-backend/internal/model"
	"ashare-research-backend/internal/tushare"
)

// 金额换算：元 -> 亿元
const yuanPerYi = 1e8

// CAGR 复合年增长率（%）。基数或年限不合法时返回 0。
func CAGR(start, end float64, years int) float64 {
	if start <= 0 || end <= 0 || years <= 0 {
		return 0
	}
	return (math.Pow(end/start, 1/float64(years)) - 1) * 100
}

// growthPct 同比增长率（%）。上期基数非正时返回 0，避免除零和负基数失真。
func growthPct(current, prev float64) float64 {
	if prev <= 0 {
		return 0
	}
	return (current - prev) / prev * 100
}

// buildFinancialSeries 把利润表与财务指标按报告期逐一配对，算出年度财务序列。
// 入参均为最新在前，返回结果从旧到新排列。没有有效报告年份的期次会被跳过。
func buildFinancialSeries(income, indicators []tushare.Row) []model.FinancialData {
	var series []model.FinancialData

	for i := 0; i < len(income) && i < len(indicators); i++ {
		inc := income[i]
		ind := indicators[i]

		year, _ := strconv.Atoi(truncate(inc.Str("end_date"), 4))
		if year == 0 {
			continue
		}

		revenue := inc.Float("revenue") / yuanPerYi
		netProfit := inc.Float("n_income") / yuanPerYi
		fcf := ind.Float("fcff") / yuanPerYi

		// 上一期仅用于计算增长率；序列最旧一期没有上期，增长率记 0
		prevRevenue := revenue
		prevNetProfit := netProfit
		prevFCF := fcf
		if i+1 < len(income) {
			prevRevenue = income[i+1].Float("revenue") / yuanPerYi
			prevNetProfit = income[i+1].Float("n_income") / yuanPerYi
		}
		if i+1 < len(indicators) {
			prevFCF = indicators[i+1].Float("fcff") / yuanPerYi
		}

		series = append(series, model.FinancialData{
			Year:            year,
			Revenue:         revenue,
			GrossProfit:     (inc.Float("revenue") - inc.Float("oper_cost")) / yuanPerYi,
			NetProfit:       netProfit,
			FreeCashFlow:    fcf,
			RevenueGrowth:   growthPct(revenue, prevRevenue),
			NetProfitGrowth: growthPct(netProfit, prevNetProfit),
			EPSGrowth:       ind.Float("eps_yoy"),
			FCFGrowth:       growthPct(fcf, prevFCF),
		})
	}

	// 反转为从旧到新
	for i, j := 0, len(series)-1; i < j; i, j = i+1, j-1 {
		series[i], series[j] = series[j], series[i]
	}
	return series
}

// buildLongTermGrowth 由年度序列推导长期 CAGR。
// 不足 3 期时返回 nil；5 年口径只在满 5 期时计算；10 年口径受数据覆盖限制恒为 0。
func buildLongTermGrowth(series []model.FinancialData) *model.LongTermGrowth {
	n := len(series)
	if n < 3 {
		return nil
	}

	growth := &model.LongTermGrowth{
		Revenue3Y:   CAGR(series[n-3].Revenue, series[n-1].Revenue, 3),
		NetProfit3Y: CAGR(series[n-3].NetProfit, series[n-1].NetProfit, 3),
	}
	if n >= 5 {
		growth.Revenue5Y = CAGR(series[0].Revenue, series[n-1].Revenue, n)
		growth.NetProfit5Y = CAGR(series[0].NetProfit, series[n-1].NetProfit, n)
	}
	return growth
}

// buildHighlights 由最新一期财务数据生成亮点卡片；无财务数据时返回空
func buildHighlights(series []model.FinancialData, quote model.Quote) []model.Highlight {
	if len(series) == 0 {
		return nil
	}
	latest := series[len(series)-1]

	netMargin := 0.0
	if latest.Revenue != 0 {
		netMargin = latest.NetProfit / latest.Revenue * 100
	}

	return []model.Highlight{
		{Label: "收入增速", Value: "YOY " + signedPct(latest.RevenueGrowth)},
		{Label: "净利率", Value: strconv.FormatFloat(netMargin, 'f', 1, 64) + "%"},
		{Label: "市盈率", Value: strconv.FormatFloat(quote.PE, 'f', 1, 64) + "x"},
		{Label: "市净率", Value: strconv.FormatFloat(quote.PB, 'f', 1, 64) + "x"},
	}
}

func signedPct(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	if v >= 0 {
		s = "+" + s
	}
	return s + "%"
}

func truncate(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
