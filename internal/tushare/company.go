package tushare

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// 每类财务序列最多保留的报告期数
const maxPeriods = 5

// CompanyData 一家公司的全量数据（行情+基本面+财务）。
// 任意字段都可能为 nil，表示该类数据暂不可得。
type CompanyData struct {
	StockBasic          Row
	LatestQuote         Row
	DailyBasic          Row
	IncomeStatements    []Row
	FinancialIndicators []Row
}

// first 软失败取首行：出错或无数据时返回 nil
func (c *Client) first(ctx context.Context, apiName string, params map[string]string, fields []string) Row {
	rows, err := c.Call(ctx, apiName, params, fields)
	if err != nil {
		log.Warn().Err(err).Str("api", apiName).Msg("Tushare 调用失败，按数据缺失处理")
		return nil
	}
	if len(rows) == 0 {
		return nil
	}
	return rows[0]
}

// series 软失败取序列：出错时返回 nil
func (c *Client) series(ctx context.Context, apiName string, params map[string]string) []Row {
	rows, err := c.Call(ctx, apiName, params, nil)
	if err != nil {
		log.Warn().Err(err).Str("api", apiName).Msg("Tushare 调用失败，按数据缺失处理")
		return nil
	}
	return rows
}

// StockBasic 股票基本信息
func (c *Client) StockBasic(ctx context.Context, tsCode string) Row {
	return c.first(ctx, "stock_basic", map[string]string{"ts_code": tsCode}, nil)
}

// LatestQuote 最新日线行情（取返回的第一条）
func (c *Client) LatestQuote(ctx context.Context, tsCode string) Row {
	return c.first(ctx, "daily", map[string]string{"ts_code": tsCode},
		[]string{"ts_code", "trade_date", "open", "high", "low", "close", "pre_close", "change", "pct_chg", "vol", "amount"})
}

// DailyBasic 每日指标（市盈率、市净率等）
func (c *Client) DailyBasic(ctx context.Context, tsCode string) Row {
	return c.first(ctx, "daily_basic", map[string]string{"ts_code": tsCode}, nil)
}

// IncomeStatements 利润表序列（合并报表，最新在前）
func (c *Client) IncomeStatements(ctx context.Context, tsCode string) []Row {
	return c.series(ctx, "income", map[string]string{"ts_code": tsCode, "report_type": "1"})
}

// FinancialIndicators 财务指标序列（最新在前）
func (c *Client) FinancialIndicators(ctx context.Context, tsCode string) []Row {
	return c.series(ctx, "fina_indicator", map[string]string{"ts_code": tsCode})
}

// FullCompanyData 并发拉取五类数据后汇总。
// 各分支互不依赖，单个分支失败只会让对应字段为 nil，不影响其他分支。
func (c *Client) FullCompanyData(ctx context.Context, tsCode string) *CompanyData {
	data := &CompanyData{}
	var wg sync.WaitGroup
	wg.Add(5)

	go func() {
		defer wg.Done()
		data.StockBasic = c.StockBasic(ctx, tsCode)
	}()
	go func() {
		defer wg.Done()
		data.LatestQuote = c.LatestQuote(ctx, tsCode)
	}()
	go func() {
		defer wg.Done()
		data.DailyBasic = c.DailyBasic(ctx, tsCode)
	}()
	go func() {
		defer wg.Done()
		data.IncomeStatements = c.IncomeStatements(ctx, tsCode)
	}()
	go func() {
		defer wg.Done()
		data.FinancialIndicators = c.FinancialIndicators(ctx, tsCode)
	}()

	wg.Wait()

	// 只保留最近几期
	if len(data.IncomeStatements) > maxPeriods {
		data.IncomeStatements = data.IncomeStatements[:maxPeriods]
	}
	if len(data.FinancialIndicators) > maxPeriods {
		data.FinancialIndicators = data.FinancialIndicators[:maxPeriods]
	}
	return data
}
