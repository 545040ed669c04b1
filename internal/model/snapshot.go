package model

// CompanyProfile 公司概况
type CompanyProfile struct {
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	Sector    string `json:"sector"`
	Business  string `json:"business"`
	Employees *int   `json:"employees,omitempty"`
	IPODate   string `json:"ipoDate,omitempty"`
	Country   string `json:"country,omitempty"`
}

// FinancialData 单个会计年度的财务数据，金额单位亿元，增长率单位 %
type FinancialData struct {
	Year            int     `json:"year"`
	Revenue         float64 `json:"revenue"`
	GrossProfit     float64 `json:"grossProfit"`
	NetProfit       float64 `json:"netProfit"`
	FreeCashFlow    float64 `json:"freeCashFlow"`
	RevenueGrowth   float64 `json:"revenueGrowth"`
	NetProfitGrowth float64 `json:"netProfitGrowth"`
	EPSGrowth       float64 `json:"epsGrowth"`
	FCFGrowth       float64 `json:"fcfGrowth"`
}

// ValuationMetrics 估值指标快照
type ValuationMetrics struct {
	CurrentPrice      float64 `json:"currentPrice"`
	DCFIntrinsicValue float64 `json:"dcfIntrinsicValue"` // 占位估算值，非真实 DCF
	PotentialUpside   float64 `json:"potentialUpside"`   // %，正数表示低估
	PE                float64 `json:"pe"`
	PB                float64 `json:"pb"`
	PS                float64 `json:"ps"`
	EVEbitda          float64 `json:"evEbitda"`
	DividendYield     float64 `json:"dividendYield"`
	YieldRate         float64 `json:"yieldRate"`
}

// LongTermGrowth 长期复合增长率（CAGR，单位 %）
type LongTermGrowth struct {
	Revenue3Y    float64 `json:"revenue3Y"`
	Revenue5Y    float64 `json:"revenue5Y"`
	Revenue10Y   float64 `json:"revenue10Y"`
	NetProfit3Y  float64 `json:"netProfit3Y"`
	NetProfit5Y  float64 `json:"netProfit5Y"`
	NetProfit10Y float64 `json:"netProfit10Y"`
}

// Highlight 亮点指标卡片
type Highlight struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CompanySnapshot 公司聚合视图，每次请求重新装配，装配完成后不再修改
type CompanySnapshot struct {
	Profile        CompanyProfile    `json:"profile"`
	Quote          Quote             `json:"quote"`
	Highlights     []Highlight       `json:"highlights"`
	News           []NewsItem        `json:"news"`
	FinancialData  []FinancialData   `json:"financialData,omitempty"` // 年度数据，从旧到新排列
	Valuation      *ValuationMetrics `json:"valuation,omitempty"`
	LongTermGrowth *LongTermGrowth   `json:"longTermGrowth,omitempty"`
}
