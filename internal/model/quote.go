package model

// Quote 个股行情快照
type Quote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"changePercent"`
	PE            float64 `json:"pe"`
	PB            float64 `json:"pb"`
	MarketCap     float64 `json:"marketCap"` // 总市值（万亿元）
}

// NewsItem 新闻/公告条目
type NewsItem struct {
	Title       string   `json:"title"`
	Source      string   `json:"source"`
	PublishedAt string   `json:"publishedAt"`
	Summary     string   `json:"summary"`
	Related     []string `json:"related"` // 相关股票代码
}
