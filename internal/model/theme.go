package model

import "time"

// ThemeIdea 投资主题
type ThemeIdea struct {
	Name    string   `json:"name"`
	Thesis  string   `json:"thesis"`
	Symbols []string `json:"symbols"`
}

// DiscoverPick 机会标的
type DiscoverPick struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// DiscoverIdea 选股思路及标的
type DiscoverIdea struct {
	Name  string         `json:"name"`
	Logic string         `json:"logic"`
	Picks []DiscoverPick `json:"picks"`
}

// DailyBriefing 每日要闻
type DailyBriefing struct {
	Date  time.Time  `json:"date"`
	Items []NewsItem `json:"items"`
}
