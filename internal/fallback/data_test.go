package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanySnapshotDemo(t *testing.T) {
	p := NewProvider()
	snap := p.CompanySnapshot("600519")

	assert.Equal(t, "贵州茅台", snap.Profile.Name)
	assert.Equal(t, 1600.0, snap.Quote.Price)
	assert.Equal(t, 26.5, snap.Quote.PE)

	// 固定 5 年序列，从旧到新 2021 -> 2025
	require.Len(t, snap.FinancialData, 5)
	for i, year := range []int{2021, 2022, 2023, 2024, 2025} {
		assert.Equal(t, year, snap.FinancialData[i].Year)
	}

	require.NotNil(t, snap.Valuation)
	assert.InDelta(t, 1600*0.85, snap.Valuation.DCFIntrinsicValue, 1e-9)
	require.NotNil(t, snap.LongTermGrowth)
	require.NotNil(t, snap.Profile.Employees)
	assert.Equal(t, 48000, *snap.Profile.Employees)
}

// 未知代码回退到默认标的，不报错
func TestQuoteUnknownSymbol(t *testing.T) {
	p := NewProvider()
	q := p.Quote("999999")
	assert.Equal(t, "600519", q.Symbol)
	assert.Equal(t, 1600.0, q.Price)
}

func TestWatchlistQuotes(t *testing.T) {
	p := NewProvider()
	quotes := p.WatchlistQuotes([]string{"600519", "300750", "000858"})
	require.Len(t, quotes, 3)
	assert.Equal(t, "宁德时代", quotes[1].Name)
	assert.Equal(t, "五粮液", quotes[2].Name)
}

func TestRelatedNewsFilter(t *testing.T) {
	p := NewProvider()

	snap := p.CompanySnapshot("600519")
	require.Len(t, snap.News, 1)
	assert.Contains(t, snap.News[0].Related, "600519")

	// 无相关新闻的标的得到空列表
	snap = p.CompanySnapshot("600036")
	assert.Empty(t, snap.News)
}

func TestStaticTables(t *testing.T) {
	p := NewProvider()

	briefing := p.DailyBriefing()
	assert.Len(t, briefing.Items, 3)
	assert.False(t, briefing.Date.IsZero())

	themes := p.ThemeIdeas()
	require.Len(t, themes, 3)
	assert.Equal(t, "高端白酒", themes[1].Name)

	ideas := p.DiscoverIdeas()
	require.Len(t, ideas, 3)
	assert.Len(t, ideas[0].Picks, 2)
}
