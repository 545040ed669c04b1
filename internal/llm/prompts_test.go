package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ashare-research-backend/internal/model"
)

func TestCompanyAnalysisMessages(t *testing.T) {
	snap := &model.CompanySnapshot{
		Profile: model.CompanyProfile{Name: "贵州茅台", Symbol: "600519", Sector: "白酒"},
		Quote:   model.Quote{Price: 1600, PE: 26.5, PB: 7.1},
		FinancialData: []model.FinancialData{
			{Year: 2024, Revenue: 1689.4, RevenueGrowth: 12.2, NetProfit: 823.5, NetProfitGrowth: 10.1},
			{Year: 2025, Revenue: 1876.3, RevenueGrowth: 11.1, NetProfit: 912.4, NetProfitGrowth: 10.8},
		},
	}

	msgs := CompanyAnalysisMessages(snap)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].Role)
	assert.Equal(t, "user", msgs[1].Role)

	prompt := msgs[1].Content
	assert.Contains(t, prompt, "公司名称：贵州茅台（600519）")
	assert.Contains(t, prompt, "所属行业：白酒")
	assert.Contains(t, prompt, "当前股价：¥1600.00")
	assert.Contains(t, prompt, "市盈率：26.5x")
	assert.Contains(t, prompt, "2024年：营收 1689.4亿元（增长12.2%），净利润 823.5亿元（增长10.1%）")
	assert.Contains(t, prompt, "2025年：营收 1876.3亿元")
}

func TestNewsImpactMessages(t *testing.T) {
	msgs := NewsImpactMessages("宁德时代", "电池装机量同比+35%", "龙头受益高镍产品放量")
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].Role)

	prompt := msgs[1].Content
	assert.Contains(t, prompt, "分析这条新闻对 宁德时代 的影响")
	assert.Contains(t, prompt, "新闻标题：电池装机量同比+35%")
	assert.Contains(t, prompt, "新闻摘要：龙头受益高镍产品放量")
}

func TestThemeThesisMessages(t *testing.T) {
	msgs := ThemeThesisMessages("高端白酒", []string{"600519", "000858", "603369"})
	require.Len(t, msgs, 2)

	prompt := msgs[1].Content
	assert.Contains(t, prompt, `投资主题"高端白酒"`)
	assert.Contains(t, prompt, "600519、000858、603369")
}

// 构造器是纯模板，不应发起任何网络调用；同样输入必须产出同样文本
func TestPromptBuildersDeterministic(t *testing.T) {
	a := ThemeThesisMessages("AI 算力", []string{"603160"})
	b := ThemeThesisMessages("AI 算力", []string{"603160"})
	assert.Equal(t, a, b)
	assert.True(t, strings.Contains(a[1].Content, "AI 算力"))
}
