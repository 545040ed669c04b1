package llm

import (
	"fmt"
	"strings"

	"ashare-research-backend/internal/model"
)

// 提示词构造都是纯字符串模板，不涉及网络调用，便于单测。

// CompanyAnalysisOptions 公司分析报告的生成参数
var CompanyAnalysisOptions = Options{Temperature: 0.7, MaxTokens: 800}

// NewsImpactOptions 新闻解读的生成参数
var NewsImpactOptions = Options{Temperature: 0.6, MaxTokens: 300}

// ThemeThesisOptions 主题投资逻辑的生成参数
var ThemeThesisOptions = Options{Temperature: 0.7, MaxTokens: 400}

// CompanyAnalysisMessages 构造公司投资分析报告的提示词
func CompanyAnalysisMessages(snap *model.CompanySnapshot) []Message {
	var series strings.Builder
	for _, d := range snap.FinancialData {
		fmt.Fprintf(&series, "%d年：营收 %.1f亿元（增长%.1f%%），净利润 %.1f亿元（增长%.1f%%）\n",
			d.Year, d.Revenue, d.RevenueGrowth, d.NetProfit, d.NetProfitGrowth)
	}

	prompt := fmt.Sprintf(`你是一位专业的 A 股投资分析师。请基于以下公司数据，生成一份简洁的投资分析报告（300字以内）：

公司名称：%s（%s）
所属行业：%s
当前股价：¥%.2f
市盈率：%.1fx
市净率：%.1fx

近5年财务数据：
%s
请从以下角度分析：
1. 公司基本面评价（成长性、盈利能力）
2. 估值水平判断（是否合理）
3. 投资建议与风险提示

要求：
- 客观、专业、简洁
- 避免过度乐观或悲观
- 突出关键指标和趋势`,
		snap.Profile.Name, snap.Profile.Symbol, snap.Profile.Sector,
		snap.Quote.Price, snap.Quote.PE, snap.Quote.PB,
		series.String())

	return []Message{
		{
			Role:    "system",
			Content: "你是一位经验丰富的 A 股投资分析师，擅长基本面分析和价值投资。你的分析客观、专业、有洞察力。",
		},
		{Role: "user", Content: prompt},
	}
}

// NewsImpactMessages 构造单条新闻影响解读的提示词
func NewsImpactMessages(companyName, newsTitle, newsSummary string) []Message {
	prompt := fmt.Sprintf(`请用投资人的角度，分析这条新闻对 %s 的影响（100字以内）：

新闻标题：%s
新闻摘要：%s

请简要说明：
1. 这条新闻是利好、利空还是中性？
2. 影响程度（短期/长期）
3. 对投资决策的启示`, companyName, newsTitle, newsSummary)

	return []Message{
		{
			Role:    "system",
			Content: "你是一位专业的财经新闻分析师，善于快速解读新闻对上市公司的影响。",
		},
		{Role: "user", Content: prompt},
	}
}

// ThemeThesisMessages 构造投资主题逻辑说明的提示词
func ThemeThesisMessages(themeName string, relatedCompanies []string) []Message {
	prompt := fmt.Sprintf(`请为投资主题"%s"生成一份投资逻辑说明（150字以内）：

相关公司：%s

请说明：
1. 为什么这个主题值得关注？
2. 关键驱动因素是什么？
3. 适合什么类型的投资者？`, themeName, strings.Join(relatedCompanies, "、"))

	return []Message{
		{
			Role:    "system",
			Content: "你是一位主题投资策略分析师，善于发现市场机会和投资逻辑。",
		},
		{Role: "user", Content: prompt},
	}
}
