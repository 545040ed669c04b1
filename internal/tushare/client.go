package tushare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL Tushare 接口地址
const DefaultBaseURL = "http://api.tushare.pro"

// Row 一条行记录：列式返回按 fields 对齐后的结果
type Row map[string]any

// Float 读取数值字段，缺失或类型不符时返回 0
func (r Row) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	}
	return 0
}

// Str 读取字符串字段，缺失时返回空串
func (r Row) Str(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// Client Tushare 网关
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewClient 创建 Tushare 客户端，token 为空时所有访问退化为无数据
func NewClient(token, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		token:   token,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Configured 是否配置了访问 token
func (c *Client) Configured() bool {
	return c.token != ""
}

type callRequest struct {
	APIName string            `json:"api_name"`
	Token   string            `json:"token"`
	Params  map[string]string `json:"params"`
	Fields  string            `json:"fields,omitempty"`
}

type callResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		Fields []string `json:"fields"`
		Items  [][]any  `json:"items"`
	} `json:"data"`
}

// Call 调用 Tushare 接口并把列式结果转换为行记录。
// 未配置 token 时返回 nil 而不是报错，由调用方按"数据缺失"处理。
func (c *Client) Call(ctx context.Context, apiName string, params map[string]string, fields []string) ([]Row, error) {
	if !c.Configured() {
		log.Warn().Str("api", apiName).Msg("Tushare token 未配置，返回空数据")
		return nil, nil
	}

	if params == nil {
		params = map[string]string{}
	}
	body, err := json.Marshal(callRequest{
		APIName: apiName,
		Token:   c.token,
		Params:  params,
		Fields:  strings.Join(fields, ","),
	})
	if err != nil {
		return nil, fmt.Errorf("序列化请求失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求 Tushare 失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Tushare 返回状态码 %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应失败: %w", err)
	}

	var cr callResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return nil, fmt.Errorf("解析响应失败: %w", err)
	}
	if cr.Code != 0 {
		return nil, fmt.Errorf("Tushare 返回错误: %s", cr.Msg)
	}

	rows := make([]Row, 0, len(cr.Data.Items))
	for _, item := range cr.Data.Items {
		row := Row{}
		for i, field := range cr.Data.Fields {
			if i < len(item) {
				row[field] = item[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ConvertToTsCode 把裸代码转换为 Tushare 代码格式。
// 例如 600519 -> 600519.SH，000858 -> 000858.SZ，300750 -> 300750.SZ
func ConvertToTsCode(symbol string) string {
	// 已经带后缀的直接返回
	if strings.Contains(symbol, ".") {
		return symbol
	}
	switch {
	case strings.HasPrefix(symbol, "6"):
		return symbol + ".SH"
	case strings.HasPrefix(symbol, "0"), strings.HasPrefix(symbol, "3"):
		return symbol + ".SZ"
	}
	// 默认上海
	return symbol + ".SH"
}
