package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL OpenRouter chat completions 接口地址
const DefaultBaseURL = "https://openrouter.ai/api/v1/chat/completions"

// DefaultModel 默认使用 Claude 3.5 Sonnet
const DefaultModel = "anthropic/claude-3.5-sonnet"

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 2000
)

// PlaceholderText 未配置 API Key 时返回的固定占位文案
const PlaceholderText = "（AI 解读功能需要配置 OpenRouter API Key）"

// ErrUnavailable AI 解读调用失败（网络错误、非 2xx 响应或空结果）。
// 调用方应捕获并向用户展示兜底文案，不得把底层错误透传到页面。
var ErrUnavailable = errors.New("AI 解读调用失败")

// Message 对话消息，Role 取 system/user/assistant
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options 生成参数，零值字段使用默认值
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// Client OpenRouter 网关
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient 创建 OpenRouter 客户端，apiKey 为空时 Chat 返回固定占位文案
func NewClient(apiKey, baseURL, model string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Configured 是否配置了 API Key
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Chat 执行一次对话生成。未配置 Key 时直接返回占位文案，不发起网络请求。
func (c *Client) Chat(ctx context.Context, messages []Message, opts Options) (string, error) {
	if !c.Configured() {
		log.Warn().Msg("OpenRouter API Key 未配置，返回占位文案")
		return PlaceholderText, nil
	}

	if opts.Model == "" {
		opts.Model = c.model
	}
	if opts.Temperature == 0 {
		opts.Temperature = defaultTemperature
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = defaultMaxTokens
	}

	body, err := json.Marshal(chatRequest{
		Model:       opts.Model,
		Messages:    messages,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: 序列化请求失败: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: 创建请求失败: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("HTTP-Referer", "http://localhost:3000")
	req.Header.Set("X-Title", "投研助手·A股")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: 读取响应失败: %v", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Str("model", opts.Model).Msg("OpenRouter 调用失败")
		return "", fmt.Errorf("%w: 状态码 %d", ErrUnavailable, resp.StatusCode)
	}

	var cr chatResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return "", fmt.Errorf("%w: 解析响应失败: %v", ErrUnavailable, err)
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: 返回内容为空", ErrUnavailable)
	}
	return cr.Choices[0].Message.Content, nil
}
