package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ashare-research-backend/internal/fallback"
	"ashare-research-backend/internal/llm"
	"ashare-research-backend/internal/service"
)

type fakeCommentator struct {
	text string
	err  error
}

func (f *fakeCommentator) Chat(ctx context.Context, messages []llm.Message, opts llm.Options) (string, error) {
	return f.text, f.err
}

func newRouter(c service.Commentator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := service.NewResearch(nil, nil, fallback.NewProvider(), c)
	New(svc).Register(r.Group("/api"))
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeEndpoint(t *testing.T) {
	r := newRouter(&fakeCommentator{text: "估值合理。"})
	w := doRequest(r, http.MethodGet, "/api/analyze/600519", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success  bool   `json:"success"`
		Analysis string `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "估值合理。", resp.Analysis)
}

// AI 不可用时接口仍返回 200，文案为兜底内容
func TestAnalyzeEndpointCommentaryUnavailable(t *testing.T) {
	r := newRouter(&fakeCommentator{err: llm.ErrUnavailable})
	w := doRequest(r, http.MethodGet, "/api/analyze/600519", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success  bool   `json:"success"`
		Analysis string `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, service.AnalysisUnavailableText, resp.Analysis)
}

func TestCompanyEndpoint(t *testing.T) {
	r := newRouter(&fakeCommentator{})
	w := doRequest(r, http.MethodGet, "/api/company/600519", "")

	require.Equal(t, http.StatusOK, w.Code)
	var snap struct {
		Profile struct {
			Name string `json:"name"`
		} `json:"profile"`
		Quote struct {
			Price float64 `json:"price"`
			PE    float64 `json:"pe"`
		} `json:"quote"`
		FinancialData []struct {
			Year int `json:"year"`
		} `json:"financialData"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, "贵州茅台", snap.Profile.Name)
	assert.Equal(t, 1600.0, snap.Quote.Price)
	assert.Equal(t, 26.5, snap.Quote.PE)
	require.Len(t, snap.FinancialData, 5)
	assert.Equal(t, 2021, snap.FinancialData[0].Year)
	assert.Equal(t, 2025, snap.FinancialData[4].Year)
}

func TestWatchlistEndpoint(t *testing.T) {
	r := newRouter(&fakeCommentator{})

	w := doRequest(r, http.MethodGet, "/api/watchlist", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []struct {
			Symbol string `json:"symbol"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 5)

	w = doRequest(r, http.MethodGet, "/api/watchlist?symbols=600519,000858", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
}

func TestNewsImpactEndpoint(t *testing.T) {
	r := newRouter(&fakeCommentator{text: "短期利好。"})

	w := doRequest(r, http.MethodPost, "/api/news/impact",
		`{"company":"宁德时代","title":"装机量同比+35%","summary":"出口放量"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "短期利好。")

	// 缺少必填字段
	w = doRequest(r, http.MethodPost, "/api/news/impact", `{"title":"缺公司名"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestThemeThesisEndpoint(t *testing.T) {
	r := newRouter(&fakeCommentator{text: "值得关注。"})

	w := doRequest(r, http.MethodPost, "/api/themes/thesis",
		`{"name":"高端白酒","symbols":["600519","000858"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "值得关注。")

	w = doRequest(r, http.MethodPost, "/api/themes/thesis", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStaticEndpoints(t *testing.T) {
	r := newRouter(&fakeCommentator{})

	w := doRequest(r, http.MethodGet, "/api/briefing", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "白酒行业春节动销平稳")

	w = doRequest(r, http.MethodGet, "/api/themes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "高端白酒")

	w = doRequest(r, http.MethodGet, "/api/discover", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "高增长低估值")
}
