package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeFetcher struct {
	raw string
	err error
}

func (f *fakeFetcher) FetchDigest(ctx context.Context, prompt string) (string, error) {
	return f.raw, f.err
}

func (f *fakeFetcher) ModelUsed() string {
	return "fake-model"
}

func newTestPreviewRouter(fetcher DigestFetcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPreviewHandler(fetcher)
	r.GET("/digest/preview", h.GetPreview)
	r.GET("/health", h.GetHealth)
	return r
}

func TestGetPreview_FetchError(t *testing.T) {
	r := newTestPreviewRouter(&fakeFetcher{err: errors.New("API down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/digest/preview", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetPreview_WithStories(t *testing.T) {
	raw := `===STORY===
TITLE: OpenAI releases new model
URL: https://example.com/openai
CATEGORY: Industry
SUMMARY: A new flagship model launched.
WHY_IT_MATTERS: Raises the capability bar.
===END===
===STORY===
TITLE: Stripe Engineering: Real-time fraud scoring
CATEGORY: Company
SUMMARY: Stripe described their fraud pipeline.
===END===`

	r := newTestPreviewRouter(&fakeFetcher{raw: raw})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/digest/preview", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res PreviewResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, 2, res.StoryCount)
	assert.Equal(t, "fake-model", res.ModelUsed)
	assert.Equal(t, 1, res.Stories[0].Rank)
	assert.Equal(t, "industry", res.Stories[0].Category)
	assert.Equal(t, "company", res.Stories[1].Category)
	assert.Equal(t, true, len(res.Message.Blocks) > 0)
}

func TestGetPreview_UnparseableRawFallsBack(t *testing.T) {
	r := newTestPreviewRouter(&fakeFetcher{raw: "The model answered in prose with no list at all."})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/digest/preview", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res PreviewResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, 0, res.StoryCount)
	assert.Equal(t, 1, len(res.Message.Blocks))
	assert.Equal(t, true, strings.Contains(res.Message.Blocks[0].Text.Text, "The model answered in prose"))
}

func TestGetHealth(t *testing.T) {
	r := newTestPreviewRouter(&fakeFetcher{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
