package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tomekjam/ai-digest/pkg/digest"
	"github.com/tomekjam/ai-digest/pkg/llm"
	"github.com/tomekjam/ai-digest/pkg/slack"
)

type DigestFetcher interface {
	FetchDigest(ctx context.Context, prompt string) (string, error)
	ModelUsed() string
}

// PreviewHandler runs the digest pipeline up to the render step so the
// message can be inspected without posting it anywhere.
type PreviewHandler struct {
	fetcher DigestFetcher
}

func NewPreviewHandler(fetcher DigestFetcher) *PreviewHandler {
	return &PreviewHandler{fetcher: fetcher}
}

func (h *PreviewHandler) GetPreview(c *gin.Context) {
	now := time.Now()
	prompt := llm.BuildDigestPrompt(now, digest.MaxStories)

	raw, err := h.fetcher.FetchDigest(c.Request.Context(), prompt)
	if err != nil {
		slog.Error("error fetching digest", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Digest fetch failed"})
		return
	}

	stories := digest.ParseStories(raw, digest.MaxStories)

	msg := slack.BuildDigestMessage(stories, now)
	if len(stories) == 0 && strings.TrimSpace(raw) != "" {
		msg = slack.BuildFallbackMessage(raw)
	}

	storyRes := make([]StoryResponse, 0, len(stories))
	for _, s := range stories {
		storyRes = append(storyRes, StoryResponse{
			Rank:     s.Rank,
			Category: s.Category,
			Title:    s.Title,
			URL:      s.URL,
			Summary:  s.Summary,
			Impact:   s.Impact,
		})
	}

	c.JSON(http.StatusOK, PreviewResponse{
		Stories:    storyRes,
		StoryCount: len(stories),
		ModelUsed:  h.fetcher.ModelUsed(),
		Message:    msg,
	})
}

func (h *PreviewHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
