package slack

import (
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/tomekjam/ai-digest/internal/model"
)

var testDay = time.Date(2026, time.March, 5, 8, 0, 0, 0, time.UTC)

func TestBuildDigestMessage_Empty(t *testing.T) {
	msg := BuildDigestMessage([]model.Story{}, testDay)

	assert.Equal(t, 2, len(msg.Blocks))
	assert.Equal(t, "header", msg.Blocks[0].Type)
	assert.Equal(t, "🤖 AI Daily Digest — Thursday, March 05, 2026", msg.Blocks[0].Text.Text)
	assert.Equal(t, true, strings.Contains(msg.Blocks[1].Text.Text, "No stories today"))
}

func TestBuildDigestMessage_Stories(t *testing.T) {
	stories := []model.Story{
		{
			Rank:     1,
			Category: model.CategoryCompany,
			Title:    "Stripe Engineering: Real-time fraud scoring",
			URL:      "https://example.com/stripe",
			Summary:  "Stripe described their production fraud pipeline.",
			Impact:   "A rare end-to-end ML case study.",
		},
		{
			Rank:     2,
			Category: model.CategoryIndustry,
			Title:    "EU finalizes AI rules",
		},
	}

	msg := BuildDigestMessage(stories, testDay)

	// header, intro, divider, story, divider, story, divider, context
	assert.Equal(t, 8, len(msg.Blocks))
	assert.Equal(t, "header", msg.Blocks[0].Type)
	assert.Equal(t, true, strings.Contains(msg.Blocks[1].Text.Text, "*2 coolest AI stories*"))
	assert.Equal(t, "divider", msg.Blocks[2].Type)

	first := msg.Blocks[3].Text.Text
	assert.Equal(t, true, strings.HasPrefix(first, "🏢 *#1 — <https://example.com/stripe|Stripe Engineering: Real-time fraud scoring>*"))
	assert.Equal(t, true, strings.Contains(first, "Stripe described their production fraud pipeline."))
	assert.Equal(t, true, strings.Contains(first, "💡 *Why it matters:* A rare end-to-end ML case study."))

	second := msg.Blocks[5].Text.Text
	assert.Equal(t, true, strings.HasPrefix(second, "📰 *#2 — EU finalizes AI rules*"))
	assert.Equal(t, true, strings.Contains(second, "No summary available."))
	assert.Equal(t, false, strings.Contains(second, "Why it matters"))

	assert.Equal(t, "context", msg.Blocks[7].Type)
}

func TestBuildFallbackMessage_Truncates(t *testing.T) {
	raw := strings.Repeat("x", 4000)

	msg := BuildFallbackMessage(raw)

	assert.Equal(t, 1, len(msg.Blocks))

	body := msg.Blocks[0].Text.Text
	assert.Equal(t, true, strings.HasPrefix(body, "*AI Daily Digest*\n\n"))
	assert.Equal(t, true, strings.HasSuffix(body, "..."))
	assert.Equal(t, len("*AI Daily Digest*\n\n")+maxFallbackChars+3, len(body))
}

func TestBuildFallbackMessage_ShortTextUntouched(t *testing.T) {
	msg := BuildFallbackMessage("short digest")

	assert.Equal(t, "*AI Daily Digest*\n\nshort digest", msg.Blocks[0].Text.Text)
}
