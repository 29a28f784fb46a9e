package slack

import (
	"fmt"
	"time"

	"github.com/tomekjam/ai-digest/internal/model"
)

const maxFallbackChars = 3000

// Block Kit wire format, trimmed to the block types the digest uses.
type Message struct {
	Blocks []Block `json:"blocks"`
}

type Block struct {
	Type     string `json:"type"`
	Text     *Text  `json:"text,omitempty"`
	Elements []Text `json:"elements,omitempty"`
}

type Text struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

func headerBlock(text string) Block {
	return Block{Type: "header", Text: &Text{Type: "plain_text", Text: text, Emoji: true}}
}

func sectionBlock(text string) Block {
	return Block{Type: "section", Text: &Text{Type: "mrkdwn", Text: text}}
}

func dividerBlock() Block {
	return Block{Type: "divider"}
}

// BuildDigestMessage renders the parsed stories as a Block Kit message,
// preserving rank order. An empty story list renders a "no stories today"
// message rather than an empty payload.
func BuildDigestMessage(stories []model.Story, now time.Time) Message {
	today := now.Format("Monday, January 02, 2006")

	blocks := []Block{
		headerBlock(fmt.Sprintf("🤖 AI Daily Digest — %s", today)),
	}

	if len(stories) == 0 {
		blocks = append(blocks, sectionBlock("No stories today — check back tomorrow. 📭"))
		return Message{Blocks: blocks}
	}

	blocks = append(blocks,
		sectionBlock(fmt.Sprintf("Here are today's *%d coolest AI stories* — industry news + how top tech companies are using AI 👇", len(stories))),
		dividerBlock(),
	)

	for _, story := range stories {
		blocks = append(blocks, sectionBlock(storyText(story)), dividerBlock())
	}

	blocks = append(blocks, Block{
		Type: "context",
		Elements: []Text{
			{Type: "mrkdwn", Text: "🛠️ Powered by Claude AI | Industry news 📰 + Company engineering blogs 🏢"},
		},
	})

	return Message{Blocks: blocks}
}

func storyText(story model.Story) string {
	emoji := "📰"
	if story.Category == model.CategoryCompany {
		emoji = "🏢"
	}

	title := story.Title
	if story.URL != "" {
		title = fmt.Sprintf("<%s|%s>", story.URL, story.Title)
	}

	summary := story.Summary
	if summary == "" {
		summary = "No summary available."
	}

	text := fmt.Sprintf("%s *#%d — %s*\n\n%s", emoji, story.Rank, title, summary)
	if story.Impact != "" {
		text += fmt.Sprintf("\n\n💡 *Why it matters:* %s", story.Impact)
	}
	return text
}

// BuildFallbackMessage posts the raw digest text when nothing parsed.
func BuildFallbackMessage(raw string) Message {
	return Message{Blocks: []Block{
		sectionBlock(fmt.Sprintf("*AI Daily Digest*\n\n%s", truncate(raw, maxFallbackChars))),
	}}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
