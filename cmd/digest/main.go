package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/tomekjam/ai-digest/pkg/digest"
	"github.com/tomekjam/ai-digest/pkg/llm"
	"github.com/tomekjam/ai-digest/pkg/slack"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	webhookURL := os.Getenv("SLACK_WEBHOOK_URL")
	if webhookURL == "" {
		log.Fatalf("SLACK_WEBHOOK_URL environment variable is not set")
	}

	client, err := llm.NewClientFromEnv()
	if err != nil {
		log.Fatalf("error configuring LLM client: %v", err)
	}

	now := time.Now()
	prompt := llm.BuildDigestPrompt(now, digest.MaxStories)

	slog.Info("fetching AI news digest", "model", client.ModelUsed())

	raw, err := client.FetchDigest(context.Background(), prompt)
	if err != nil {
		log.Fatalf("error fetching digest: %v", err)
	}

	stories := digest.ParseStories(raw, digest.MaxStories)
	slog.Info("parsed stories", "count", len(stories))

	var msg slack.Message
	if len(stories) == 0 && strings.TrimSpace(raw) != "" {
		slog.Warn("no stories parsed, posting raw digest as fallback")
		msg = slack.BuildFallbackMessage(raw)
	} else {
		msg = slack.BuildDigestMessage(stories, now)
	}

	webhook := slack.NewWebhookClient(webhookURL)
	if err := webhook.Post(context.Background(), msg); err != nil {
		log.Fatalf("error posting to Slack: %v", err)
	}

	slog.Info("digest posted successfully", "story_count", len(stories))
}
