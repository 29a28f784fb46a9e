package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
)

type DigestClient interface {
	FetchDigest(ctx context.Context, prompt string) (string, error)
	ModelUsed() string
}

// NewClientFromEnv picks a provider from the environment. DIGEST_PROVIDER
// forces one; otherwise Anthropic wins when both API keys are present.
func NewClientFromEnv() (DigestClient, error) {
	provider := strings.ToLower(os.Getenv("DIGEST_PROVIDER"))
	anthropicKey := os.Getenv("ANTHROPIC_API_KEY")
	openaiKey := os.Getenv("OPENAI_API_KEY")

	switch provider {
	case "anthropic":
		if anthropicKey == "" {
			return nil, fmt.Errorf("DIGEST_PROVIDER=anthropic but ANTHROPIC_API_KEY is not set")
		}
		return NewAnthropicClient(anthropicKey), nil
	case "openai":
		if openaiKey == "" {
			return nil, fmt.Errorf("DIGEST_PROVIDER=openai but OPENAI_API_KEY is not set")
		}
		return NewOpenAIClient(openaiKey), nil
	case "":
		if anthropicKey != "" {
			return NewAnthropicClient(anthropicKey), nil
		}
		if openaiKey != "" {
			return NewOpenAIClient(openaiKey), nil
		}
		return nil, fmt.Errorf("no LLM API key configured (set ANTHROPIC_API_KEY or OPENAI_API_KEY)")
	default:
		return nil, fmt.Errorf("unknown DIGEST_PROVIDER %q", provider)
	}
}
