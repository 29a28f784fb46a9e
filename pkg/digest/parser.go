package digest

import (
	"regexp"
	"strings"

	"github.com/tomekjam/ai-digest/internal/model"
)

// MaxStories caps the digest length. The prompt asks the model for this many
// stories and the parser keeps at most this many, in source order.
const MaxStories = 15

const (
	storyDelim = "===STORY==="
	endDelim   = "===END==="
)

var (
	// A line that is only a repeated punctuation rule, e.g. "---" or "════".
	ruleLine = regexp.MustCompile(`^\s*[-=*_─]{3,}\s*$`)

	// A heading that opens with an ordinal, e.g. "1. Title", "🏢 #2 — Title"
	// or "[Company] #3 — Title".
	ordinalHeading = regexp.MustCompile(`^[\s>]*\**\s*(?:\[[^\]]+\]\s*)?(?:\p{So}\s*)*\**\s*#?\d+\s*(?:[.):]|[—–-])\s+`)

	// Rank numbers, emoji, bracketed tags and markdown decoration at the
	// front of a heading.
	headingPrefix = regexp.MustCompile(`^[\s*_#>]*(?:\[[^\]]+\]\s*)?(?:\p{So}[\s:]*)*\**\s*(?:#?\d+\s*(?:[.):]|[—–-])\s*)?(?:[—–-]\s*)?`)

	slackLink = regexp.MustCompile(`<(https?://[^|>]+)\|([^>]+)>`)
	mdLink    = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^)]+)\)`)

	impactMarker = regexp.MustCompile(`(?i)^[\s>]*(?:\p{So}[\s:]*)*[\s*_]*why it matters[\s*_]*:?[\s*_]*`)
)

var labeledFields = []string{"TITLE", "URL", "CATEGORY", "SUMMARY", "WHY_IT_MATTERS"}

// ParseStories turns the model's free-text digest into at most limit Story
// records. It is a pure function and never fails: malformed blocks are
// dropped, missing fields come back empty.
func ParseStories(raw string, limit int) []model.Story {
	stories := []model.Story{}

	for _, block := range splitBlocks(raw) {
		story, ok := parseBlock(block)
		if !ok {
			continue
		}

		story.Rank = len(stories) + 1
		stories = append(stories, story)

		if limit > 0 && len(stories) == limit {
			break
		}
	}

	return stories
}

// splitBlocks cuts the raw text into candidate story blocks. The prompt asks
// for ===STORY===/===END=== framing; punctuation rule lines and numbered
// headings are fallbacks for when the model drifts off format.
func splitBlocks(raw string) []string {
	if strings.Contains(raw, storyDelim) {
		var blocks []string
		for _, chunk := range strings.Split(raw, storyDelim) {
			content, _, found := strings.Cut(chunk, endDelim)
			if !found {
				continue
			}
			if content = strings.TrimSpace(content); content != "" {
				blocks = append(blocks, content)
			}
		}
		return blocks
	}

	lines := strings.Split(raw, "\n")

	hasRule := false
	for _, line := range lines {
		if ruleLine.MatchString(line) {
			hasRule = true
			break
		}
	}

	var blocks []string
	var current []string

	flush := func() {
		if block := strings.TrimSpace(strings.Join(current, "\n")); block != "" {
			blocks = append(blocks, block)
		}
		current = current[:0]
	}

	if hasRule {
		for _, line := range lines {
			if ruleLine.MatchString(line) {
				flush()
				continue
			}
			current = append(current, line)
		}
		flush()
		return blocks
	}

	// No delimiters at all: every numbered heading starts a new block and
	// any preamble before the first heading is dropped.
	started := false
	for _, line := range lines {
		if ordinalHeading.MatchString(line) {
			flush()
			started = true
		}
		if started {
			current = append(current, line)
		}
	}
	flush()
	return blocks
}

func parseBlock(block string) (model.Story, bool) {
	if strings.Contains(block, "TITLE:") {
		return parseLabeledBlock(block)
	}
	return parseHeadingBlock(block)
}

// parseLabeledBlock extracts the FIELD: lines the prompt asks for.
func parseLabeledBlock(block string) (model.Story, bool) {
	values := map[string]string{}

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		for _, field := range labeledFields {
			if rest, ok := strings.CutPrefix(line, field+":"); ok {
				values[field] = strings.TrimSpace(rest)
				break
			}
		}
	}

	title := values["TITLE"]
	if title == "" {
		return model.Story{}, false
	}

	return model.Story{
		Category: categoryFromLabel(values["CATEGORY"]),
		Title:    title,
		URL:      values["URL"],
		Summary:  values["SUMMARY"],
		Impact:   values["WHY_IT_MATTERS"],
	}, true
}

// parseHeadingBlock handles off-format blocks: first non-blank line is the
// heading, a 🏢 emoji or [Company] tag flags a company blog story, a "why it matters" marker
// starts the impact field and everything else joins into the summary.
func parseHeadingBlock(block string) (model.Story, bool) {
	lines := strings.Split(block, "\n")

	headingIdx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			headingIdx = i
			break
		}
	}
	if headingIdx < 0 {
		return model.Story{}, false
	}

	story := model.Story{Category: model.CategoryIndustry}

	heading := strings.TrimSpace(lines[headingIdx])
	if strings.Contains(heading, "🏢") || strings.Contains(strings.ToLower(heading), "[company]") {
		story.Category = model.CategoryCompany
	}

	if m := slackLink.FindStringSubmatch(heading); m != nil {
		story.URL = m[1]
		heading = slackLink.ReplaceAllString(heading, "$2")
	} else if m := mdLink.FindStringSubmatch(heading); m != nil {
		story.URL = m[2]
		heading = mdLink.ReplaceAllString(heading, "$1")
	}

	story.Title = strings.Trim(headingPrefix.ReplaceAllString(heading, ""), "*_ \t")
	if story.Title == "" {
		return model.Story{}, false
	}

	var summary, impact []string
	inImpact := false

	for _, line := range lines[headingIdx+1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			inImpact = false
			continue
		}

		if loc := impactMarker.FindStringIndex(line); loc != nil {
			inImpact = true
			if rest := strings.TrimSpace(line[loc[1]:]); rest != "" {
				impact = append(impact, rest)
			}
			continue
		}

		if inImpact {
			impact = append(impact, line)
			continue
		}
		summary = append(summary, line)
	}

	story.Summary = strings.Join(summary, " ")
	story.Impact = strings.Join(impact, " ")
	return story, true
}

func categoryFromLabel(label string) string {
	if strings.Contains(strings.ToLower(label), "company") {
		return model.CategoryCompany
	}
	return model.CategoryIndustry
}
