package llm

import (
	"fmt"
	"time"
)

const digestPromptTemplate = `Today is %s. Search the web thoroughly for the most interesting and impactful
AI news from the last 24-48 hours. Cover BOTH major industry news AND how leading tech companies
are applying AI in practice.

Search for at least 8-10 different queries to get broad coverage. Include:

INDUSTRY NEWS (search for these):
- Latest AI news today
- AI breakthroughs announcements this week
- AI tools and product launches
- LLM and generative AI updates
- AI startup funding news
- AI regulation policy news

TECH COMPANY AI BLOGS (search for recent posts from these sources):
- Stripe engineering blog AI
- Spotify engineering blog AI machine learning
- Netflix tech blog AI
- Airbnb engineering AI
- Uber engineering blog AI ML
- Shopify engineering AI
- LinkedIn engineering blog AI
- Duolingo AI blog
- Figma AI blog
- Notion AI blog
- GitHub blog AI
- Vercel AI blog
- Datadog engineering AI
- Cloudflare blog AI
- Slack engineering blog AI
- Monzo engineering blog AI
- Klarna AI blog
- Meta engineering AI blog
- Google DeepMind blog
- OpenAI blog

Prioritize stories from the company blogs that describe REAL implementations,
lessons learned, architectures, or case studies — not just marketing announcements.

After gathering results, select the TOP %d most "cool" stories. Rank by:
1. **Novelty** — Is this genuinely new or surprising?
2. **Impact** — Will this affect practitioners, businesses, or the industry?
3. **Practical relevance** — Can someone act on or learn from this?
4. **Buzz** — Is the community talking about it?

IMPORTANT RULES FOR DIVERSITY:
- NEVER include more than 2 stories about the same event, conference, or summit. Consolidate
  related announcements from the same event into a single story.
- NEVER include more than 2 stories about the same company. Pick only the most impactful one.
- Maximize TOPIC diversity: spread across model releases, company use cases, research,
  regulation, infrastructure, funding, open source, and practical applications.
- If a major event (like a summit or conference) produced many announcements, pick the
  1-2 most impactful and move on to other topics.

Aim for a MIX: roughly 8-9 industry news stories and 6-7 company engineering blog posts.

For each of the %d stories, provide EXACTLY this format (this will be parsed):

===STORY===
TITLE: [Headline]
URL: [Source URL]
CATEGORY: [Industry or Company]
SUMMARY: [2-3 sentence summary of what happened]
WHY_IT_MATTERS: [1-2 sentences on why a practitioner should care]
===END===

Be specific. Use real URLs from your search results. Do not invent or hallucinate stories.`

// BuildDigestPrompt interpolates the current date and the story cap into the
// digest instruction text.
func BuildDigestPrompt(now time.Time, maxStories int) string {
	return fmt.Sprintf(digestPromptTemplate, now.Format("January 02, 2006"), maxStories, maxStories)
}
