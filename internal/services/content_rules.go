package services

import (
	"strings"

	"autopilot/internal/models/db_models"
)

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
)

// ParsePlatform falls back to Instagram for empty or unknown names.
func ParsePlatform(name string) Platform {
	switch p := Platform(normalizeEnum(name)); p {
	case PlatformTikTok, PlatformTwitter, PlatformLinkedIn, PlatformInstagram:
		return p
	default:
		return PlatformInstagram
	}
}

var kindInstructions = map[db_models.ContentKind]string{
	db_models.KindAd: "You write HIGH-CONVERTING ad copy. " +
		"You NEVER give advice, tips, explanations, or strategies. " +
		"You ONLY output finished ad copy.\n\n" +
		"Output format MUST be:\n" +
		"AD 1:\nHeadline:\nPrimary text:\nCTA:\n\n" +
		"AD 2:\nHeadline:\nPrimary text:\nCTA:\n\n" +
		"AD 3:\nHeadline:\nPrimary text:\nCTA:\n\n" +
		"Rules:\n" +
		"- Strong hook in headline\n" +
		"- Clear benefit + proof\n" +
		"- Clear CTA\n" +
		"- No commentary",
	db_models.KindPost: "You generate READY-TO-POST social media content.\n" +
		"You NEVER give advice, tips, explanations, or strategies.\n" +
		"You ONLY output finished posts.\n\n" +
		"Output EXACTLY 5 posts.\n" +
		"Each post must be clearly separated.\n" +
		"No commentary. No explanations.",
	db_models.KindEmail: "You write FINAL, SEND-READY business emails. " +
		"You NEVER give advice, tips, explanations, or strategy. " +
		"You ONLY output the email itself.\n\n" +
		"Rules:\n" +
		"- Start with a subject line: 'Subject: ...'\n" +
		"- Then the email body.\n" +
		"- Keep it clear, persuasive, and professional.\n" +
		"- Include a concrete CTA.\n" +
		"- No extra notes or commentary.",
}

var platformRules = map[Platform][]string{
	PlatformTikTok: {
		"Format for TikTok captions.",
		"- Short punchy hooks",
		"- Casual, bold tone",
		"- Emojis allowed",
		"- Max 2–4 lines per post",
	},
	PlatformTwitter: {
		"Format for X (Twitter).",
		"- Max 280 characters per post",
		"- Sharp hooks",
		"- No hashtags unless essential",
	},
	PlatformLinkedIn: {
		"Format for LinkedIn.",
		"- Professional tone",
		"- Value-driven hooks",
		"- Line breaks for readability",
		"- No emojis or slang",
	},
	PlatformInstagram: {
		"Format for Instagram.",
		"- Strong hook in first line",
		"- 2–4 short lines",
		"- Emojis allowed",
		"- 6–12 relevant hashtags",
	},
}

// KindDirectives returns the formatting rules for a content kind. The platform only
// matters for social posts.
func KindDirectives(kind db_models.ContentKind, platform Platform) []string {
	var out []string
	if base, ok := kindInstructions[kind]; ok {
		out = append(out, base)
	}
	if kind == db_models.KindPost {
		rules, ok := platformRules[platform]
		if !ok {
			rules = platformRules[PlatformInstagram]
		}
		out = append(out, strings.Join(rules, "\n"))
	}
	return out
}

// SystemPrompt layers the account's personalization under the kind rules.
func SystemPrompt(kind db_models.ContentKind, platform Platform, directives []string) string {
	var b strings.Builder
	b.WriteString(strings.Join(KindDirectives(kind, platform), "\n\n"))
	if len(directives) > 0 {
		b.WriteString("\n\nPersonalization:\n")
		for _, d := range directives {
			b.WriteString("- ")
			b.WriteString(d)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
