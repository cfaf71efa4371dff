package services

import (
	"fmt"
	"strings"

	"autopilot/internal/models/db_models"
)

var emojiDirectives = map[bool]string{
	true:  "Emojis are allowed where they fit naturally.",
	false: "Do not use emojis.",
}

var hashtagDirectives = map[bool]string{
	true:  "Hashtags are allowed where the format supports them.",
	false: "Do not use hashtags.",
}

var lengthDirectives = map[db_models.LengthPreference]string{
	db_models.LengthShort:  "Keep the copy short and punchy.",
	db_models.LengthMedium: "Keep the copy at a medium length.",
	db_models.LengthLong:   "Write long-form, detailed copy.",
}

var ctaDirectives = map[db_models.CTAStyle]string{
	db_models.CTASoft:       "Use a soft, low-pressure call-to-action.",
	db_models.CTABalanced:   "Use a clear, balanced call-to-action.",
	db_models.CTAAggressive: "Use a strong, direct call-to-action.",
}

// BuildDirectives turns a preference profile into ordered instructions for the model.
// A nil profile resolves exactly like a freshly defaulted one.
func BuildDirectives(profile *db_models.PreferenceProfile) []string {
	p := db_models.DefaultPreferenceProfile()
	if profile != nil {
		p = *profile
	}

	directives := []string{
		emojiDirectives[p.UseEmojis],
		hashtagDirectives[p.UseHashtags],
		lengthDirective(p.LengthPreference),
		ctaDirective(p.CTAStyle),
		creativityDirective(p.CreativityLevel),
	}

	for _, f := range []struct {
		format string
		value  string
	}{
		{"Match this brand tone: %s.", p.BrandTone},
		{"Follow this writing style: %s.", p.WritingStyle},
		{"Write on behalf of %s.", p.FullName},
		{"The author's title is %s.", p.Title},
		{"The company is %s.", p.CompanyName},
		{"The company website is %s.", p.CompanyWebsite},
		{"The industry is %s.", p.Industry},
		{"About the brand: %s.", p.BrandDescription},
		{"The target audience is %s.", p.TargetAudience},
		{"When writing an email, close with this signature:\n%s", p.Signature},
	} {
		if v := strings.TrimSpace(f.value); v != "" {
			directives = append(directives, fmt.Sprintf(f.format, strings.TrimRight(v, ".")))
		}
	}

	return directives
}

// DefaultDirectives is the directive set for accounts without a profile.
func DefaultDirectives() []string {
	return BuildDirectives(nil)
}

func lengthDirective(pref db_models.LengthPreference) string {
	if d, ok := lengthDirectives[db_models.LengthPreference(normalizeEnum(string(pref)))]; ok {
		return d
	}
	return lengthDirectives[db_models.LengthMedium]
}

func ctaDirective(style db_models.CTAStyle) string {
	if d, ok := ctaDirectives[db_models.CTAStyle(normalizeEnum(string(style)))]; ok {
		return d
	}
	return ctaDirectives[db_models.CTABalanced]
}

func creativityDirective(level int) string {
	level = clampCreativity(level)
	var register string
	switch {
	case level <= 3:
		register = "stay conventional and safe"
	case level <= 7:
		register = "balance familiar phrasing with fresh ideas"
	default:
		register = "be bold and unexpected"
	}
	return fmt.Sprintf("Creativity level %d/10: %s.", level, register)
}

// TemperatureFor maps the creativity level onto a sampling temperature in [0.1, 1.0].
func TemperatureFor(profile *db_models.PreferenceProfile) float32 {
	level := db_models.DefaultCreativity
	if profile != nil {
		level = clampCreativity(profile.CreativityLevel)
	}
	return float32(level) / 10
}

func clampCreativity(level int) int {
	if level < db_models.MinCreativity || level > db_models.MaxCreativity {
		return db_models.DefaultCreativity
	}
	return level
}

func normalizeEnum(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
