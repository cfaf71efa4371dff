package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autopilot/internal/models/db_models"
)

func TestBuildDirectives_NilMatchesDefaults(t *testing.T) {
	def := db_models.DefaultPreferenceProfile()

	assert.Equal(t, BuildDirectives(&def), BuildDirectives(nil))
	assert.Equal(t, BuildDirectives(nil), DefaultDirectives())
	assert.Equal(t, []string{
		"Emojis are allowed where they fit naturally.",
		"Hashtags are allowed where the format supports them.",
		"Keep the copy at a medium length.",
		"Use a clear, balanced call-to-action.",
		"Creativity level 5/10: balance familiar phrasing with fresh ideas.",
	}, DefaultDirectives())
}

func TestBuildDirectives_Profile(t *testing.T) {
	profile := &db_models.PreferenceProfile{
		UseEmojis:        false,
		UseHashtags:      true,
		LengthPreference: db_models.LengthShort,
		CTAStyle:         db_models.CTAAggressive,
		CreativityLevel:  9,
		BrandTone:        "Playful.",
		CompanyName:      "Acme",
		TargetAudience:   "  busy parents ",
		Signature:        "Jane Doe\nCEO, Acme",
	}

	got := BuildDirectives(profile)

	require.Len(t, got, 9)
	assert.Equal(t, "Do not use emojis.", got[0])
	assert.Equal(t, "Hashtags are allowed where the format supports them.", got[1])
	assert.Equal(t, "Keep the copy short and punchy.", got[2])
	assert.Equal(t, "Use a strong, direct call-to-action.", got[3])
	assert.Equal(t, "Creativity level 9/10: be bold and unexpected.", got[4])
	assert.Equal(t, "Match this brand tone: Playful.", got[5])
	assert.Equal(t, "The company is Acme.", got[6])
	assert.Equal(t, "The target audience is busy parents.", got[7])
	assert.Equal(t, "When writing an email, close with this signature:\nJane Doe\nCEO, Acme", got[8])
}

func TestBuildDirectives_UnknownEnumsFallBack(t *testing.T) {
	got := BuildDirectives(&db_models.PreferenceProfile{
		LengthPreference: "enormous",
		CTAStyle:         " SOFT ",
		CreativityLevel:  0,
	})

	assert.Equal(t, "Keep the copy at a medium length.", got[2])
	assert.Equal(t, "Use a soft, low-pressure call-to-action.", got[3])
	assert.Equal(t, "Creativity level 5/10: balance familiar phrasing with fresh ideas.", got[4])
}

func TestTemperatureFor(t *testing.T) {
	tests := []struct {
		name    string
		profile *db_models.PreferenceProfile
		want    float32
	}{
		{name: "no profile", profile: nil, want: 0.5},
		{name: "lowest", profile: &db_models.PreferenceProfile{CreativityLevel: 1}, want: 0.1},
		{name: "highest", profile: &db_models.PreferenceProfile{CreativityLevel: 10}, want: 1.0},
		{name: "out of range", profile: &db_models.PreferenceProfile{CreativityLevel: 42}, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TemperatureFor(tt.profile), 0.0001)
		})
	}
}
