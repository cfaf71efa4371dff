package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autopilot/internal/models/db_models"
	"autopilot/internal/models/request_models"
	"autopilot/pkg/utils"
)

func TestNewAdBrief(t *testing.T) {
	t.Run("product and audience", func(t *testing.T) {
		b, err := NewAdBrief(request_models.AdRequest{Product: "Trail shoes", Audience: "weekend runners"})
		require.NoError(t, err)
		assert.Equal(t, db_models.KindAd, b.Kind)
		assert.Equal(t, "Create ads for Trail shoes targeting weekend runners.", b.UserMessage)
		assert.Equal(t, "Trail shoes → weekend runners", b.StoredPrompt)
	})

	t.Run("free-form text", func(t *testing.T) {
		b, err := NewAdBrief(request_models.AdRequest{Text: "  Summer sale on tents "})
		require.NoError(t, err)
		assert.Equal(t, "Summer sale on tents", b.UserMessage)
		assert.Equal(t, "Summer sale on tents", b.StoredPrompt)
	})

	t.Run("prompt wins over product", func(t *testing.T) {
		b, err := NewAdBrief(request_models.AdRequest{Prompt: "Launch ad", Product: "Tent"})
		require.NoError(t, err)
		assert.Equal(t, "Launch ad", b.UserMessage)
		assert.Equal(t, "Tent → ", b.StoredPrompt)
	})

	t.Run("missing input", func(t *testing.T) {
		_, err := NewAdBrief(request_models.AdRequest{Product: "Tent"})
		assert.ErrorIs(t, err, utils.ErrValidationFailed)
	})
}

func TestNewPostBrief(t *testing.T) {
	b, err := NewPostBrief(request_models.PostRequest{Prompt: "our new espresso blend", Platform: "LinkedIn"})
	require.NoError(t, err)
	assert.Equal(t, db_models.KindPost, b.Kind)
	assert.Equal(t, PlatformLinkedIn, b.Platform)
	assert.Equal(t, "Create 5 posts to showcase: our new espresso blend", b.UserMessage)
	assert.Equal(t, "our new espresso blend (linkedin)", b.StoredPrompt)

	b, err = NewPostBrief(request_models.PostRequest{Topic: "coffee"})
	require.NoError(t, err)
	assert.Equal(t, PlatformInstagram, b.Platform)

	_, err = NewPostBrief(request_models.PostRequest{Platform: "tiktok"})
	assert.ErrorIs(t, err, utils.ErrValidationFailed)
}

func TestNewEmailBrief(t *testing.T) {
	b, err := NewEmailBrief(request_models.EmailRequest{Details: "follow up on the demo"})
	require.NoError(t, err)
	assert.Equal(t, db_models.KindEmail, b.Kind)
	assert.Equal(t, "Quick question", b.StoredPrompt)
	assert.Equal(t, "Write an email.\n\nSubject idea: Quick question\n\nContext/details:\nfollow up on the demo", b.UserMessage)

	b, err = NewEmailBrief(request_models.EmailRequest{Subject: "Renewal", Text: "contract ends soon"})
	require.NoError(t, err)
	assert.Equal(t, "Renewal", b.StoredPrompt)

	_, err = NewEmailBrief(request_models.EmailRequest{Subject: "Hello"})
	assert.ErrorIs(t, err, utils.ErrValidationFailed)
}

func TestContentBrief_Messages(t *testing.T) {
	b, err := NewPostBrief(request_models.PostRequest{Topic: "coffee", Platform: "twitter"})
	require.NoError(t, err)

	msgs := b.Messages([]string{"Do not use emojis."})

	require.Len(t, msgs, 2)
	assert.Equal(t, utils.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "Output EXACTLY 5 posts.")
	assert.Contains(t, msgs[0].Content, "Format for X (Twitter).")
	assert.Contains(t, msgs[0].Content, "Personalization:\n- Do not use emojis.")
	assert.Equal(t, utils.RoleUser, msgs[1].Role)
	assert.Equal(t, "Create 5 posts to showcase: coffee", msgs[1].Content)
}

func TestParsePlatform(t *testing.T) {
	assert.Equal(t, PlatformTikTok, ParsePlatform(" TikTok "))
	assert.Equal(t, PlatformTwitter, ParsePlatform("twitter"))
	assert.Equal(t, PlatformInstagram, ParsePlatform(""))
	assert.Equal(t, PlatformInstagram, ParsePlatform("myspace"))
}

func TestKindDirectives(t *testing.T) {
	assert.Len(t, KindDirectives(db_models.KindAd, PlatformTikTok), 1)
	assert.Len(t, KindDirectives(db_models.KindEmail, ""), 1)

	post := KindDirectives(db_models.KindPost, "unknown")
	require.Len(t, post, 2)
	assert.Contains(t, post[1], "Format for Instagram.")

	assert.Empty(t, KindDirectives("image", ""))
	assert.NotContains(t, SystemPrompt(db_models.KindAd, "", nil), "Personalization:")
}
