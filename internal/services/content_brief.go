package services

import (
	"fmt"
	"strings"

	"autopilot/internal/models/db_models"
	"autopilot/internal/models/request_models"
	"autopilot/pkg/utils"
)

const defaultEmailSubject = "Quick question"

// ContentBrief is a validated generation request, independent of the endpoint it came from.
type ContentBrief struct {
	Kind     db_models.ContentKind
	Platform Platform

	// UserMessage is what the model is asked for; StoredPrompt is what the history shows.
	UserMessage  string
	StoredPrompt string
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func NewAdBrief(req request_models.AdRequest) (ContentBrief, error) {
	product := strings.TrimSpace(req.Product)
	audience := strings.TrimSpace(req.Audience)
	prompt := firstNonEmpty(req.Prompt, req.Text)

	if prompt == "" && (product == "" || audience == "") {
		return ContentBrief{}, fmt.Errorf("%w: provide prompt/text or product+audience", utils.ErrValidationFailed)
	}

	brief := ContentBrief{Kind: db_models.KindAd, UserMessage: prompt, StoredPrompt: prompt}
	if prompt == "" {
		brief.UserMessage = fmt.Sprintf("Create ads for %s targeting %s.", product, audience)
	}
	if product != "" || audience != "" {
		brief.StoredPrompt = fmt.Sprintf("%s → %s", product, audience)
	}
	return brief, nil
}

func NewPostBrief(req request_models.PostRequest) (ContentBrief, error) {
	topic := firstNonEmpty(req.Topic, req.Prompt, req.Text)
	if topic == "" {
		return ContentBrief{}, fmt.Errorf("%w: missing topic/prompt/text", utils.ErrValidationFailed)
	}

	platform := ParsePlatform(req.Platform)
	return ContentBrief{
		Kind:         db_models.KindPost,
		Platform:     platform,
		UserMessage:  fmt.Sprintf("Create 5 posts to showcase: %s", topic),
		StoredPrompt: fmt.Sprintf("%s (%s)", topic, platform),
	}, nil
}

func NewEmailBrief(req request_models.EmailRequest) (ContentBrief, error) {
	details := firstNonEmpty(req.Details, req.Prompt, req.Text)
	if details == "" {
		return ContentBrief{}, fmt.Errorf("%w: missing details/prompt/text", utils.ErrValidationFailed)
	}

	subject := firstNonEmpty(req.Subject, defaultEmailSubject)
	return ContentBrief{
		Kind:         db_models.KindEmail,
		UserMessage:  fmt.Sprintf("Write an email.\n\nSubject idea: %s\n\nContext/details:\n%s", subject, details),
		StoredPrompt: subject,
	}, nil
}

// Messages composes the role-tagged payload for the generation collaborator.
func (b ContentBrief) Messages(directives []string) []utils.ChatMessage {
	return []utils.ChatMessage{
		{Role: utils.RoleSystem, Content: SystemPrompt(b.Kind, b.Platform, directives)},
		{Role: utils.RoleUser, Content: b.UserMessage},
	}
}

func (b ContentBrief) validate() error {
	if _, ok := kindInstructions[b.Kind]; !ok {
		return fmt.Errorf("%w: unknown content kind %q", utils.ErrValidationFailed, b.Kind)
	}
	if strings.TrimSpace(b.UserMessage) == "" {
		return fmt.Errorf("%w: empty request", utils.ErrValidationFailed)
	}
	return nil
}
