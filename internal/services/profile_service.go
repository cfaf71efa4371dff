package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"autopilot/internal/models/db_models"
	"autopilot/internal/models/request_models"
	"autopilot/internal/models/response_models"
	"autopilot/internal/repositories"
	"autopilot/pkg/utils"
)

type ProfileService interface {
	GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, req request_models.ProfileUpdateRequest) (*response_models.ProfileResponse, error)
}

type profileService struct {
	accountRepo repositories.AccountRepository
	profileRepo repositories.ProfileRepository
	validate    *validator.Validate
	logger      *zap.Logger
}

func NewProfileService(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	validate *validator.Validate,
	logger *zap.Logger,
) ProfileService {
	return &profileService{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		validate:    validate,
		logger:      logger.Named("profile"),
	}
}

// GetProfile never fails for a missing profile; the defaults are returned instead.
func (s *profileService) GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if profile == nil {
		def := db_models.DefaultPreferenceProfile()
		profile = &def
	}
	return toProfileResponse(profile), nil
}

func (s *profileService) UpdateProfile(ctx context.Context, accountID uuid.UUID, req request_models.ProfileUpdateRequest) (*response_models.ProfileResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", utils.ErrInvalidProfile, describeValidation(err))
	}

	account, err := s.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	profile := profileFromRequest(req)
	profile.AccountID = account.ID

	created, err := s.profileRepo.Upsert(ctx, &profile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	s.logger.Info("profile saved", zap.String("account_id", account.ID.String()), zap.Bool("created", created))
	return toProfileResponse(&profile), nil
}

func profileFromRequest(req request_models.ProfileUpdateRequest) db_models.PreferenceProfile {
	p := db_models.DefaultPreferenceProfile()

	p.FullName = strings.TrimSpace(req.FullName)
	p.CompanyName = strings.TrimSpace(req.CompanyName)
	p.CompanyWebsite = strings.TrimSpace(req.CompanyWebsite)
	p.Title = strings.TrimSpace(req.Title)
	p.BrandTone = strings.TrimSpace(req.BrandTone)
	p.Industry = strings.TrimSpace(req.Industry)
	p.BrandDescription = strings.TrimSpace(req.BrandDescription)
	p.TargetAudience = strings.TrimSpace(req.TargetAudience)
	p.Signature = strings.TrimSpace(req.Signature)
	p.WritingStyle = strings.TrimSpace(req.WritingStyle)

	if req.UseEmojis != nil {
		p.UseEmojis = *req.UseEmojis
	}
	if req.UseHashtags != nil {
		p.UseHashtags = *req.UseHashtags
	}
	if req.LengthPref != "" {
		p.LengthPreference = db_models.LengthPreference(req.LengthPref)
	}
	if req.CTAStyle != "" {
		p.CTAStyle = db_models.CTAStyle(req.CTAStyle)
	}
	if req.CreativityLevel != nil {
		p.CreativityLevel = *req.CreativityLevel
	}
	return p
}

func toProfileResponse(p *db_models.PreferenceProfile) *response_models.ProfileResponse {
	return &response_models.ProfileResponse{
		FullName:         p.FullName,
		CompanyName:      p.CompanyName,
		CompanyWebsite:   p.CompanyWebsite,
		Title:            p.Title,
		BrandTone:        p.BrandTone,
		Industry:         p.Industry,
		BrandDescription: p.BrandDescription,
		TargetAudience:   p.TargetAudience,
		Signature:        p.Signature,
		WritingStyle:     p.WritingStyle,
		UseEmojis:        p.UseEmojis,
		UseHashtags:      p.UseHashtags,
		LengthPref:       string(p.LengthPreference),
		CreativityLevel:  clampCreativity(p.CreativityLevel),
		CTAStyle:         string(p.CTAStyle),
	}
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
