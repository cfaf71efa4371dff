package request_models

// ProfileUpdateRequest replaces the whole profile. Omitted personality fields take their defaults.
type ProfileUpdateRequest struct {
	FullName         string `json:"full_name" validate:"max=120"`
	CompanyName      string `json:"company_name" validate:"max=120"`
	CompanyWebsite   string `json:"company_website" validate:"omitempty,url"`
	Title            string `json:"title" validate:"max=120"`
	BrandTone        string `json:"brand_tone" validate:"max=200"`
	Industry         string `json:"industry" validate:"max=120"`
	BrandDescription string `json:"brand_description" validate:"max=2000"`
	TargetAudience   string `json:"target_audience" validate:"max=500"`
	Signature        string `json:"signature" validate:"max=1000"`
	WritingStyle     string `json:"writing_style" validate:"max=200"`

	UseEmojis       *bool  `json:"use_emojis"`
	UseHashtags     *bool  `json:"use_hashtags"`
	LengthPref      string `json:"length_pref" validate:"omitempty,oneof=short medium long"`
	CreativityLevel *int   `json:"creativity_level" validate:"omitempty,min=1,max=10"`
	CTAStyle        string `json:"cta_style" validate:"omitempty,oneof=soft balanced aggressive"`
}
