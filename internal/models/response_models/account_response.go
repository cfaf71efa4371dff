package response_models

type AccountResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	SubscriptionTier string `json:"subscription_plan"`
}

type ProfileResponse struct {
	FullName         string `json:"full_name"`
	CompanyName      string `json:"company_name"`
	CompanyWebsite   string `json:"company_website"`
	Title            string `json:"title"`
	BrandTone        string `json:"brand_tone"`
	Industry         string `json:"industry"`
	BrandDescription string `json:"brand_description"`
	TargetAudience   string `json:"target_audience"`
	Signature        string `json:"signature"`
	WritingStyle     string `json:"writing_style"`

	UseEmojis       bool   `json:"use_emojis"`
	UseHashtags     bool   `json:"use_hashtags"`
	LengthPref      string `json:"length_pref"`
	CreativityLevel int    `json:"creativity_level"`
	CTAStyle        string `json:"cta_style"`
}
