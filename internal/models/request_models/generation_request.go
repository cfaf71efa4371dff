package request_models

// AdRequest accepts either prompt/text or product+audience.
type AdRequest struct {
	Product  string `json:"product"`
	Audience string `json:"audience"`
	Prompt   string `json:"prompt"`
	Text     string `json:"text"`
}

type PostRequest struct {
	Topic    string `json:"topic"`
	Prompt   string `json:"prompt"`
	Text     string `json:"text"`
	Platform string `json:"platform"`
}

// EmailRequest accepts subject/details or prompt/text.
type EmailRequest struct {
	Subject string `json:"subject"`
	Details string `json:"details"`
	Prompt  string `json:"prompt"`
	Text    string `json:"text"`
}
