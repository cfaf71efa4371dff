package response_models

type GenerationResponse struct {
	Output string `json:"output"`
	Used   int    `json:"used"`
	Limit  *int   `json:"limit"`
}

type ArtifactResponse struct {
	ID          string `json:"id"`
	ContentKind string `json:"content_type"`
	Prompt      string `json:"prompt"`
	Result      string `json:"result"`
	CreatedAt   int64  `json:"created_at"`
}
