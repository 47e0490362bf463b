package request_models

type CreateSessionRequest struct {
	Lang string `json:"lang"`
}

type LocationFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type SelectImageRequest struct {
	Location string `json:"location" binding:"required"`
	URL      string `json:"url" binding:"required"`
}

type EditIntroductionRequest struct {
	Location string `json:"location" binding:"required"`
	Text     string `json:"text"`
}

type UpdateDocumentRequest struct {
	Markdown string `json:"markdown" binding:"required"`
}
