package response_models

type DocumentResponse struct {
	Layout   string `json:"layout"`
	Lang     string `json:"lang"`
	Markdown string `json:"markdown"`
	Edited   bool   `json:"edited"`
}
