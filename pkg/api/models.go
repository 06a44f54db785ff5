package api

type AnalyzeRequest struct {
	UserAgent *string `json:"user_agent"`
}

type AnalyzeParams struct {
	UserAgent string `schema:"user_agent"`
}

type AnalyzeResponse struct {
	UserAgent string `json:"user_agent"`
	Decision  string `json:"decision"`
}
