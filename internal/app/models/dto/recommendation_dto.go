package dto

// RecommendationErrorResponse is returned when recommendations cannot be produced.
// The shape matches what the portal's recommendation widget already understands.
type RecommendationErrorResponse struct {
	Error            string `json:"error" example:"Profile not completed"`
	Message          string `json:"message" example:"Please complete your profile first"`
	TechnicalDetails string `json:"technicalDetails,omitempty"`
	HTTPCode         int    `json:"httpCode,omitempty"`
	Response         string `json:"response,omitempty"`
}

// ScoringHealthResponse reports the scoring service health
type ScoringHealthResponse struct {
	Success           bool   `json:"success"`
	Status            string `json:"status" example:"healthy"`
	InternshipsLoaded int    `json:"internshipsLoaded" example:"12"`
}
