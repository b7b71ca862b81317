package models

// OutboundMessageRequest is a text pushed to a staff number, either through the API or by
// a scheduled report.
type OutboundMessageRequest struct {
	To         string `json:"to" binding:"required"`
	Message    string `json:"message" binding:"required"`
	PreviewURL bool   `json:"preview_url"`
}
