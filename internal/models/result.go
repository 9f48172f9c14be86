package models

import "time"

// AnalyzeTextRequest is the JSON body for POST /api/v1/analyze when the
// documents are supplied as plain text instead of uploaded files.
type AnalyzeTextRequest struct {
	ResumeText         string `json:"resume_text"`
	JobDescriptionText string `json:"job_description_text"`
}

// AnalyzeResponse wraps the report with request-scoped metadata. The
// envelope fields vary per request; the Report itself does not.
type AnalyzeResponse struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Report      *Report   `json:"report"`
}
