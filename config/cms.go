package config

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const defaultAPIVersion = "2024-01-01"

// CMS holds everything needed to reach the Sanity content lake: the project
// and dataset addressed by every query, the API version pinned into the
// request path, the read token that unlocks draft content, and the shared
// secret guarding the draft-enable endpoint.
type CMS struct {
	ProjectID   string
	Dataset     string
	APIVersion  string
	Token       string
	DraftSecret string
}

// NewCMS builds a CMS config from the environment map. Token and DraftSecret
// are optional here; their absence degrades draft features at request time
// rather than failing startup.
func NewCMS(c map[string]string) CMS {
	return CMS{
		ProjectID:   GetString(c, "SANITY_PROJECT_ID", ""),
		Dataset:     GetString(c, "SANITY_DATASET", ""),
		APIVersion:  GetString(c, "SANITY_API_VERSION", defaultAPIVersion),
		Token:       GetString(c, "SANITY_API_TOKEN", ""),
		DraftSecret: GetString(c, "DRAFT_MODE_SECRET", ""),
	}
}

// Validate reports the startup-fatal configuration errors: a deployment
// without a project id or dataset cannot issue a single query.
func (c CMS) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ProjectID, validation.Required.Error("SANITY_PROJECT_ID is required")),
		validation.Field(&c.Dataset, validation.Required.Error("SANITY_DATASET is required")),
		validation.Field(&c.APIVersion, validation.Required),
	)
}
