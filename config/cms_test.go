package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCMS(t *testing.T) {
	t.Run("ReadsEnvironmentMap", func(t *testing.T) {
		cfg := NewCMS(map[string]string{
			"SANITY_PROJECT_ID": "abc123",
			"SANITY_DATASET":    "production",
			"SANITY_API_TOKEN":  "tok",
			"DRAFT_MODE_SECRET": "s3cret",
		})

		assert.Equal(t, "abc123", cfg.ProjectID)
		assert.Equal(t, "production", cfg.Dataset)
		assert.Equal(t, "tok", cfg.Token)
		assert.Equal(t, "s3cret", cfg.DraftSecret)
	})

	t.Run("APIVersionDefaults", func(t *testing.T) {
		cfg := NewCMS(map[string]string{})
		assert.Equal(t, defaultAPIVersion, cfg.APIVersion)
	})
}

func TestCMSValidate(t *testing.T) {
	valid := CMS{ProjectID: "abc123", Dataset: "production", APIVersion: defaultAPIVersion}

	t.Run("ValidConfig", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("MissingProjectID", func(t *testing.T) {
		cfg := valid
		cfg.ProjectID = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SANITY_PROJECT_ID")
	})

	t.Run("MissingDataset", func(t *testing.T) {
		cfg := valid
		cfg.Dataset = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SANITY_DATASET")
	})

	t.Run("TokenAndSecretAreOptional", func(t *testing.T) {
		assert.NoError(t, valid.Validate(), "missing token degrades preview at request time, not startup")
	})
}
