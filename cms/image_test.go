package cms

import (
	"testing"

	"github.com/rpupo63/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageResolver_Resolve(t *testing.T) {
	resolver := NewImageResolver("abc123", "production")

	t.Run("NilReference", func(t *testing.T) {
		assert.Nil(t, resolver.Resolve(nil, "fallback"))
	})

	t.Run("MissingAsset", func(t *testing.T) {
		img := &models.ImageRef{Alt: "some alt"}
		assert.Nil(t, resolver.Resolve(img, "fallback"), "reference without asset should resolve to absent")
	})

	t.Run("EmptyAssetRef", func(t *testing.T) {
		img := &models.ImageRef{Asset: &models.AssetRef{Ref: ""}}
		assert.Nil(t, resolver.Resolve(img, "fallback"))
	})

	t.Run("MalformedAssetRef", func(t *testing.T) {
		img := &models.ImageRef{Asset: &models.AssetRef{Ref: "not-an-image-ref-at-all-extra"}}
		assert.Nil(t, resolver.Resolve(img, "fallback"))
	})

	t.Run("ValidAssetRef", func(t *testing.T) {
		img := &models.ImageRef{
			Asset: &models.AssetRef{Ref: "image-deadbeef-800x600-jpg"},
			Alt:   "A headshot",
		}

		processed := resolver.Resolve(img, "fallback")
		require.NotNil(t, processed)
		assert.Equal(t, "https://cdn.sanity.io/images/abc123/production/deadbeef-800x600.jpg", processed.URL)
		assert.Equal(t, "A headshot", processed.Alt)
	})

	t.Run("AltFallsBackWhenAbsent", func(t *testing.T) {
		img := &models.ImageRef{Asset: &models.AssetRef{Ref: "image-deadbeef-800x600-jpg"}}

		processed := resolver.Resolve(img, "Project screenshot")
		require.NotNil(t, processed)
		assert.Equal(t, "Project screenshot", processed.Alt)
	})

	t.Run("SourceAltWinsOverFallback", func(t *testing.T) {
		img := &models.ImageRef{
			Asset: &models.AssetRef{Ref: "image-deadbeef-800x600-jpg"},
			Alt:   "real alt",
		}

		processed := resolver.Resolve(img, "ignored fallback")
		require.NotNil(t, processed)
		assert.Equal(t, "real alt", processed.Alt)
	})

	t.Run("Deterministic", func(t *testing.T) {
		img := &models.ImageRef{Asset: &models.AssetRef{Ref: "image-deadbeef-800x600-png"}}

		first := resolver.Resolve(img, "x")
		second := resolver.Resolve(img, "x")
		require.NotNil(t, first)
		require.NotNil(t, second)
		assert.Equal(t, first.URL, second.URL, "same asset ref must always yield the same URL")
	})
}
