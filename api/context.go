package api

import (
	"context"
)

type keyType string

const (
	previewKey   keyType = "preview"
	requestIDKey keyType = "requestID"
)

// ctxWithPreview records whether draft-mode reads are enabled for this
// request.
func ctxWithPreview(ctx context.Context, preview bool) context.Context {
	return context.WithValue(ctx, previewKey, preview)
}

// ctxPreview reports the draft-mode flag; absent means published reads.
func ctxPreview(ctx context.Context) bool {
	preview, ok := ctx.Value(previewKey).(bool)
	return ok && preview
}

func ctxWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func ctxRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey).(string)
	return requestID
}
