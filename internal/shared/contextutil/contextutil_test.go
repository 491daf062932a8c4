package contextutil_test

import (
	"context"
	"testing"

	"go-hris-web/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMetadataRoundTrip(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "REQ-1")
	ctx = contextutil.WithSessionID(ctx, "sess-1")

	md := contextutil.ExtractMetadata(ctx)
	assert.Equal(t, "REQ-1", md.RequestID)
	assert.Equal(t, "sess-1", md.SessionID)
	assert.Len(t, md.Fields(), 2)
}

func TestMetadataFields_SkipsEmpty(t *testing.T) {
	md := contextutil.ExtractMetadata(contextutil.WithRequestID(context.Background(), "REQ-2"))

	fields := md.Fields()
	if assert.Len(t, fields, 1) {
		assert.Equal(t, "request_id", fields[0].Key)
		assert.Equal(t, "REQ-2", fields[0].String)
	}
}

func TestGetLogger_Fallbacks(t *testing.T) {
	def := zap.NewExample()
	assert.Same(t, def, contextutil.GetLogger(context.Background(), def))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))

	scoped := zap.NewNop()
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, def))
}
