package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestWith_BindsAttributes(t *testing.T) {
	// Given
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil)).With("request_id", "req-1")
	ctx := WithLogger(context.Background(), base)

	// When
	ctx = With(ctx, "preset", "amex")
	FromContext(ctx).Info("masked", "card", MaskCard("378282246310005"))

	// Then
	out := buf.String()
	assert.Contains(t, out, "request_id=req-1")
	assert.Contains(t, out, "preset=amex")
	assert.Contains(t, out, "card=****0005")
	assert.NotContains(t, out, "378282246310005")
}
