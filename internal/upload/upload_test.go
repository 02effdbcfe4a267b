package upload

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestUploadAcceptsImage(t *testing.T) {
	svc := NewService(Options{BaseURL: "https://cdn.test/"})

	res, err := svc.Upload(context.Background(), "logo.png", bytes.NewReader(pngHeader))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.URL, "https://cdn.test/uploads/"))
	assert.True(t, strings.HasSuffix(res.URL, ".png"))
	assert.Equal(t, "image/png", res.ContentType)
	assert.Equal(t, int64(len(pngHeader)), res.Size)
}

func TestUploadRejects(t *testing.T) {
	svc := NewService(Options{MaxBytes: 16})

	tests := []struct {
		name string
		body []byte
		err  error
	}{
		{"empty", nil, ErrEmptyFile},
		{"too large", bytes.Repeat([]byte("a"), 17), ErrFileTooLarge},
		{"plain text", []byte("hello"), ErrUnsupportedType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upload(context.Background(), "f", bytes.NewReader(tt.body))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestUploadDelayHonorsCancellation(t *testing.T) {
	svc := NewService(Options{Delay: time.Minute})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Upload(ctx, "logo.png", bytes.NewReader(pngHeader))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDefaultMaxBytes(t *testing.T) {
	assert.Equal(t, int64(5<<20), NewService(Options{}).MaxBytes())
}
