package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrFileTooLarge    = errors.New("file is too large")
	ErrUnsupportedType = errors.New("unsupported file type")
)

var allowedTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/gif",
	"image/svg+xml",
}

type Options struct {
	MaxBytes int64
	Delay    time.Duration
	BaseURL  string
}

// Result describe el archivo "subido"; la URL es inventada y el archivo no se guarda
type Result struct {
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Service simula un endpoint de subida con una espera artificial
type Service struct {
	opts Options
}

func NewService(opts Options) *Service {
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = 5 << 20
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	return &Service{opts: opts}
}

func (s *Service) MaxBytes() int64 { return s.opts.MaxBytes }

func (s *Service) Upload(ctx context.Context, filename string, r io.Reader) (Result, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.opts.MaxBytes+1))
	if err != nil {
		return Result{}, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return Result{}, ErrEmptyFile
	}
	if int64(len(data)) > s.opts.MaxBytes {
		return Result{}, ErrFileTooLarge
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedTypes...) {
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedType, mtype.String())
	}

	if s.opts.Delay > 0 {
		select {
		case <-time.After(s.opts.Delay):
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}

	result := Result{
		URL:         fmt.Sprintf("%s/uploads/%s%s", s.opts.BaseURL, uuid.NewString(), mtype.Extension()),
		Filename:    filename,
		ContentType: mtype.String(),
		Size:        int64(len(data)),
	}
	zap.L().Info("upload accepted",
		zap.String("filename", filename),
		zap.String("content_type", result.ContentType),
		zap.Int64("size", result.Size))
	return result, nil
}
