package app

import (
	"context"
	"io"

	"github.com/alexanderramin/stuath/internal/domain"
)

type SubmitUseCase interface {
	Submit(ctx context.Context, req SubmitRequest) (*SubmitResponse, error)
}

type RegenerateUseCase interface {
	Regenerate(ctx context.Context) (*SubmitResponse, error)
}

type ExportUseCase interface {
	Write(ctx context.Context, w io.Writer, r *domain.DerivedResult) error
	WriteFile(ctx context.Context, path string, r *domain.DerivedResult) (string, error)
}
