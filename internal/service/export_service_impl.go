package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/stuath/internal/app"
	"github.com/alexanderramin/stuath/internal/domain"
	"github.com/alexanderramin/stuath/internal/export"
)

type exportService struct {
	session  *app.Session
	observer UseCaseObserver
}

func NewExportService(session *app.Session, observers ...UseCaseObserver) ExportService {
	return &exportService{session: session, observer: useCaseObserverOrNoop(observers)}
}

func (s *exportService) Write(ctx context.Context, w io.Writer, r *domain.DerivedResult) error {
	if r == nil {
		return ErrNoResult
	}
	return export.Encode(w, r)
}

func (s *exportService) WriteFile(ctx context.Context, path string, r *domain.DerivedResult) (written string, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "export",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"path": written},
		})
	}()

	if r == nil {
		return "", ErrNoResult
	}
	return export.WriteFile(path, r)
}

func (s *exportService) WriteCurrent(ctx context.Context, path string) (string, error) {
	r, _, ok := s.session.Current()
	if !ok {
		return "", ErrNoResult
	}
	return s.WriteFile(ctx, path, r)
}
