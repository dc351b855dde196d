package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/stuath/internal/app"
	"github.com/alexanderramin/stuath/internal/db"
	"github.com/alexanderramin/stuath/internal/repository"
)

type resetService struct {
	uow      db.UnitOfWork
	session  *app.Session
	observer UseCaseObserver
}

func NewResetService(uow db.UnitOfWork, session *app.Session, observers ...UseCaseObserver) ResetService {
	return &resetService{uow: uow, session: session, observer: useCaseObserverOrNoop(observers)}
}

func (s *resetService) Reset(ctx context.Context) (removed int, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "reset",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"removed_keys": removed},
		})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		kv := repository.NewSQLiteKVStore(tx)
		keys, err := kv.Keys(ctx)
		if err != nil {
			return err
		}
		for _, k := range keys {
			if err := kv.Delete(ctx, k); err != nil {
				return fmt.Errorf("resetting %s: %w", k, err)
			}
		}
		removed = len(keys)
		return nil
	})
	if err != nil {
		removed = 0
		return 0, err
	}

	s.session.Clear()
	return removed, nil
}
