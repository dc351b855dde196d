package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/stuath/internal/app"
	"github.com/alexanderramin/stuath/internal/domain"
	"github.com/alexanderramin/stuath/internal/intake"
	"github.com/alexanderramin/stuath/internal/repository"
	"github.com/alexanderramin/stuath/internal/testutil"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

type fixture struct {
	db       *sql.DB
	kv       *repository.SQLiteKVStore
	profiles repository.ProfileRepo
	session  *app.Session
	observer *recordingObserver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	kv := repository.NewSQLiteKVStore(database)
	return &fixture{
		db:       database,
		kv:       kv,
		profiles: repository.NewKVProfileRepo(kv),
		session:  app.NewSession(),
		observer: &recordingObserver{},
	}
}

func (f *fixture) derivation(opts DerivationOptions) DerivationService {
	return NewDerivationService(f.profiles, f.session, nil, opts, f.observer)
}

// athleteForm is a complete submission with one malformed class line.
func athleteForm() intake.Form {
	form := intake.FormFromProfile(testutil.NewTestProfile("Jordan",
		testutil.WithClasses("Math 101 - Mon 9:00 AM", "Chemistry Tue 10:00 AM"),
		testutil.WithFocus(domain.FocusAcademic),
	))
	return form
}
