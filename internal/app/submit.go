package app

import (
	"time"

	"github.com/alexanderramin/stuath/internal/domain"
	"github.com/alexanderramin/stuath/internal/intake"
	"github.com/alexanderramin/stuath/internal/scheduler"
)

type SubmitRequest struct {
	Form intake.Form
	// SkipDelay drops the loading delay, e.g. for --no-delay or piped output.
	SkipDelay bool
	// OnPending is called once the profile is saved and the wait begins.
	OnPending func(Ticket)
}

func NewSubmitRequest(form intake.Form) SubmitRequest {
	return SubmitRequest{Form: form}
}

type SubmitResponse struct {
	GeneratedAt time.Time
	Ticket      Ticket
	Result      *domain.DerivedResult
	Dropped     []scheduler.Dropped
	Summary     ResultSummary
}

type SubmitErrorCode string

const (
	SubmitErrPersist    SubmitErrorCode = "PERSIST_FAILED"
	SubmitErrCancelled  SubmitErrorCode = "CANCELLED"
	SubmitErrSuperseded SubmitErrorCode = "SUPERSEDED"
	SubmitErrNoProfile  SubmitErrorCode = "NO_SAVED_PROFILE"
)

type SubmitError struct {
	Code    SubmitErrorCode
	Message string
	Err     error
}

func (e *SubmitError) Error() string {
	if e.Err != nil {
		return string(e.Code) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Code) + ": " + e.Message
}

func (e *SubmitError) Unwrap() error { return e.Err }
