// Package checkout runs the confirm-reservation workflow: one booking
// request per selected unit, dispatched concurrently with fail-fast
// semantics. The flow is a fixed pipeline of named steps; the first failing
// step aborts it.
package checkout

import (
	"context"
	"fmt"
	"skydesk/internal/floor"
	"skydesk/internal/session"
	apperrors "skydesk/pkg/errors"
	"skydesk/pkg/logger"
	"skydesk/pkg/model"
	"sync"

	"golang.org/x/sync/errgroup"
)

// SeatBooker issues one booking-creation request.
type SeatBooker interface {
	BookSeat(ctx context.Context, req model.BookSeatRequest) error
}

// Result reports the per-unit outcome of a submission. On a failed run,
// units listed in Booked may already be persisted server-side; the client
// performs no compensating cancellation.
type Result struct {
	Booked []string
	Failed map[string]error
}

type step struct {
	name    string
	execute func(ctx context.Context, fc *flowContext) error
}

// flowContext carries state between steps of one submission.
type flowContext struct {
	userID int
	units  []model.Unit
	result *Result
}

type Workflow struct {
	booker        SeatBooker
	reconciler    *floor.Reconciler
	sess          *session.Session
	log           *logger.Logger
	maxConcurrent int

	// Guards against re-entrant submission while one is in flight. The
	// workflow runs on a single actor, so a plain flag suffices.
	inFlight bool
}

func NewWorkflow(
	booker SeatBooker,
	reconciler *floor.Reconciler,
	sess *session.Session,
	log *logger.Logger,
	maxConcurrent int,
) *Workflow {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Workflow{
		booker:        booker,
		reconciler:    reconciler,
		sess:          sess,
		log:           log,
		maxConcurrent: maxConcurrent,
	}
}

// ConfirmReservation submits every selected unit as an independent booking
// request. It succeeds only if all requests succeed; on success the
// selection is cleared. The returned Result is non-nil whenever the
// dispatch step ran, so callers can report partial persistence.
func (w *Workflow) ConfirmReservation(ctx context.Context) (*Result, error) {
	if w.inFlight {
		return nil, apperrors.SubmissionInFlight()
	}
	w.inFlight = true
	defer func() { w.inFlight = false }()

	fc := &flowContext{
		result: &Result{Failed: map[string]error{}},
	}

	for _, s := range w.steps() {
		if err := s.execute(ctx, fc); err != nil {
			w.log.Error("Reservation flow aborted", "step", s.name, "error", err)
			return fc.result, fmt.Errorf("%s step failed: %w", s.name, err)
		}
		w.log.Debug("Reservation step completed", "step", s.name)
	}

	w.log.Info("Reservation confirmed", "user_id", fc.userID, "units", len(fc.result.Booked))
	return fc.result, nil
}

func (w *Workflow) steps() []step {
	return []step{
		{name: "require-session", execute: w.requireSession},
		{name: "verify-selection", execute: w.verifySelection},
		{name: "dispatch-bookings", execute: w.dispatchBookings},
		{name: "clear-selection", execute: w.clearSelection},
	}
}

func (w *Workflow) requireSession(ctx context.Context, fc *flowContext) error {
	userID, err := w.sess.RequireUser()
	if err != nil {
		return err
	}
	fc.userID = userID
	return nil
}

func (w *Workflow) verifySelection(ctx context.Context, fc *flowContext) error {
	selection := w.reconciler.Selection()
	if len(selection) == 0 {
		return apperrors.InvalidInput("nothing selected")
	}
	for _, unit := range selection {
		if state := w.reconciler.Classify(unit.ID); state.Status == floor.StatusOccupied {
			return apperrors.UnitOccupied(unit.ID)
		}
	}
	fc.units = selection
	return nil
}

// dispatchBookings fans out one POST per unit. The first failure cancels the
// group context; requests already in flight may still land server-side,
// which is recorded in the result rather than rolled back.
func (w *Workflow) dispatchBookings(ctx context.Context, fc *flowContext) error {
	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(w.maxConcurrent)

	for _, unit := range fc.units {
		group.Go(func() error {
			req := model.BookSeatRequest{
				UserID:   fc.userID,
				UnitID:   unit.ID,
				UnitType: unit.Category,
				Price:    float64(unit.BasePrice),
			}

			err := w.booker.BookSeat(groupCtx, req)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				fc.result.Failed[unit.ID] = err
				return err
			}
			fc.result.Booked = append(fc.result.Booked, unit.ID)
			return nil
		})
	}

	return group.Wait()
}

func (w *Workflow) clearSelection(ctx context.Context, fc *flowContext) error {
	w.reconciler.ClearSelection()
	return nil
}
