package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
)

// Outcome is the result class of one schedule in a pass.
type Outcome string

const (
	OutcomeSent    Outcome = "sent"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// Result is the outcome of evaluating one schedule.
type Result struct {
	ScheduleID uuid.UUID         `json:"schedule_id"`
	UserID     uuid.UUID         `json:"user_id"`
	Outcome    Outcome           `json:"outcome"`
	Reason     domain.SkipReason `json:"reason,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// Report folds the results of one evaluation pass.
type Report struct {
	Evaluated int      `json:"evaluated"`
	Sent      int      `json:"sent"`
	Skipped   int      `json:"skipped"`
	Failed    int      `json:"failed"`
	Results   []Result `json:"results"`
}

func (r *Report) add(res Result) {
	r.Evaluated++
	switch res.Outcome {
	case OutcomeSent:
		r.Sent++
	case OutcomeSkipped:
		r.Skipped++
	case OutcomeFailed:
		r.Failed++
	}
	r.Results = append(r.Results, res)
}

// Run evaluates every active schedule against now and sends the due reminders.
// Schedules are isolated: one failure is recorded in the report and never aborts
// the others. The only pass-level error is failing to load schedules.
//
// Delivery is best-effort. A send is claimed with a conditional write on
// last_sent_at before the email goes out, so overlapping passes do not both
// send; a crash between claim and send loses that reminder.
func (s *Service) Run(ctx context.Context, now time.Time) (Report, error) {
	schedules, bad, err := s.reminders.ListActive(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("load schedules: %w", err)
	}

	results := make([]Result, len(schedules))
	var g errgroup.Group
	g.SetLimit(s.cfg.Concurrency)
	for i, sch := range schedules {
		g.Go(func() error {
			results[i] = s.evaluate(ctx, sch, now)
			return nil
		})
	}
	_ = g.Wait()

	report := Report{Results: make([]Result, 0, len(results)+len(bad))}
	for _, e := range bad {
		report.add(Result{Outcome: OutcomeFailed, Error: e.Error()})
	}
	for _, res := range results {
		report.add(res)
	}

	s.log.InfoContext(ctx, "reminder pass complete",
		slog.Time("now", now),
		slog.Int("evaluated", report.Evaluated),
		slog.Int("sent", report.Sent),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
	)
	return report, nil
}

func (s *Service) evaluate(ctx context.Context, sch *domain.ReminderSchedule, now time.Time) (res Result) {
	res = Result{ScheduleID: sch.ID, UserID: sch.UserID}
	fail := func(err error) Result {
		s.log.WarnContext(ctx, "reminder failed",
			slog.String("schedule_id", sch.ID.String()),
			slog.String("error", err.Error()),
		)
		res.Outcome = OutcomeFailed
		res.Error = err.Error()
		return res
	}

	var holding bool
	release := func() {
		holding = false
		if err := s.reminders.ReleaseSend(ctx, sch.ID, now, sch.LastSentAt); err != nil {
			s.log.ErrorContext(ctx, "release reminder claim",
				slog.String("schedule_id", sch.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	// A panic in one schedule must not take down the pass.
	defer func() {
		if p := recover(); p != nil {
			s.log.ErrorContext(ctx, "reminder panicked",
				slog.String("schedule_id", sch.ID.String()),
				slog.Any("panic", p),
				slog.String("stack", string(debug.Stack())),
			)
			if holding {
				release()
			}
			res = fail(fmt.Errorf("panic: %v", p))
		}
	}()

	reason, err := sch.Eligibility(now, s.cfg.Window, s.cfg.Dedupe)
	if err != nil {
		return fail(err)
	}
	if reason != domain.SkipNone {
		res.Outcome = OutcomeSkipped
		res.Reason = reason
		return res
	}

	msg, err := s.message(sch)
	if err != nil {
		return fail(err)
	}

	claimed, err := s.reminders.ClaimSend(ctx, sch.ID, sch.LastSentAt, now)
	if err != nil {
		return fail(fmt.Errorf("claim send: %w", err))
	}
	if !claimed {
		res.Outcome = OutcomeSkipped
		res.Reason = domain.SkipClaimed
		return res
	}
	holding = true

	if err := s.mail.Send(ctx, msg); err != nil {
		release()
		return fail(fmt.Errorf("send: %w", err))
	}
	holding = false

	s.log.InfoContext(ctx, "reminder sent",
		slog.String("schedule_id", sch.ID.String()),
		slog.String("user_id", sch.UserID.String()),
	)
	res.Outcome = OutcomeSent
	return res
}
