// Package jobs runs the delayed, one-shot notification tasks fired on
// booking status transitions. Jobs are fire-and-forget: scheduling returns
// immediately, a job re-reads state when it fires, and a failed job is
// logged and dropped (at-most-once delivery, no retry).
package jobs

import (
	"context"
	"fmt"
	"time"

	"bike-service/internal/data/entity"
	"bike-service/internal/data/repository"
	"bike-service/internal/metrics"
	"bike-service/pkg/mailer"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type JobKind string

const (
	JobMechanicAssigned JobKind = "mechanic_assigned"
	JobInProgress       JobKind = "in_progress"
	JobCompleted        JobKind = "completed"
)

type Dispatcher struct {
	repo *repository.Repository
	mail mailer.Mailer
	log  *zap.Logger
}

func NewDispatcher(repo *repository.Repository, mail mailer.Mailer, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		repo: repo,
		mail: mail,
		log:  log.With(zap.String("component", "dispatcher")),
	}
}

// Schedule enqueues one delayed notification job. The request path never
// blocks on it and cannot observe its outcome.
func (d *Dispatcher) Schedule(kind JobKind, bookingID uuid.UUID, delay time.Duration) {
	d.log.Info("Notification job scheduled",
		zap.String("kind", string(kind)),
		zap.String("booking_id", bookingID.String()),
		zap.Duration("delay", delay),
	)

	time.AfterFunc(delay, func() {
		d.run(kind, bookingID)
	})
}

// run executes a job at fire time. All state is re-read here, never carried
// from enqueue time. Missing records and missing email addresses end the job
// silently; delivery failures are logged and dropped.
func (d *Dispatcher) run(kind JobKind, bookingID uuid.UUID) {
	ctx := context.Background()

	booking, err := d.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		d.logFailure(kind, bookingID, err)
		return
	}
	if booking == nil {
		metrics.IncNotificationJob(string(kind), "skipped")
		return
	}

	user, err := d.repo.User.FindByID(ctx, booking.UserID)
	if err != nil {
		d.logFailure(kind, bookingID, err)
		return
	}
	if user == nil || user.Email == "" {
		metrics.IncNotificationJob(string(kind), "skipped")
		return
	}

	subject, body, err := d.buildMessage(ctx, kind, booking)
	if err != nil {
		d.logFailure(kind, bookingID, err)
		return
	}
	if subject == "" {
		metrics.IncNotificationJob(string(kind), "skipped")
		return
	}

	if err := d.mail.Send(user.Email, subject, body); err != nil {
		d.logFailure(kind, bookingID, err)
		return
	}

	metrics.IncNotificationJob(string(kind), "sent")
	d.log.Info("Notification email sent",
		zap.String("kind", string(kind)),
		zap.String("booking_id", bookingID.String()),
		zap.String("to", user.Email),
	)
}

// buildMessage renders the subject and HTML body for a job kind. An empty
// subject means the job has nothing to send and should exit silently.
func (d *Dispatcher) buildMessage(ctx context.Context, kind JobKind, booking *entity.Booking) (string, string, error) {
	switch kind {
	case JobMechanicAssigned:
		if booking.MechanicID == nil {
			return "", "", nil
		}
		mechanic, err := d.repo.Mechanic.FindByID(ctx, *booking.MechanicID)
		if err != nil {
			return "", "", err
		}
		if mechanic == nil {
			return "", "", nil
		}

		body := "<p>Dear User,</p>" +
			"<p>Your bike servicing has been assigned to a mechanic.</p>" +
			fmt.Sprintf("<p><strong>Mechanic Name: %s</strong></p>", mechanic.Name) +
			fmt.Sprintf("<p><strong>Mechanic Phone: %s</strong></p>", mechanic.PhoneNumber) +
			"<p>We will notify you once the service begins and is completed.</p>" +
			"<p>Regards,<br/>Ride Revive</p>"
		return "Bike Servicing Assigned to Mechanic", body, nil

	case JobInProgress:
		body := "<p>Dear User,</p>" +
			"<p>Your bike servicing is in progress.</p>" +
			"<p>Regards,<br/>Ride Revive</p>"
		return "Bike Servicing In Progress", body, nil

	case JobCompleted:
		// The rendered amount is the persisted total, never recomputed.
		var total float64
		if booking.Total != nil {
			total = *booking.Total
		}

		body := "<p>Dear User,</p>" +
			"<p>Your bike servicing has been completed.</p>" +
			fmt.Sprintf("<p><strong>Total Amount: %.2f</strong></p>", total) +
			"<p>Regards,<br/>Ride Revive</p>"
		return "Bike Servicing Completed", body, nil

	default:
		return "", "", fmt.Errorf("unknown job kind %q", kind)
	}
}

func (d *Dispatcher) logFailure(kind JobKind, bookingID uuid.UUID, err error) {
	metrics.IncNotificationJob(string(kind), "failed")
	d.log.Error("Notification job failed",
		zap.Error(err),
		zap.String("kind", string(kind)),
		zap.String("booking_id", bookingID.String()),
	)
}
