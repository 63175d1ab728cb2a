package reminder

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	appointmentRepo "petopia/database/repository/appointment"
	"petopia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memAppointmentRepo struct {
	mu    sync.Mutex
	items map[string]*models.Appointment
}

func (r *memAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *appt
	r.items[appt.ID] = &clone
	return nil
}

func (r *memAppointmentRepo) Update(ctx context.Context, appt *models.Appointment) error {
	return r.Create(ctx, appt)
}

func (r *memAppointmentRepo) Delete(ctx context.Context, id string) error { return nil }

func (r *memAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *appt
	return &clone, nil
}

func (r *memAppointmentRepo) GetAll(ctx context.Context) ([]models.Appointment, error) {
	return nil, nil
}

func (r *memAppointmentRepo) GetByOwner(ctx context.Context, ownerID string) ([]models.Appointment, error) {
	return nil, nil
}

func (r *memAppointmentRepo) GetByClinic(ctx context.Context, clinicID string) ([]models.Appointment, error) {
	return nil, nil
}

func (r *memAppointmentRepo) FindConfirmedInWindow(ctx context.Context, from, to time.Time, flag models.ReminderFlag) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, appt := range r.items {
		if appt.Status != models.StatusConfirmed {
			continue
		}
		if appt.Date.Before(from) || !appt.Date.Before(to) {
			continue
		}
		if flag == models.ReminderOneDay && appt.Reminder1DaySent {
			continue
		}
		if flag == models.ReminderFiveHours && appt.Reminder5HourSent {
			continue
		}
		out = append(out, *appt)
	}
	return out, nil
}

func (r *memAppointmentRepo) MarkReminderSent(ctx context.Context, id string, flag models.ReminderFlag) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.items[id]
	if !ok {
		return appointmentRepo.ErrNotFound
	}
	switch flag {
	case models.ReminderOneDay:
		appt.Reminder1DaySent = true
	case models.ReminderFiveHours:
		appt.Reminder5HourSent = true
	}
	return nil
}

type memOwnerRepo struct{ items map[string]*models.Owner }

func (r *memOwnerRepo) GetByID(ctx context.Context, id string) (*models.Owner, error) {
	owner, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *owner
	return &clone, nil
}

type memGuestRepo struct{ items map[string]*models.Guest }

func (r *memGuestRepo) Create(ctx context.Context, guest *models.Guest) error { return nil }

func (r *memGuestRepo) GetByID(ctx context.Context, id string) (*models.Guest, error) {
	guest, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *guest
	return &clone, nil
}

func (r *memGuestRepo) GetByEmail(ctx context.Context, email string) (*models.Guest, error) {
	return nil, nil
}

func (r *memGuestRepo) AppendAppointment(ctx context.Context, guestID, appointmentID string) error {
	return nil
}

type memCatalogRepo struct{ clinics map[string]*models.Clinic }

func (r *memCatalogRepo) GetClinicByID(ctx context.Context, id string) (*models.Clinic, error) {
	clinic, ok := r.clinics[id]
	if !ok {
		return nil, nil
	}
	clone := *clinic
	return &clone, nil
}

func (r *memCatalogRepo) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	return nil, nil
}

type reminderCall struct {
	to      string
	details models.ReminderEmail
}

type memNotifier struct {
	mu   sync.Mutex
	sent []reminderCall
	err  error
}

func (n *memNotifier) SendOTP(ctx context.Context, email, code string) error { return nil }

func (n *memNotifier) SendBookingConfirmation(ctx context.Context, email string, details models.AppointmentEmail, receipt []byte) error {
	return nil
}

func (n *memNotifier) SendStatusUpdate(ctx context.Context, email string, details models.AppointmentEmail, status models.AppointmentStatus, receipt []byte) error {
	return nil
}

func (n *memNotifier) SendClinicFollowUp(ctx context.Context, email string, details models.FollowUpEmail, receipt []byte) error {
	return nil
}

func (n *memNotifier) SendReminder(ctx context.Context, email string, details models.ReminderEmail) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, reminderCall{to: email, details: details})
	return n.err
}

var sweepNow = time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC)

func newSweeper(repo *memAppointmentRepo, notifier *memNotifier) *Sweeper {
	return &Sweeper{
		Appointments: repo,
		Owners: &memOwnerRepo{items: map[string]*models.Owner{
			"owner-1": {ID: "owner-1", FirstName: "Alice", Email: "alice@example.test"},
		}},
		Guests: &memGuestRepo{items: map[string]*models.Guest{
			"guest-1": {ID: "guest-1", FirstName: "Ben", Email: "ben@example.test"},
		}},
		Catalog: &memCatalogRepo{clinics: map[string]*models.Clinic{
			"clinic-1": {ID: "clinic-1", Name: "Happy Paws"},
		}},
		Notifier: notifier,
		Logger:   zap.NewNop(),
		Now:      func() time.Time { return sweepNow },
	}
}

func confirmedAppt(id string, date time.Time) *models.Appointment {
	return &models.Appointment{
		ID:       id,
		OwnerID:  "owner-1",
		ClinicID: "clinic-1",
		Status:   models.StatusConfirmed,
		Date:     date,
	}
}

func seed(t *testing.T, repo *memAppointmentRepo, appts ...*models.Appointment) {
	t.Helper()
	for _, appt := range appts {
		require.NoError(t, repo.Create(context.Background(), appt))
	}
}

func TestSweepOneDayWindow(t *testing.T) {
	repo := &memAppointmentRepo{items: make(map[string]*models.Appointment)}
	notifier := &memNotifier{}

	seed(t, repo,
		// Tomorrow's calendar day: in window.
		confirmedAppt("tomorrow-morning", time.Date(2026, time.August, 29, 0, 0, 1, 0, time.UTC)),
		confirmedAppt("tomorrow-evening", time.Date(2026, time.August, 29, 23, 0, 0, 0, time.UTC)),
		// Today and the day after: out of window.
		confirmedAppt("today", time.Date(2026, time.August, 28, 23, 0, 0, 0, time.UTC)),
		confirmedAppt("day-after", time.Date(2026, time.August, 30, 1, 0, 0, 0, time.UTC)),
	)

	require.NoError(t, newSweeper(repo, notifier).Sweep(context.Background()))

	assert.Len(t, notifier.sent, 2)

	inWindow, err := repo.GetByID(context.Background(), "tomorrow-morning")
	require.NoError(t, err)
	assert.True(t, inWindow.Reminder1DaySent)
	outOfWindow, err := repo.GetByID(context.Background(), "today")
	require.NoError(t, err)
	assert.False(t, outOfWindow.Reminder1DaySent)
}

func TestSweepFiveHourWindow(t *testing.T) {
	repo := &memAppointmentRepo{items: make(map[string]*models.Appointment)}
	notifier := &memNotifier{}

	seed(t, repo,
		// 4h45m out: inside the half-hour band.
		confirmedAppt("soon", sweepNow.Add(4*time.Hour+45*time.Minute)),
		// 4h out and 6h out: outside the band.
		confirmedAppt("too-soon", sweepNow.Add(4*time.Hour)),
		confirmedAppt("too-late", sweepNow.Add(6*time.Hour)),
	)

	require.NoError(t, newSweeper(repo, notifier).Sweep(context.Background()))

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "alice@example.test", notifier.sent[0].to)
	assert.Equal(t, "Happy Paws", notifier.sent[0].details.ClinicName)

	got, err := repo.GetByID(context.Background(), "soon")
	require.NoError(t, err)
	assert.True(t, got.Reminder5HourSent)
	assert.False(t, got.Reminder1DaySent)
}

func TestSweepSecondPassSendsNothing(t *testing.T) {
	repo := &memAppointmentRepo{items: make(map[string]*models.Appointment)}
	notifier := &memNotifier{}

	seed(t, repo,
		confirmedAppt("tomorrow", time.Date(2026, time.August, 29, 9, 0, 0, 0, time.UTC)),
		confirmedAppt("soon", sweepNow.Add(4*time.Hour+45*time.Minute)),
	)

	sweeper := newSweeper(repo, notifier)
	require.NoError(t, sweeper.Sweep(context.Background()))
	first := len(notifier.sent)
	require.Equal(t, 2, first)

	require.NoError(t, sweeper.Sweep(context.Background()))
	assert.Equal(t, first, len(notifier.sent), "flags must suppress resends")
}

func TestSweepSkipsNonConfirmed(t *testing.T) {
	repo := &memAppointmentRepo{items: make(map[string]*models.Appointment)}
	notifier := &memNotifier{}

	pending := confirmedAppt("pending", time.Date(2026, time.August, 29, 9, 0, 0, 0, time.UTC))
	pending.Status = models.StatusPending
	seed(t, repo, pending)

	require.NoError(t, newSweeper(repo, notifier).Sweep(context.Background()))
	assert.Empty(t, notifier.sent)
}

func TestSweepSkipsMissingClinic(t *testing.T) {
	repo := &memAppointmentRepo{items: make(map[string]*models.Appointment)}
	notifier := &memNotifier{}

	appt := confirmedAppt("tomorrow", time.Date(2026, time.August, 29, 9, 0, 0, 0, time.UTC))
	appt.ClinicID = "clinic-gone"
	seed(t, repo, appt)

	require.NoError(t, newSweeper(repo, notifier).Sweep(context.Background()))
	assert.Empty(t, notifier.sent)

	// The flag stays clear so a later sweep can retry once the clinic
	// reference resolves.
	got, err := repo.GetByID(context.Background(), "tomorrow")
	require.NoError(t, err)
	assert.False(t, got.Reminder1DaySent)
}

func TestSweepFlagsEvenWhenSendFails(t *testing.T) {
	repo := &memAppointmentRepo{items: make(map[string]*models.Appointment)}
	notifier := &memNotifier{err: errors.New("smtp down")}

	seed(t, repo, confirmedAppt("tomorrow", time.Date(2026, time.August, 29, 9, 0, 0, 0, time.UTC)))

	require.NoError(t, newSweeper(repo, notifier).Sweep(context.Background()))

	got, err := repo.GetByID(context.Background(), "tomorrow")
	require.NoError(t, err)
	assert.True(t, got.Reminder1DaySent)
}

func TestSweepGuestRecipient(t *testing.T) {
	repo := &memAppointmentRepo{items: make(map[string]*models.Appointment)}
	notifier := &memNotifier{}

	appt := confirmedAppt("tomorrow", time.Date(2026, time.August, 29, 9, 0, 0, 0, time.UTC))
	appt.OwnerID = ""
	appt.GuestID = "guest-1"
	seed(t, repo, appt)

	require.NoError(t, newSweeper(repo, notifier).Sweep(context.Background()))

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "ben@example.test", notifier.sent[0].to)
	assert.Equal(t, "Ben", notifier.sent[0].details.PetOwnerName)
}
