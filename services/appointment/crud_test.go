package appointment

import (
	"context"
	"testing"

	"petopia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByIDBuildsView(t *testing.T) {
	env := newTestEnv()
	appt := seedAppointment(t, env)

	view, err := env.svc.GetByID(context.Background(), appt.ID)
	require.NoError(t, err)

	assert.Equal(t, "Alice Reyes", view.OwnerName)
	assert.Equal(t, "Biscuit (Dog)", view.PetDetails)
	assert.Equal(t, "Happy Paws", view.ClinicName)
	assert.Equal(t, "Grooming", view.ServiceName)
	assert.Equal(t, "September 1, 2026", view.FormattedDate)
	assert.Equal(t, "2:30 PM", view.FormattedTime)

	_, err = env.svc.GetByID(context.Background(), "nope")
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestListByOwnerEmptyIsNotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.ListByOwner(context.Background(), "owner-1")
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)

	seedAppointment(t, env)
	views, err := env.svc.ListByOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Len(t, views, 1)
}

func TestListByClinicEmptyIsOK(t *testing.T) {
	env := newTestEnv()

	views, err := env.svc.ListByClinic(context.Background(), testClinicID)
	require.NoError(t, err)
	assert.Empty(t, views)

	_, err = env.svc.ListByClinic(context.Background(), "not-a-uuid")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestDeleteAppointment(t *testing.T) {
	env := newTestEnv()
	appt := seedAppointment(t, env)

	require.NoError(t, env.svc.Delete(context.Background(), appt.ID))

	err := env.svc.Delete(context.Background(), appt.ID)
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestOwnersWithAppointmentsAggregates(t *testing.T) {
	env := newTestEnv()

	// Two bookings for the same owner and pet, plus a guest appointment
	// that must be excluded.
	seedAppointment(t, env)
	seedAppointment(t, env)
	require.NoError(t, env.appts.Create(context.Background(), &models.Appointment{
		ID:        "guest-appt",
		GuestID:   "guest-1",
		ClinicID:  testClinicID,
		ServiceID: "svc-1",
		Status:    models.StatusPending,
	}))

	summaries, err := env.svc.OwnersWithAppointments(context.Background(), testClinicID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	summary := summaries[0]
	assert.Equal(t, "owner-1", summary.ID)
	assert.Equal(t, "Alice", summary.FirstName)
	require.Len(t, summary.Pets, 1)
	assert.Equal(t, "Biscuit", summary.Pets[0].Name)
	require.Len(t, summary.Services, 1)
	assert.Equal(t, "Grooming", summary.Services[0].Name)
}

func TestOwnersWithAppointmentsNoneIsNotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.OwnersWithAppointments(context.Background(), testClinicID)
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}
