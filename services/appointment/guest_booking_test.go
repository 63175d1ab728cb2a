package appointment

import (
	"context"
	"testing"
	"time"

	"petopia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guestRequest() models.GuestBookingRequest {
	return models.GuestBookingRequest{
		FirstName: "Ben",
		LastName:  "Cruz",
		Email:     "ben@example.test",
		Phone:     "555-0101",
		PetName:   "Mochi",
		PetType:   "Cat",
		ClinicID:  testClinicID,
		ServiceID: "svc-1",
		Date:      "2026-09-02",
	}
}

func stagedCode(t *testing.T, env *testEnv, email string) string {
	t.Helper()
	staged, err := env.broker.Get(context.Background(), email)
	require.NoError(t, err)
	require.NotNil(t, staged)
	return staged.Code
}

func TestStageGuestBookingSendsOTP(t *testing.T) {
	env := newTestEnv()

	require.NoError(t, env.svc.StageGuestBooking(context.Background(), guestRequest()))

	sent := env.notifier.byKind("otp")
	require.Len(t, sent, 1)
	assert.Equal(t, "ben@example.test", sent[0].to)
	assert.Len(t, sent[0].code, 6)
	assert.Equal(t, sent[0].code, stagedCode(t, env, "ben@example.test"))

	// Nothing is persisted before verification.
	assert.Empty(t, env.guests.items)
	assert.Empty(t, env.appts.items)
}

func TestStageGuestBookingRestageOverwrites(t *testing.T) {
	env := newTestEnv()

	require.NoError(t, env.svc.StageGuestBooking(context.Background(), guestRequest()))
	first := stagedCode(t, env, "ben@example.test")

	req := guestRequest()
	req.PetName = "Pudding"
	require.NoError(t, env.svc.StageGuestBooking(context.Background(), req))

	staged, err := env.broker.Get(context.Background(), "ben@example.test")
	require.NoError(t, err)
	require.NotNil(t, staged)
	assert.Equal(t, "Pudding", staged.Pet.Name)

	// The old code only survives by coincidence of random generation.
	if staged.Code == first {
		t.Skip("generated codes collided")
	}
	_, err = env.svc.VerifyGuestBooking(context.Background(), "ben@example.test", first)
	var otpErr *OTPError
	require.ErrorAs(t, err, &otpErr)
}

func TestStageGuestBookingRejectsExistingGuest(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.guests.Create(context.Background(), &models.Guest{
		ID: "guest-1", Email: "ben@example.test",
	}))

	err := env.svc.StageGuestBooking(context.Background(), guestRequest())
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
}

func TestVerifyGuestBookingHappyPath(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.svc.StageGuestBooking(context.Background(), guestRequest()))
	code := stagedCode(t, env, "ben@example.test")

	appt, err := env.svc.VerifyGuestBooking(context.Background(), "ben@example.test", code)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, appt.Status)
	assert.True(t, appt.IsVerified)
	assert.Empty(t, appt.OwnerID)

	guest, err := env.guests.GetByID(context.Background(), appt.GuestID)
	require.NoError(t, err)
	require.NotNil(t, guest)
	require.Len(t, guest.Pets, 1)
	assert.Equal(t, "Mochi", guest.Pets[0].Name)
	assert.Equal(t, guest.Pets[0].ID, appt.PetID)
	assert.Equal(t, []string{appt.ID}, guest.Appointments)

	// The staged entry is spent.
	staged, err := env.broker.Get(context.Background(), "ben@example.test")
	require.NoError(t, err)
	assert.Nil(t, staged)

	sent := env.notifier.byKind("confirmation")
	require.Len(t, sent, 1)
	assert.Equal(t, "ben@example.test", sent[0].to)
}

func TestVerifyGuestBookingSingleConsumption(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.svc.StageGuestBooking(context.Background(), guestRequest()))
	code := stagedCode(t, env, "ben@example.test")

	_, err := env.svc.VerifyGuestBooking(context.Background(), "ben@example.test", code)
	require.NoError(t, err)

	_, err = env.svc.VerifyGuestBooking(context.Background(), "ben@example.test", code)
	var otpErr *OTPError
	require.ErrorAs(t, err, &otpErr)
}

func TestVerifyGuestBookingWrongCodeLeavesEntry(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.svc.StageGuestBooking(context.Background(), guestRequest()))
	code := stagedCode(t, env, "ben@example.test")

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	_, err := env.svc.VerifyGuestBooking(context.Background(), "ben@example.test", wrong)
	var otpErr *OTPError
	require.ErrorAs(t, err, &otpErr)

	// The entry is intact; the correct code still works.
	_, err = env.svc.VerifyGuestBooking(context.Background(), "ben@example.test", code)
	require.NoError(t, err)
}

func TestVerifyGuestBookingExpired(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.svc.StageGuestBooking(context.Background(), guestRequest()))
	code := stagedCode(t, env, "ben@example.test")

	*env.now = env.now.Add(5*time.Minute + time.Second)

	_, err := env.svc.VerifyGuestBooking(context.Background(), "ben@example.test", code)
	var otpErr *OTPError
	require.ErrorAs(t, err, &otpErr)
}
