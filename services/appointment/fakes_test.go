package appointment

import (
	"context"
	"strings"
	"sync"
	"time"

	appointmentRepo "petopia/database/repository/appointment"
	"petopia/models"
)

// In-memory repository fakes mirroring the Mongo implementations' contracts:
// Get methods return (nil, nil) when nothing matches.

type fakeAppointmentRepo struct {
	mu    sync.Mutex
	items map[string]*models.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{items: make(map[string]*models.Appointment)}
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *appt
	r.items[appt.ID] = &clone
	return nil
}

func (r *fakeAppointmentRepo) Update(ctx context.Context, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *appt
	r.items[appt.ID] = &clone
	return nil
}

func (r *fakeAppointmentRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return appointmentRepo.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *appt
	return &clone, nil
}

func (r *fakeAppointmentRepo) GetAll(ctx context.Context) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, appt := range r.items {
		out = append(out, *appt)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) GetByOwner(ctx context.Context, ownerID string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, appt := range r.items {
		if appt.OwnerID == ownerID {
			out = append(out, *appt)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) GetByClinic(ctx context.Context, clinicID string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, appt := range r.items {
		if appt.ClinicID == clinicID {
			out = append(out, *appt)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindConfirmedInWindow(ctx context.Context, from, to time.Time, flag models.ReminderFlag) ([]models.Appointment, error) {
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

func (r *fakeAppointmentRepo) MarkReminderSent(ctx context.Context, id string, flag models.ReminderFlag) error {
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

type fakePetRepo struct {
	mu    sync.Mutex
	items map[string]*models.Pet
}

func newFakePetRepo() *fakePetRepo {
	return &fakePetRepo{items: make(map[string]*models.Pet)}
}

func (r *fakePetRepo) Create(ctx context.Context, pet *models.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if pet.Avatar == "" {
		pet.Avatar = models.DefaultPetAvatar
	}
	if pet.MedicalHistory == nil {
		pet.MedicalHistory = []string{}
	}
	clone := *pet
	r.items[pet.ID] = &clone
	return nil
}

func (r *fakePetRepo) GetByID(ctx context.Context, id string) (*models.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pet, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *pet
	return &clone, nil
}

func (r *fakePetRepo) FindByOwnerNameType(ctx context.Context, ownerID, name, petType string) (*models.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, pet := range r.items {
		if pet.OwnerID == ownerID && strings.EqualFold(pet.Name, name) && pet.Type == petType {
			clone := *pet
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakePetRepo) AppendMedicalHistory(ctx context.Context, id, concern string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pet, ok := r.items[id]
	if !ok {
		return nil
	}
	for _, existing := range pet.MedicalHistory {
		if existing == concern {
			return nil
		}
	}
	pet.MedicalHistory = append(pet.MedicalHistory, concern)
	return nil
}

type fakeOwnerRepo struct {
	items map[string]*models.Owner
}

func newFakeOwnerRepo(owners ...*models.Owner) *fakeOwnerRepo {
	r := &fakeOwnerRepo{items: make(map[string]*models.Owner)}
	for _, o := range owners {
		r.items[o.ID] = o
	}
	return r
}

func (r *fakeOwnerRepo) GetByID(ctx context.Context, id string) (*models.Owner, error) {
	owner, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *owner
	return &clone, nil
}

type fakeGuestRepo struct {
	mu    sync.Mutex
	items map[string]*models.Guest
}

func newFakeGuestRepo() *fakeGuestRepo {
	return &fakeGuestRepo{items: make(map[string]*models.Guest)}
}

func (r *fakeGuestRepo) Create(ctx context.Context, guest *models.Guest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *guest
	r.items[guest.ID] = &clone
	return nil
}

func (r *fakeGuestRepo) GetByID(ctx context.Context, id string) (*models.Guest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	guest, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *guest
	return &clone, nil
}

func (r *fakeGuestRepo) GetByEmail(ctx context.Context, email string) (*models.Guest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, guest := range r.items {
		if guest.Email == email {
			clone := *guest
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeGuestRepo) AppendAppointment(ctx context.Context, guestID, appointmentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	guest, ok := r.items[guestID]
	if !ok {
		return nil
	}
	guest.Appointments = append(guest.Appointments, appointmentID)
	return nil
}

type fakeCatalogRepo struct {
	clinics  map[string]*models.Clinic
	services map[string]*models.Service
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		clinics:  make(map[string]*models.Clinic),
		services: make(map[string]*models.Service),
	}
}

func (r *fakeCatalogRepo) GetClinicByID(ctx context.Context, id string) (*models.Clinic, error) {
	clinic, ok := r.clinics[id]
	if !ok {
		return nil, nil
	}
	clone := *clinic
	return &clone, nil
}

func (r *fakeCatalogRepo) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	service, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	clone := *service
	return &clone, nil
}

// sentEmail records one notifier call.
type sentEmail struct {
	kind    string
	to      string
	code    string
	status  models.AppointmentStatus
	details models.AppointmentEmail
	follow  models.FollowUpEmail
	receipt []byte
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentEmail
	err  error
}

func (n *fakeNotifier) record(e sentEmail) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, e)
	return n.err
}

func (n *fakeNotifier) SendOTP(ctx context.Context, email, code string) error {
	return n.record(sentEmail{kind: "otp", to: email, code: code})
}

func (n *fakeNotifier) SendBookingConfirmation(ctx context.Context, email string, details models.AppointmentEmail, receipt []byte) error {
	return n.record(sentEmail{kind: "confirmation", to: email, details: details, receipt: receipt})
}

func (n *fakeNotifier) SendStatusUpdate(ctx context.Context, email string, details models.AppointmentEmail, status models.AppointmentStatus, receipt []byte) error {
	return n.record(sentEmail{kind: "status", to: email, details: details, status: status, receipt: receipt})
}

func (n *fakeNotifier) SendClinicFollowUp(ctx context.Context, email string, details models.FollowUpEmail, receipt []byte) error {
	return n.record(sentEmail{kind: "followup", to: email, follow: details, receipt: receipt})
}

func (n *fakeNotifier) SendReminder(ctx context.Context, email string, details models.ReminderEmail) error {
	return n.record(sentEmail{kind: "reminder", to: email})
}

func (n *fakeNotifier) byKind(kind string) []sentEmail {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []sentEmail
	for _, e := range n.sent {
		if e.kind == kind {
			out = append(out, e)
		}
	}
	return out
}

type fakeGenerator struct{}

func (fakeGenerator) QRCode(url string) ([]byte, error) {
	return []byte("qr:" + url), nil
}

func (fakeGenerator) Receipt(details models.ReceiptDetails, qr []byte) ([]byte, error) {
	return []byte("receipt:" + details.AppointmentID), nil
}
