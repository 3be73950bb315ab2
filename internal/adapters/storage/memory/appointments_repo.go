package memory

import (
	"context"
	"sort"
	"sync"

	"vet-clinic-console/internal/domain/appointments"
)

type AppointmentsRepo struct {
	mu     sync.RWMutex
	byID   map[int64]appointments.Appointment
	nextID int64

	patients *PatientsRepo
	owners   *OwnersRepo
	users    *UsersRepo
}

func NewAppointmentsRepo(patients *PatientsRepo, owners *OwnersRepo, users *UsersRepo) *AppointmentsRepo {
	return &AppointmentsRepo{
		byID:     make(map[int64]appointments.Appointment),
		nextID:   1,
		patients: patients,
		owners:   owners,
		users:    users,
	}
}

func (r *AppointmentsRepo) GetAll(ctx context.Context) ([]appointments.Appointment, error) {
	r.mu.RLock()
	out := make([]appointments.Appointment, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	r.mu.RUnlock()

	// ORDER BY start_time ASC
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})

	for i := range out {
		r.denormalize(&out[i])
	}
	return out, nil
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, error) {
	r.mu.RLock()
	a, ok := r.byID[id]
	r.mu.RUnlock()

	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	r.denormalize(&a)
	return a, nil
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	r.mu.Lock()
	a.ID = r.nextID
	r.nextID++
	r.byID[a.ID] = a
	r.mu.Unlock()

	r.denormalize(&a)
	return a, nil
}

func (r *AppointmentsRepo) Update(ctx context.Context, id int64, in appointments.UpdateInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return appointments.ErrNotFound
	}

	if in.PatientID != nil {
		a.PatientID = *in.PatientID
	}
	if in.DoctorID != nil {
		a.DoctorID = *in.DoctorID
	}
	if in.Assistant.Present {
		a.AssistantID = in.Assistant.Value
	}
	if in.Type != nil {
		a.Type = *in.Type
	}
	if in.StartTime != nil {
		a.StartTime = *in.StartTime
	}
	if in.DurationMinutes != nil {
		a.DurationMinutes = *in.DurationMinutes
	}
	if in.Status != nil {
		a.Status = *in.Status
	}

	r.byID[id] = a
	return nil
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return appointments.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *AppointmentsRepo) denormalize(a *appointments.Appointment) {
	a.PatientName = r.patients.name(a.PatientID)
	a.OwnerName = r.owners.fullName(r.patients.ownerID(a.PatientID))
	a.DoctorName = r.users.fullName(a.DoctorID)
	if a.AssistantID != nil {
		a.AssistantName = r.users.fullName(*a.AssistantID)
	}
}
