package memory

import (
	"context"
	"sort"
	"sync"

	"vet-clinic-console/internal/domain/hospitalizations"
)

type HospitalizationsRepo struct {
	mu          sync.RWMutex
	byID        map[int64]hospitalizations.Hospitalization
	checksByID  map[int64]hospitalizations.Check
	nextID      int64
	nextCheckID int64

	patients *PatientsRepo
	users    *UsersRepo
}

func NewHospitalizationsRepo(patients *PatientsRepo, users *UsersRepo) *HospitalizationsRepo {
	return &HospitalizationsRepo{
		byID:        make(map[int64]hospitalizations.Hospitalization),
		checksByID:  make(map[int64]hospitalizations.Check),
		nextID:      1,
		nextCheckID: 1,
		patients:    patients,
		users:       users,
	}
}

func (r *HospitalizationsRepo) GetAll(ctx context.Context) ([]hospitalizations.Hospitalization, error) {
	r.mu.RLock()
	out := make([]hospitalizations.Hospitalization, 0, len(r.byID))
	for _, h := range r.byID {
		out = append(out, h)
	}
	r.mu.RUnlock()

	// ORDER BY id DESC
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID > out[j].ID
	})

	for i := range out {
		r.denormalize(&out[i])
	}
	return out, nil
}

func (r *HospitalizationsRepo) GetByID(ctx context.Context, id int64) (hospitalizations.Hospitalization, error) {
	r.mu.RLock()
	h, ok := r.byID[id]
	r.mu.RUnlock()

	if !ok {
		return hospitalizations.Hospitalization{}, hospitalizations.ErrNotFound
	}
	r.denormalize(&h)
	return h, nil
}

func (r *HospitalizationsRepo) Create(ctx context.Context, h hospitalizations.Hospitalization) (hospitalizations.Hospitalization, error) {
	r.mu.Lock()
	h.ID = r.nextID
	r.nextID++
	r.byID[h.ID] = h
	r.mu.Unlock()

	r.denormalize(&h)
	return h, nil
}

func (r *HospitalizationsRepo) Update(ctx context.Context, id int64, in hospitalizations.UpdateInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.byID[id]
	if !ok {
		return hospitalizations.ErrNotFound
	}

	if in.PatientID != nil {
		h.PatientID = *in.PatientID
	}
	if in.DoctorID != nil {
		h.DoctorID = *in.DoctorID
	}
	if in.EntryDate != nil {
		h.EntryDate = *in.EntryDate
	}
	if in.Reason != nil {
		h.Reason = *in.Reason
	}
	if in.DiagnosisPreliminary != nil {
		h.DiagnosisPreliminary = *in.DiagnosisPreliminary
	}
	if in.AlertMessage != nil {
		h.AlertMessage = *in.AlertMessage
	}
	if in.AlertTime != nil {
		h.AlertTime = *in.AlertTime
	}
	if in.Status != nil {
		h.Status = *in.Status
	}
	if in.TreatmentPlan != nil {
		h.TreatmentPlan = *in.TreatmentPlan
	}
	if in.Notes != nil {
		h.Notes = *in.Notes
	}
	if in.WeightEntry != nil {
		h.WeightEntry = in.WeightEntry
	}
	if in.DischargeDate != nil {
		h.DischargeDate = in.DischargeDate
	}

	r.byID[id] = h
	return nil
}

func (r *HospitalizationsRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return hospitalizations.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *HospitalizationsRepo) ListChecks(ctx context.Context, hospitalizationID int64) ([]hospitalizations.Check, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]hospitalizations.Check, 0)
	for _, c := range r.checksByID {
		if c.HospitalizationID == hospitalizationID {
			out = append(out, c)
		}
	}

	// ORDER BY check_time DESC (control más reciente primero)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CheckTime.After(out[j].CheckTime)
	})
	return out, nil
}

func (r *HospitalizationsRepo) AddCheck(ctx context.Context, c hospitalizations.Check) (hospitalizations.Check, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = r.nextCheckID
	r.nextCheckID++
	r.checksByID[c.ID] = c
	return c, nil
}

func (r *HospitalizationsRepo) denormalize(h *hospitalizations.Hospitalization) {
	h.PatientName = r.patients.name(h.PatientID)
	h.DoctorName = r.users.fullName(h.DoctorID)
}
