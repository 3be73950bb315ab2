package memory

import (
	"context"
	"sort"
	"sync"

	"vet-clinic-console/internal/domain/records"
)

type RecordsRepo struct {
	mu     sync.RWMutex
	byID   map[int64]records.MedicalRecord
	nextID int64

	patients *PatientsRepo
	users    *UsersRepo
}

func NewRecordsRepo(patients *PatientsRepo, users *UsersRepo) *RecordsRepo {
	return &RecordsRepo{
		byID:     make(map[int64]records.MedicalRecord),
		nextID:   1,
		patients: patients,
		users:    users,
	}
}

func (r *RecordsRepo) GetAll(ctx context.Context) ([]records.MedicalRecord, error) {
	r.mu.RLock()
	out := make([]records.MedicalRecord, 0, len(r.byID))
	for _, rec := range r.byID {
		out = append(out, rec)
	}
	r.mu.RUnlock()

	// ORDER BY visit_date DESC
	sort.Slice(out, func(i, j int) bool {
		return out[i].VisitDate > out[j].VisitDate
	})

	for i := range out {
		out[i].PatientName = r.patients.name(out[i].PatientID)
		out[i].DoctorName = r.users.fullName(out[i].DoctorID)
	}
	return out, nil
}

func (r *RecordsRepo) Create(ctx context.Context, rec records.MedicalRecord) (records.MedicalRecord, error) {
	r.mu.Lock()
	rec.ID = r.nextID
	r.nextID++
	r.byID[rec.ID] = rec
	r.mu.Unlock()

	rec.PatientName = r.patients.name(rec.PatientID)
	rec.DoctorName = r.users.fullName(rec.DoctorID)
	return rec, nil
}

func (r *RecordsRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return records.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
