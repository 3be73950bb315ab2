package memory

import (
	"context"
	"sort"
	"sync"

	"vet-clinic-console/internal/domain/patients"
)

type PatientsRepo struct {
	mu     sync.RWMutex
	byID   map[int64]patients.Patient
	nextID int64

	owners *OwnersRepo
}

func NewPatientsRepo(owners *OwnersRepo) *PatientsRepo {
	return &PatientsRepo{
		byID:   make(map[int64]patients.Patient),
		nextID: 1,
		owners: owners,
	}
}

func (r *PatientsRepo) GetAll(ctx context.Context) ([]patients.Patient, error) {
	r.mu.RLock()
	out := make([]patients.Patient, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	r.mu.RUnlock()

	// ORDER BY id DESC (más recientes primero)
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID > out[j].ID
	})

	for i := range out {
		out[i].OwnerName = r.owners.fullName(out[i].OwnerID)
	}
	return out, nil
}

func (r *PatientsRepo) GetByID(ctx context.Context, id int64) (patients.Patient, error) {
	r.mu.RLock()
	p, ok := r.byID[id]
	r.mu.RUnlock()

	if !ok {
		return patients.Patient{}, patients.ErrNotFound
	}
	p.OwnerName = r.owners.fullName(p.OwnerID)
	return p, nil
}

func (r *PatientsRepo) Create(ctx context.Context, p patients.Patient) (patients.Patient, error) {
	r.mu.Lock()
	p.ID = r.nextID
	r.nextID++
	r.byID[p.ID] = p
	r.mu.Unlock()

	p.OwnerName = r.owners.fullName(p.OwnerID)
	return p, nil
}

func (r *PatientsRepo) Update(ctx context.Context, id int64, in patients.UpdateInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return patients.ErrNotFound
	}

	if in.OwnerID != nil {
		p.OwnerID = *in.OwnerID
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Species != nil {
		p.Species = *in.Species
	}
	if in.Breed != nil {
		p.Breed = *in.Breed
	}
	if in.AgeMonths != nil {
		p.AgeMonths = *in.AgeMonths
	}
	if in.WeightKg != nil {
		p.WeightKg = *in.WeightKg
	}

	r.byID[id] = p
	return nil
}

func (r *PatientsRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return patients.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *PatientsRepo) name(id int64) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id].Name
}

func (r *PatientsRepo) ownerID(id int64) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id].OwnerID
}
