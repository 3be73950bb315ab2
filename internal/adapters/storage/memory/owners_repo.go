package memory

import (
	"context"
	"sort"
	"sync"

	"vet-clinic-console/internal/domain/owners"
)

type OwnersRepo struct {
	mu     sync.RWMutex
	byID   map[int64]owners.Owner
	nextID int64
}

func NewOwnersRepo() *OwnersRepo {
	return &OwnersRepo{
		byID:   make(map[int64]owners.Owner),
		nextID: 1,
	}
}

func (r *OwnersRepo) GetAll(ctx context.Context) ([]owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]owners.Owner, 0, len(r.byID))
	for _, o := range r.byID {
		out = append(out, o)
	}

	// ORDER BY full_name ASC
	sort.Slice(out, func(i, j int) bool {
		return out[i].FullName < out[j].FullName
	})
	return out, nil
}

func (r *OwnersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return o, nil
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = r.nextID
	r.nextID++
	r.byID[o.ID] = o
	return o, nil
}

func (r *OwnersRepo) Update(ctx context.Context, id int64, in owners.UpdateInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.byID[id]
	if !ok {
		return owners.ErrNotFound
	}

	if in.Cedula != nil {
		o.Cedula = *in.Cedula
	}
	if in.FullName != nil {
		o.FullName = *in.FullName
	}
	if in.Phone != nil {
		o.Phone = *in.Phone
	}
	if in.Email != nil {
		o.Email = *in.Email
	}
	if in.Address != nil {
		o.Address = *in.Address
	}

	r.byID[id] = o
	return nil
}

func (r *OwnersRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return owners.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// fullName es el join in-memory para denormalizar owner_name.
func (r *OwnersRepo) fullName(id int64) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id].FullName
}
