package repository

import (
	"context"
	"sync"

	"github.com/vitorsm19/aisel-tech-case-vitor/internal/domain"
)

// PatientRepository defines access to patient records.
type PatientRepository interface {
	List(ctx context.Context) ([]domain.Patient, error)
	GetByID(ctx context.Context, id int) (*domain.Patient, error)
	Create(ctx context.Context, in domain.PatientInput) (*domain.Patient, error)
	Update(ctx context.Context, id int, patch domain.PatientPatch) (*domain.Patient, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// memoryPatientRepository keeps records in process memory. Records are lost
// on restart. Concurrent writers race with last-write-wins.
type memoryPatientRepository struct {
	mu     sync.RWMutex
	byID   map[int]domain.Patient
	order  []int
	nextID int
}

// NewMemoryPatientRepository seeds a repository. The ID counter starts past
// the highest seeded ID.
func NewMemoryPatientRepository(seed []domain.Patient) PatientRepository {
	r := &memoryPatientRepository{
		byID:   make(map[int]domain.Patient, len(seed)),
		order:  make([]int, 0, len(seed)),
		nextID: 1,
	}
	for _, p := range seed {
		if _, dup := r.byID[p.ID]; dup {
			continue
		}
		r.byID[p.ID] = p
		r.order = append(r.order, p.ID)
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func (r *memoryPatientRepository) List(_ context.Context) ([]domain.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Patient, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *memoryPatientRepository) GetByID(_ context.Context, id int) (*domain.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *memoryPatientRepository) Create(_ context.Context, in domain.PatientInput) (*domain.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := domain.NewPatient(r.nextID, in)
	r.nextID++
	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	return &p, nil
}

func (r *memoryPatientRepository) Update(_ context.Context, id int, patch domain.PatientPatch) (*domain.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	updated := patch.Apply(existing)
	r.byID[id] = updated
	return &updated, nil
}

func (r *memoryPatientRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memoryPatientRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}
