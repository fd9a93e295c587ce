package repo

import (
	"context"
	"slices"
	"sync"

	"github.com/pkordes/recruittrack/internal/domain"
)

// memoryPersonRepo keeps the saved list in process memory. It backs sessions
// started without DATABASE_URL; the list is gone when the process exits.
type memoryPersonRepo struct {
	mu      sync.Mutex
	persons []domain.Person
}

// NewMemoryPersonRepo returns a PersonRepo holding seed as its saved list.
func NewMemoryPersonRepo(seed ...domain.Person) PersonRepo {
	return &memoryPersonRepo{persons: slices.Clone(seed)}
}

func (r *memoryPersonRepo) Load(_ context.Context) ([]domain.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.persons), nil
}

func (r *memoryPersonRepo) Save(_ context.Context, persons []domain.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.persons = slices.Clone(persons)
	return nil
}
