package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jobportal/jobportal-go/internal/model"
	"github.com/jobportal/jobportal-go/internal/repository"
)

// memUserStore is an in-memory UserStore with a unique email index.
type memUserStore struct {
	mu      sync.Mutex
	nextID  int64
	byID    map[int64]*model.User
	byEmail map[string]int64

	// getByEmailMisses makes GetByEmail report not-found, simulating a
	// concurrent registration that slipped past the pre-check.
	getByEmailMisses bool
	createErr        error
}

func newMemUserStore() *memUserStore {
	return &memUserStore{byID: map[int64]*model.User{}, byEmail: map[string]int64{}}
}

func (m *memUserStore) Create(ctx context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.byEmail[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	m.byID[user.ID] = &stored
	m.byEmail[user.Email] = user.ID
	return nil
}

func (m *memUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.byEmail[email]
	if !ok || m.getByEmailMisses {
		return nil, repository.ErrUserNotFound
	}
	u := *m.byID[id]
	return &u, nil
}

func (m *memUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserStore) UpdateProfile(ctx context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.byID[user.ID]
	if !ok {
		return repository.ErrUserNotFound
	}
	if id, taken := m.byEmail[user.Email]; taken && id != user.ID {
		return repository.ErrDuplicateEmail
	}
	delete(m.byEmail, old.Email)
	user.UpdatedAt = time.Now().UTC()
	stored := *user
	m.byID[user.ID] = &stored
	m.byEmail[user.Email] = user.ID
	return nil
}

func (m *memUserStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byID)
}

// memJobStore is an in-memory JobStore following the repository's query semantics.
type memJobStore struct {
	mu     sync.Mutex
	nextID int64
	clock  time.Time
	jobs   map[int64]model.Job
}

func newMemJobStore() *memJobStore {
	return &memJobStore{
		jobs:  map[int64]model.Job{},
		clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memJobStore) Create(ctx context.Context, job *model.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.clock = m.clock.Add(time.Minute)
	job.ID = m.nextID
	job.CreatedAt = m.clock
	job.UpdatedAt = m.clock
	m.jobs[job.ID] = *job
	return nil
}

func (m *memJobStore) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return nil, repository.ErrJobNotFound
	}
	return &j, nil
}

func (m *memJobStore) List(ctx context.Context, q model.JobQuery) ([]model.Job, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []model.Job
	for _, j := range m.jobs {
		if j.CreatedBy != q.OwnerID {
			continue
		}
		if q.Status != "" && j.Status != q.Status {
			continue
		}
		if q.WorkType != "" && j.WorkType != q.WorkType {
			continue
		}
		if q.Search != "" && !strings.Contains(strings.ToLower(j.Position), strings.ToLower(q.Search)) {
			continue
		}
		matched = append(matched, j)
	}

	sort.Slice(matched, func(a, b int) bool {
		x, y := matched[a], matched[b]
		switch q.Sort {
		case model.SortOldest:
			if !x.CreatedAt.Equal(y.CreatedAt) {
				return x.CreatedAt.Before(y.CreatedAt)
			}
			return x.ID < y.ID
		case model.SortAZ:
			if x.Position != y.Position {
				return x.Position < y.Position
			}
			return x.ID < y.ID
		case model.SortZA:
			if x.Position != y.Position {
				return x.Position > y.Position
			}
			return x.ID > y.ID
		default:
			if !x.CreatedAt.Equal(y.CreatedAt) {
				return x.CreatedAt.After(y.CreatedAt)
			}
			return x.ID > y.ID
		}
	})

	total := len(matched)
	start := q.Offset()
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}
	return append([]model.Job{}, matched[start:end]...), total, nil
}

func (m *memJobStore) UpdateOwned(ctx context.Context, id, ownerID int64, patch model.JobPatch) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok || j.CreatedBy != ownerID {
		return false, nil
	}
	if patch.Company != nil {
		j.Company = *patch.Company
	}
	if patch.Position != nil {
		j.Position = *patch.Position
	}
	if patch.Status != nil {
		j.Status = *patch.Status
	}
	if patch.WorkType != nil {
		j.WorkType = *patch.WorkType
	}
	if patch.WorkLocation != nil {
		j.WorkLocation = *patch.WorkLocation
	}
	m.clock = m.clock.Add(time.Second)
	j.UpdatedAt = m.clock
	m.jobs[id] = j
	return true, nil
}

func (m *memJobStore) DeleteOwned(ctx context.Context, id, ownerID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok || j.CreatedBy != ownerID {
		return false, nil
	}
	delete(m.jobs, id)
	return true, nil
}

func (m *memJobStore) CountByStatus(ctx context.Context, ownerID int64) (map[model.JobStatus]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := map[model.JobStatus]int{}
	for _, j := range m.jobs {
		if j.CreatedBy == ownerID {
			counts[j.Status]++
		}
	}
	return counts, nil
}

func ptr[T any](v T) *T { return &v }
