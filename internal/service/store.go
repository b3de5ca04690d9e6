package service

import (
	"context"

	"github.com/jobportal/jobportal-go/internal/model"
)

// UserStore is the user persistence the services depend on.
// *repository.UserRepository satisfies it.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpdateProfile(ctx context.Context, user *model.User) error
}

// JobStore is the job persistence the services depend on.
// *repository.JobRepository satisfies it.
type JobStore interface {
	Create(ctx context.Context, job *model.Job) error
	GetByID(ctx context.Context, id int64) (*model.Job, error)
	List(ctx context.Context, q model.JobQuery) ([]model.Job, int, error)
	UpdateOwned(ctx context.Context, id, ownerID int64, patch model.JobPatch) (bool, error)
	DeleteOwned(ctx context.Context, id, ownerID int64) (bool, error)
	CountByStatus(ctx context.Context, ownerID int64) (map[model.JobStatus]int, error)
}
