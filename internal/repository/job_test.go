package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobportal/jobportal-go/internal/model"
)

var jobRowColumns = []string{"id", "company", "position", "status", "work_type", "work_location", "created_by", "created_at", "updated_at"}

func TestJobFilter(t *testing.T) {
	tests := []struct {
		name      string
		query     model.JobQuery
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "owner only",
			query:     model.JobQuery{OwnerID: 4},
			wantWhere: "created_by = ?",
			wantArgs:  []any{int64(4)},
		},
		{
			name: "every filter",
			query: model.JobQuery{
				OwnerID:  4,
				Status:   model.StatusReject,
				WorkType: model.WorkContract,
				Search:   "Dev",
			},
			wantWhere: `created_by = ? AND status = ? AND work_type = ? AND LOWER(position) LIKE ? ESCAPE '!'`,
			wantArgs:  []any{int64(4), "Reject", "Contract", "%dev%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := jobFilter(tt.query)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestJobOrder(t *testing.T) {
	assert.Equal(t, "created_at DESC, id DESC", jobOrder(model.SortLatest))
	assert.Equal(t, "created_at ASC, id ASC", jobOrder(model.SortOldest))
	assert.Equal(t, "position ASC, id ASC", jobOrder(model.SortAZ))
	assert.Equal(t, "position DESC, id DESC", jobOrder(model.SortZA))
	assert.Equal(t, "created_at DESC, id DESC", jobOrder(""))
}

func TestLikePattern_EscapesWildcards(t *testing.T) {
	assert.Equal(t, "%go%", likePattern("Go"))
	assert.Equal(t, `%100!%%`, likePattern("100%"))
	assert.Equal(t, `%a!_b%`, likePattern("a_b"))
	assert.Equal(t, `%hi!!%`, likePattern("Hi!"))
	assert.Equal(t, `%c:\dev%`, likePattern(`C:\dev`), "backslash is an ordinary character")
}

func TestJobRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewJobRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO jobs (company, position, status, work_type, work_location, created_by, created_at, updated_at)`)).
		WithArgs("Acme", "Dev", "Pending", "Full-Time", "Mumbai", int64(1), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(12, 1))

	job := &model.Job{
		Company:      "Acme",
		Position:     "Dev",
		Status:       model.StatusPending,
		WorkType:     model.WorkFullTime,
		WorkLocation: model.DefaultWorkLocation,
		CreatedBy:    1,
	}
	require.NoError(t, repo.Create(context.Background(), job))
	assert.Equal(t, int64(12), job.ID)
	assert.False(t, job.CreatedAt.IsZero())
}

func TestJobRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewJobRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM jobs WHERE id = ?`)).
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows(jobRowColumns).
			AddRow(12, "Acme", "Dev", "Interview Scheduled", "Internship", "Pune", 1, now, now))

	job, err := repo.GetByID(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInterview, job.Status)
	assert.Equal(t, model.WorkInternship, job.WorkType)
	assert.Equal(t, int64(1), job.CreatedBy)
}

func TestJobRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewJobRepository(db)

	mock.ExpectQuery(`FROM jobs WHERE id`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(jobRowColumns))

	_, err := repo.GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestJobRepository_List(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewJobRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM jobs WHERE created_by = ? AND status = ? AND LOWER(position) LIKE ?`)).
		WithArgs(int64(2), "Pending", "%dev%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY position DESC, id DESC LIMIT ? OFFSET ?`)).
		WithArgs(int64(2), "Pending", "%dev%", 2, 2).
		WillReturnRows(sqlmock.NewRows(jobRowColumns).
			AddRow(9, "Beta", "Backend Dev", "Pending", "Full-Time", "Mumbai", 2, now, now))

	jobs, total, err := repo.List(context.Background(), model.JobQuery{
		OwnerID: 2,
		Status:  model.StatusPending,
		Search:  "dev",
		Sort:    model.SortZA,
		Page:    2,
		Limit:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Backend Dev", jobs[0].Position)
}

func TestJobRepository_List_EmptyIsNotNil(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewJobRepository(db)

	mock.ExpectQuery(`SELECT COUNT`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`ORDER BY created_at DESC`).WillReturnRows(sqlmock.NewRows(jobRowColumns))

	jobs, total, err := repo.List(context.Background(), model.JobQuery{OwnerID: 1, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

func TestJobRepository_UpdateOwned(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewJobRepository(db)

	status := model.StatusReject
	position := "Senior Dev"

	mock.ExpectExec(`UPDATE jobs SET .* WHERE id = \? AND created_by = \?`).
		WithArgs(nil, "Senior Dev", "Reject", nil, nil, sqlmock.AnyArg(), int64(12), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE jobs SET`).
		WithArgs(nil, nil, "Reject", nil, nil, sqlmock.AnyArg(), int64(12), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.UpdateOwned(context.Background(), 12, 1, model.JobPatch{Position: &position, Status: &status})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.UpdateOwned(context.Background(), 12, 2, model.JobPatch{Status: &status})
	require.NoError(t, err)
	assert.False(t, ok, "another user's job must not match")
}

func TestJobRepository_DeleteOwned(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewJobRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM jobs WHERE id = ? AND created_by = ?`)).
		WithArgs(int64(12), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.DeleteOwned(context.Background(), 12, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestJobRepository_CountByStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewJobRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status, COUNT(*) FROM jobs WHERE created_by = ? GROUP BY status`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("Pending", 4).
			AddRow("Reject", 1))

	counts, err := repo.CountByStatus(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, map[model.JobStatus]int{model.StatusPending: 4, model.StatusReject: 1}, counts)
}

func TestEnsureSchema(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS jobs`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, EnsureSchema(context.Background(), db))
}
