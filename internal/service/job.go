package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/jobportal/jobportal-go/internal/model"
	"github.com/jobportal/jobportal-go/internal/repository"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

var (
	ErrJobNotFound = errors.New("job not found")
	ErrNotJobOwner = errors.New("you are not authorized to modify this job")
)

// JobService handles job business logic. Every operation is scoped to the
// authenticated owner.
type JobService struct {
	jobs JobStore
}

// NewJobService creates a new JobService.
func NewJobService(jobs JobStore) *JobService {
	return &JobService{jobs: jobs}
}

// Create stores a new job owned by ownerID, applying defaults for the optional fields.
func (s *JobService) Create(ctx context.Context, ownerID int64, req model.CreateJobRequest) (model.Job, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return model.Job{}, err
	}

	job := model.Job{
		Company:      strings.TrimSpace(req.Company),
		Position:     strings.TrimSpace(req.Position),
		Status:       req.Status,
		WorkType:     req.WorkType,
		WorkLocation: strings.TrimSpace(req.WorkLocation),
		CreatedBy:    ownerID,
	}

	if err := s.jobs.Create(ctx, &job); err != nil {
		return model.Job{}, err
	}

	return job, nil
}

// List returns one page of the owner's jobs along with the total count and page count.
func (s *JobService) List(ctx context.Context, ownerID int64, params model.JobListParams) (model.JobListResponse, error) {
	q, err := buildJobQuery(ownerID, params)
	if err != nil {
		return model.JobListResponse{}, err
	}

	jobs, total, err := s.jobs.List(ctx, q)
	if err != nil {
		return model.JobListResponse{}, err
	}
	if jobs == nil {
		jobs = []model.Job{}
	}

	return model.JobListResponse{
		TotalJobs: total,
		Jobs:      jobs,
		NumOfPage: pageCount(total, q.Limit),
	}, nil
}

// Update applies a partial update to a job the caller owns and returns its new state.
func (s *JobService) Update(ctx context.Context, jobID, ownerID int64, patch model.JobPatch) (model.Job, error) {
	if patch.Empty() {
		return model.Job{}, model.NewValidationError("body", "Please provide at least one field to update")
	}
	if err := patch.Validate(); err != nil {
		return model.Job{}, err
	}
	patch = trimPatch(patch)

	matched, err := s.jobs.UpdateOwned(ctx, jobID, ownerID, patch)
	if err != nil {
		return model.Job{}, err
	}
	if !matched {
		if err := s.explainMiss(ctx, jobID, ownerID); err != nil {
			return model.Job{}, err
		}
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return model.Job{}, ErrJobNotFound
		}
		return model.Job{}, err
	}

	return *job, nil
}

// Delete removes a job the caller owns.
func (s *JobService) Delete(ctx context.Context, jobID, ownerID int64) error {
	matched, err := s.jobs.DeleteOwned(ctx, jobID, ownerID)
	if err != nil {
		return err
	}
	if !matched {
		return s.explainMiss(ctx, jobID, ownerID)
	}
	return nil
}

// Stats counts the owner's jobs by status, reporting zero for statuses without jobs.
func (s *JobService) Stats(ctx context.Context, ownerID int64) (model.JobStats, error) {
	counts, err := s.jobs.CountByStatus(ctx, ownerID)
	if err != nil {
		return model.JobStats{}, err
	}

	stats := model.JobStats{ByStatus: make(map[model.JobStatus]int, len(model.JobStatuses))}
	for _, st := range model.JobStatuses {
		stats.ByStatus[st] = 0
	}
	for st, n := range counts {
		if !st.Valid() {
			slog.Warn("job with unknown status", "owner_id", ownerID, "status", st, "count", n)
		} else {
			stats.ByStatus[st] = n
		}
		stats.Total += n
	}

	return stats, nil
}

// explainMiss tells apart a missing job from one owned by somebody else after
// a conditional write matched nothing. It returns nil if the caller does own
// the job, which only happens when the row changed between the two statements.
func (s *JobService) explainMiss(ctx context.Context, jobID, ownerID int64) error {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrJobNotFound
		}
		return err
	}
	if job.CreatedBy != ownerID {
		return ErrNotJobOwner
	}
	return nil
}

// buildJobQuery validates raw listing parameters and fills in defaults.
func buildJobQuery(ownerID int64, p model.JobListParams) (model.JobQuery, error) {
	q := model.JobQuery{
		OwnerID: ownerID,
		Search:  strings.TrimSpace(p.Search),
		Sort:    strings.ToLower(strings.TrimSpace(p.Sort)),
		Page:    positiveIntOr(p.Page, defaultPage),
		Limit:   positiveIntOr(p.Limit, defaultLimit),
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	// (Page-1)*Limit must stay within an int or the OFFSET wraps negative.
	if maxPage := math.MaxInt / q.Limit; q.Page > maxPage {
		q.Page = maxPage
	}

	v := &model.ValidationError{}

	if status := strings.TrimSpace(p.Status); status != "" && !strings.EqualFold(status, model.FilterAll) {
		q.Status = model.JobStatus(status)
		if !q.Status.Valid() {
			v.Add("status", "Unknown status filter "+strconv.Quote(status))
		}
	}

	if workType := strings.TrimSpace(p.WorkType); workType != "" && !strings.EqualFold(workType, model.FilterAll) {
		q.WorkType = model.WorkType(workType)
		if !q.WorkType.Valid() {
			v.Add("workType", "Unknown work type filter "+strconv.Quote(workType))
		}
	}

	switch q.Sort {
	case "":
		q.Sort = model.SortLatest
	case model.SortLatest, model.SortOldest, model.SortAZ, model.SortZA:
	default:
		v.Add("sort", "Sort must be one of latest, oldest, a-z, z-a")
	}

	return q, v.Err()
}

func positiveIntOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func pageCount(total, limit int) int {
	if total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

func trimPatch(p model.JobPatch) model.JobPatch {
	trim := func(s *string) *string {
		if s == nil {
			return nil
		}
		t := strings.TrimSpace(*s)
		return &t
	}
	p.Company = trim(p.Company)
	p.Position = trim(p.Position)
	p.WorkLocation = trim(p.WorkLocation)
	return p
}
