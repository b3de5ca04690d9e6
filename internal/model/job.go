package model

import "time"

type JobStatus string

const (
	StatusPending   JobStatus = "Pending"
	StatusReject    JobStatus = "Reject"
	StatusInterview JobStatus = "Interview Scheduled"
)

// JobStatuses lists every status in display order.
var JobStatuses = []JobStatus{StatusPending, StatusReject, StatusInterview}

func (s JobStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReject, StatusInterview:
		return true
	}
	return false
}

type WorkType string

const (
	WorkFullTime   WorkType = "Full-Time"
	WorkPartTime   WorkType = "Part-Time"
	WorkInternship WorkType = "Internship"
	WorkContract   WorkType = "Contract"
)

func (w WorkType) Valid() bool {
	switch w {
	case WorkFullTime, WorkPartTime, WorkInternship, WorkContract:
		return true
	}
	return false
}

const (
	DefaultWorkLocation = "Mumbai"
	MaxPositionLength   = 100
)

// Job is a tracked job application owned by exactly one user.
type Job struct {
	ID           int64     `json:"_id"`
	Company      string    `json:"company"`
	Position     string    `json:"position"`
	Status       JobStatus `json:"status"`
	WorkType     WorkType  `json:"workType"`
	WorkLocation string    `json:"workLocation"`
	CreatedBy    int64     `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateJobRequest carries the fields accepted when creating a job.
// Empty optional fields take their defaults.
type CreateJobRequest struct {
	Company      string    `json:"company"`
	Position     string    `json:"position"`
	Status       JobStatus `json:"status"`
	WorkType     WorkType  `json:"workType"`
	WorkLocation string    `json:"workLocation"`
}

// JobPatch is a partial update. Nil fields are left untouched.
type JobPatch struct {
	Company      *string    `json:"company"`
	Position     *string    `json:"position"`
	Status       *JobStatus `json:"status"`
	WorkType     *WorkType  `json:"workType"`
	WorkLocation *string    `json:"workLocation"`
}

// Empty reports whether the patch changes nothing.
func (p JobPatch) Empty() bool {
	return p.Company == nil && p.Position == nil && p.Status == nil &&
		p.WorkType == nil && p.WorkLocation == nil
}

// Sort orders accepted by job listing.
const (
	SortLatest = "latest"
	SortOldest = "oldest"
	SortAZ     = "a-z"
	SortZA     = "z-a"
)

// FilterAll disables the status or work type filter.
const FilterAll = "all"

// JobListParams holds raw listing parameters as received from the client.
type JobListParams struct {
	Status   string
	WorkType string
	Search   string
	Sort     string
	Page     string
	Limit    string
}

// JobQuery is a normalized, owner-scoped listing query.
type JobQuery struct {
	OwnerID  int64
	Status   JobStatus // empty means any
	WorkType WorkType  // empty means any
	Search   string
	Sort     string
	Page     int
	Limit    int
}

// Offset is the number of rows skipped before the requested page.
func (q JobQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// JobListResponse is the paginated listing returned to clients.
type JobListResponse struct {
	TotalJobs int   `json:"totalJobs"`
	Jobs      []Job `json:"jobs"`
	NumOfPage int   `json:"numOfPage"`
}

// StatusCount is one entry of the per-status breakdown.
type StatusCount struct {
	Status JobStatus `json:"_id"`
	Count  int       `json:"count"`
}

// JobStats is the per-owner aggregation with every status present.
type JobStats struct {
	Total    int
	ByStatus map[JobStatus]int
}

// Breakdown lists the statuses with at least one job, in display order.
func (s JobStats) Breakdown() []StatusCount {
	out := make([]StatusCount, 0, len(JobStatuses))
	for _, st := range JobStatuses {
		if n := s.ByStatus[st]; n > 0 {
			out = append(out, StatusCount{Status: st, Count: n})
		}
	}
	return out
}
