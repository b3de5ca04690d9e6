package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jobportal/jobportal-go/internal/model"
	"github.com/jobportal/jobportal-go/internal/service"
)

// JobHandler handles HTTP requests for job applications.
type JobHandler struct {
	service *service.JobService
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(svc *service.JobService) *JobHandler {
	return &JobHandler{service: svc}
}

// HandleCreateJob handles POST /api/v1/job/create-job requests.
func (h *JobHandler) HandleCreateJob(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req model.CreateJobRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	job, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "job": job})
}

// HandleListJobs handles GET /api/v1/job/get-job requests.
func (h *JobHandler) HandleListJobs(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	resp, err := h.service.List(r.Context(), userID, model.JobListParams{
		Status:   q.Get("status"),
		WorkType: q.Get("workType"),
		Search:   q.Get("search"),
		Sort:     q.Get("sort"),
		Page:     q.Get("page"),
		Limit:    q.Get("limit"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"totalJobs": resp.TotalJobs,
		"jobs":      resp.Jobs,
		"numOfPage": resp.NumOfPage,
	})
}

// HandleUpdateJob handles PATCH /api/v1/job/update-job/{id} requests.
func (h *JobHandler) HandleUpdateJob(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	jobID, err := jobIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var patch model.JobPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, r, err)
		return
	}

	job, err := h.service.Update(r.Context(), jobID, userID, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "updateJob": job})
}

// HandleDeleteJob handles DELETE /api/v1/job/delete-job/{id} requests.
func (h *JobHandler) HandleDeleteJob(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	jobID, err := jobIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), jobID, userID); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Job deleted successfully"})
}

// HandleJobStats handles GET /api/v1/job/job-stats requests.
func (h *JobHandler) HandleJobStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	stats, err := h.service.Stats(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"Total_Jobs":   stats.Total,
		"stats":        stats.Breakdown(),
		"defaultStats": stats.ByStatus,
	})
}

func jobIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errInvalidJobID
	}
	return id, nil
}
