package handlers

import (
	"net/http"

	"github.com/amikaross/rails-engine/internal/jobs/background"

	"github.com/labstack/echo/v4"
)

// JobStatusProvider is implemented by *background.JobScheduler
type JobStatusProvider interface {
	GetJobStatus() []background.JobStatus
}

type JobHandlers struct {
	scheduler JobStatusProvider
}

func NewJobHandlers(scheduler JobStatusProvider) *JobHandlers {
	return &JobHandlers{scheduler: scheduler}
}

// ListJobs godoc
// @Summary      Background job status
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health/jobs [get]
func (h *JobHandlers) ListJobs(c echo.Context) error {
	statuses := h.scheduler.GetJobStatus()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"total_jobs": len(statuses),
		"jobs":       statuses,
	})
}
