package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/jobly/internal/dtos"
	"github.com/justsurfingit/jobly/internal/repository"
)

type JobHandler struct {
	Jobs *repository.JobRepository
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(jobs *repository.JobRepository) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

// CreateJob is the POST /jobs endpoint (admin only).
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	job, err := h.Jobs.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": job})
}

// ListJobs is the GET /jobs endpoint. Supports the title, minSalary and
// hasEquity query filters; anything else is a 400.
func (h *JobHandler) ListJobs(c *gin.Context) {
	if !requireKnownQuery(c, "title", "minSalary", "hasEquity") {
		return
	}

	var filter dtos.JobFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	jobs, err := h.Jobs.FindAll(c.Request.Context(), &filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// GetJob is the GET /jobs/:id endpoint.
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}

	job, err := h.Jobs.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// UpdateJob is the PATCH /jobs/:id endpoint (admin only).
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}

	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	job, err := h.Jobs.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// DeleteJob is the DELETE /jobs/:id endpoint (admin only).
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}

	if err := h.Jobs.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// jobID parses the :id route parameter, responding 400 on garbage.
func jobID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id: " + c.Param("id")})
		return 0, false
	}
	return id, true
}
