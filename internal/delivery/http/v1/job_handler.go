package v1

import (
	"go-marketplace-backend/internal/delivery/http/response"
	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

// NewJobHandler registers job routes. Browsing open jobs is public; creating
// and managing jobs requires a customer account.
func NewJobHandler(public, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	public.GET("/jobs", handler.ListOpenJobs)
	public.GET("/jobs/:id", handler.GetJob)

	protected.POST("/jobs", handler.CreateJob)
	protected.PATCH("/jobs/:id/status", handler.UpdateJobStatus)
	protected.GET("/customers/jobs", handler.ListMyJobs)
}

// CreateJobRequest is the payload for posting a job
type CreateJobRequest struct {
	Title       string   `json:"title" binding:"required,min=5,max=120"`
	Description string   `json:"description" binding:"required,min=20"`
	Category    string   `json:"category" binding:"required,job_category"`
	Location    string   `json:"location" binding:"required"`
	Timeframe   string   `json:"timeframe" binding:"required"`
	BudgetMin   float64  `json:"budget_min" binding:"required,gt=0"`
	BudgetMax   float64  `json:"budget_max" binding:"required,gt=0"`
	Photos      []string `json:"photos"`
}

// UpdateJobStatusRequest carries the target status for a job transition
type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=in_progress completed cancelled"`
}

// JobListResponse wraps a paginated job listing
type JobListResponse struct {
	Jobs  []domain.Job `json:"jobs"`
	Total int64        `json:"total"`
}

// CreateJob godoc
// @Summary      Post a job
// @Description  Create an open job; customers only
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      CreateJobRequest  true  "Job data"
// @Success      201   {object}  response.Response{data=domain.Job}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleCustomer {
		c.Error(apperror.Forbidden("Only customers can post jobs"))
		return
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Timeframe:   req.Timeframe,
		BudgetMin:   req.BudgetMin,
		BudgetMax:   req.BudgetMax,
		Photos:      req.Photos,
	}

	customerID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.CreateJob(c.Request.Context(), customerID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job posted", job)
}

// ListOpenJobs godoc
// @Summary      Browse open jobs
// @Description  List open jobs, optionally filtered by category and a free-text search term
// @Tags         jobs
// @Produce      json
// @Param        category  query     string  false  "Category filter"
// @Param        q         query     string  false  "Search term (title, description, location)"
// @Success      200       {object}  response.Response{data=[]domain.Job}
// @Router       /jobs [get]
func (h *JobHandler) ListOpenJobs(c *gin.Context) {
	category := c.Query("category")

	var jobs []domain.Job
	var err error
	if term := c.Query("q"); term != "" {
		jobs, err = h.jobUC.SearchJobs(c.Request.Context(), term, category)
	} else {
		jobs, err = h.jobUC.ListOpenJobs(c.Request.Context(), category)
	}
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

// GetJob godoc
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	job, err := h.jobUC.GetJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job retrieved", job)
}

// UpdateJobStatus godoc
// @Summary      Advance a job's status
// @Description  Move a job forward (open → in_progress → completed, or cancel); job owner only
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      int                     true  "Job ID"
// @Param        body  body      UpdateJobStatusRequest  true  "Target status"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /jobs/{id}/status [patch]
// @Security     BearerAuth
func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	var req UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	customerID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.AdvanceJobStatus(c.Request.Context(), customerID, id, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job status updated", nil)
}

// ListMyJobs godoc
// @Summary      List my jobs
// @Description  Jobs posted by the authenticated customer, newest first
// @Tags         jobs
// @Produce      json
// @Param        page       query     int  false  "Page number"     default(1)
// @Param        page_size  query     int  false  "Items per page"  default(10)
// @Success      200        {object}  response.Response{data=JobListResponse}
// @Failure      401        {object}  response.Response
// @Router       /customers/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	customerID := c.GetString(string(domain.KeyUserID))
	jobs, total, err := h.jobUC.ListMyJobs(c.Request.Context(), customerID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", JobListResponse{Jobs: jobs, Total: total})
}
