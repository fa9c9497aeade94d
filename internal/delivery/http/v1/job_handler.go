package v1

import (
	"net/http"
	"strconv"
	"strings"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Browsing is open; only active jobs ever come back.
	public.GET("/jobs", handler.List)
	public.GET("/jobs/:id", handler.GetDetails)

	jobs := protected.Group("/jobs")
	{
		jobs.GET("/relevant", middleware.RequireRole(domain.RoleCandidate), handler.ListRelevant)
		jobs.POST("", middleware.RequireRole(domain.RoleRecruiter), handler.Create)
		jobs.PUT("/:id", middleware.RequireRole(domain.RoleRecruiter), handler.Update)
		jobs.DELETE("/:id", middleware.RequireRole(domain.RoleRecruiter), handler.Delete)
	}
}

type CreateJobRequest struct {
	Title          string  `json:"title" binding:"required,max=255"`
	Description    string  `json:"description" binding:"required"`
	Company        string  `json:"company" binding:"required,max=255"`
	Location       string  `json:"location" binding:"required,max=255"`
	Salary         string  `json:"salary"`
	SalaryCurrency string  `json:"salary_currency" binding:"omitempty,len=3"`
	EmploymentType string  `json:"employment_type" binding:"omitempty,oneof=full-time part-time contract internship remote"`
	SkillIDs       []int64 `json:"skill_ids"`
}

type UpdateJobRequest struct {
	Title          *string  `json:"title" binding:"omitempty,max=255"`
	Description    *string  `json:"description"`
	Company        *string  `json:"company" binding:"omitempty,max=255"`
	Location       *string  `json:"location" binding:"omitempty,max=255"`
	Salary         *string  `json:"salary"`
	SalaryCurrency *string  `json:"salary_currency" binding:"omitempty,len=3"`
	EmploymentType *string  `json:"employment_type" binding:"omitempty,oneof=full-time part-time contract internship remote"`
	IsActive       *bool    `json:"is_active"`
	SkillIDs       *[]int64 `json:"skill_ids"`
}

// parseJobFilter reads the optional listing filters from the query string.
// Malformed numeric values degrade to "no constraint" rather than erroring.
func parseJobFilter(c *gin.Context) domain.JobFilter {
	filter := domain.JobFilter{
		Search:         strings.TrimSpace(c.Query("search")),
		Location:       strings.TrimSpace(c.Query("location")),
		Company:        strings.TrimSpace(c.Query("company")),
		EmploymentType: strings.TrimSpace(c.Query("employment_type")),
		MinSalary:      domain.ParseSalaryBound(c.Query("min_salary")),
		MaxSalary:      domain.ParseSalaryBound(c.Query("max_salary")),
	}

	for _, raw := range strings.Split(c.Query("skill_ids"), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			filter.SkillIDs = append(filter.SkillIDs, id)
		}
	}
	return filter
}

// List godoc
// @Summary      List jobs
// @Description  List active jobs, optionally filtered by search, location, company, employment_type, min_salary, max_salary and skill_ids
// @Tags         jobs
// @Produce      json
// @Param        search          query  string  false  "Substring over title, description and company"
// @Param        location        query  string  false  "Location substring"
// @Param        company         query  string  false  "Company substring"
// @Param        employment_type  query  string  false  "Exact employment type"
// @Param        min_salary       query  int     false  "Minimum salary"
// @Param        max_salary       query  int     false  "Maximum salary"
// @Param        skill_ids        query  string  false  "Comma-separated skill IDs (any-of)"
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobUC.ListJobs(c.Request.Context(), parseJobFilter(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", jobs)
}

// ListRelevant godoc
// @Summary      List relevant jobs
// @Description  List active jobs ranked by overlap with the candidate's declared skills
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs/relevant [get]
// @Security     BearerAuth
func (h *JobHandler) ListRelevant(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	jobs, err := h.jobUC.ListRelevantJobs(c.Request.Context(), userID, parseJobFilter(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", jobs)
}

// GetDetails godoc
// @Summary      Get a job
// @Description  Return an active job with recruiter and skills
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", job)
}

// Create godoc
// @Summary      Create a job
// @Description  Post a new job (recruiter only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      CreateJobRequest  true  "Job payload"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	job := &domain.Job{
		Title:          req.Title,
		Description:    req.Description,
		Company:        req.Company,
		Location:       req.Location,
		SalaryText:     toPtr(req.Salary),
		SalaryCurrency: req.SalaryCurrency,
		EmploymentType: toPtr(req.EmploymentType),
	}

	details, err := h.jobUC.CreateJob(c.Request.Context(), userID, job, req.SkillIDs)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", details)
}

// Update godoc
// @Summary      Update a job
// @Description  Partially update an owned job; skill_ids replaces the full skill set
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Job ID"
// @Param        body  body      UpdateJobRequest  true  "Changed fields"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	upd := domain.JobUpdate{
		Title:          req.Title,
		Description:    req.Description,
		Company:        req.Company,
		Location:       req.Location,
		SalaryText:     req.Salary,
		SalaryCurrency: req.SalaryCurrency,
		EmploymentType: req.EmploymentType,
		IsActive:       req.IsActive,
	}
	if req.SkillIDs != nil {
		upd.SkillsProvided = true
		upd.SkillIDs = *req.SkillIDs
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	details, err := h.jobUC.UpdateJob(c.Request.Context(), userID, id, upd)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", details)
}

// Delete godoc
// @Summary      Delete a job
// @Description  Delete an owned job; its applications go with it
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.jobUC.DeleteJob(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", nil)
}
