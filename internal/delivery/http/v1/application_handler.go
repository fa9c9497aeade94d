package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	appUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, appUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{appUC: appUC}

	candidateOnly := middleware.RequireRole(domain.RoleCandidate)
	recruiterOnly := middleware.RequireRole(domain.RoleRecruiter)

	protected.POST("/jobs/:id/apply", candidateOnly, handler.Apply)
	protected.GET("/jobs/:id/applications", recruiterOnly, handler.ListByJob)
	protected.GET("/applications/me", candidateOnly, handler.ListMine)
	protected.GET("/applications", recruiterOnly, handler.ListForRecruiter)
	protected.PUT("/applications/:id/status", recruiterOnly, handler.UpdateStatus)
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending accepted rejected"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submit an application to an active job; one per job per candidate
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      201  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	app, err := h.appUC.ApplyToJob(c.Request.Context(), userID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// ListMine godoc
// @Summary      My applications
// @Description  List the candidate's applications with job summaries
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /applications/me [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	apps, err := h.appUC.GetMyApplications(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", apps)
}

// ListByJob godoc
// @Summary      Applications for a job
// @Description  List applications to one owned job, with candidate details and skills
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	apps, err := h.appUC.ListByJob(c.Request.Context(), userID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", apps)
}

// ListForRecruiter godoc
// @Summary      Applications across my jobs
// @Description  List applications to every job the recruiter owns
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForRecruiter(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	apps, err := h.appUC.ListForRecruiter(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", apps)
}

// UpdateStatus godoc
// @Summary      Update application status
// @Description  Set an application's status to pending, accepted or rejected (owner of the job only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "New status"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/{id}/status [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	appID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	app, err := h.appUC.UpdateStatus(c.Request.Context(), userID, appID, req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", app)
}
