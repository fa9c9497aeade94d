package v1

import (
	"io"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ATSHandler struct {
	atsUC domain.ATSUsecase
}

func NewATSHandler(protected *gin.RouterGroup, atsUC domain.ATSUsecase) {
	handler := &ATSHandler{atsUC: atsUC}

	protected.POST("/ats/check", handler.Check)
}

// Check godoc
// @Summary      Score a resume against a job description
// @Description  Upload a resume plus a job description and get an AI compatibility verdict
// @Tags         ats
// @Accept       multipart/form-data
// @Produce      json
// @Param        cv              formData  file    true  "Resume file"
// @Param        jobDescription  formData  string  true  "Job description text"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /ats/check [post]
// @Security     BearerAuth
func (h *ATSHandler) Check(c *gin.Context) {
	fileHeader, err := c.FormFile("cv")
	if err != nil {
		c.Error(apperror.BadRequest("A cv file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	analysis, err := h.atsUC.CheckResume(
		c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		content,
		c.PostForm("jobDescription"),
	)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume analyzed", analysis)
}
