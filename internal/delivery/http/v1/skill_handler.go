package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(protected *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	protected.GET("/skills", handler.List)
	protected.POST("/skills", handler.Create)
}

type CreateSkillsRequest struct {
	Names []string `json:"names" binding:"required,min=1,dive,max=100"`
}

// List godoc
// @Summary      List skills
// @Description  Return the full skill catalog
// @Tags         skills
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /skills [get]
// @Security     BearerAuth
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillUC.ListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", skills)
}

// Create godoc
// @Summary      Add skills
// @Description  Add new skills to the catalog; names that already exist are skipped
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        body  body      CreateSkillsRequest  true  "Skill names"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /skills [post]
// @Security     BearerAuth
func (h *SkillHandler) Create(c *gin.Context) {
	var req CreateSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	added, existing, err := h.skillUC.CreateSkills(c.Request.Context(), req.Names)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Skills added", gin.H{
		"added":    added,
		"existing": existing,
	})
}
