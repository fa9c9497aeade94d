package v1

import (
	"io"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(protected *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	users := protected.Group("/users")
	{
		users.GET("/profile", handler.GetProfile)
		users.PUT("/profile", handler.UpdateProfile)
		users.POST("/cv", handler.UploadCV)
		users.PUT("/skills", handler.SetSkills)
	}
}

type UpdateProfileRequest struct {
	Name     *string `json:"name" binding:"omitempty,valid_name"`
	Phone    *string `json:"phone" binding:"omitempty,valid_phone"`
	Location *string `json:"location" binding:"omitempty,max=255,no_emoji"`
	Bio      *string `json:"bio" binding:"omitempty,max=2000"`
}

type SetSkillsRequest struct {
	SkillIDs []int64 `json:"skill_ids" binding:"required"`
}

// GetProfile godoc
// @Summary      Get my profile
// @Description  Return the authenticated user's profile with skills
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /users/profile [get]
// @Security     BearerAuth
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	profile, err := h.userUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", profile)
}

// UpdateProfile godoc
// @Summary      Update my profile
// @Description  Partially update name, phone, location or bio
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateProfileRequest  true  "Profile fields"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /users/profile [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	user, err := h.userUC.UpdateProfile(c.Request.Context(), userID, domain.ProfileUpdate{
		Name:     req.Name,
		Phone:    req.Phone,
		Location: req.Location,
		Bio:      req.Bio,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", user)
}

// UploadCV godoc
// @Summary      Upload my CV
// @Description  Upload a CV file (PDF, DOC, DOCX or TXT, max 10MB); replaces any previous CV
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CV file"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /users/cv [post]
// @Security     BearerAuth
func (h *UserHandler) UploadCV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("CV file is required"))
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

	userID := c.GetInt64(string(domain.KeyUserID))
	user, err := h.userUC.UploadCV(
		c.Request.Context(),
		userID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		content,
	)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV uploaded", user)
}

// SetSkills godoc
// @Summary      Replace my skills
// @Description  Replace the full set of the user's declared skills
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      SetSkillsRequest  true  "Skill IDs"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /users/skills [put]
// @Security     BearerAuth
func (h *UserHandler) SetSkills(c *gin.Context) {
	var req SetSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	skills, err := h.userUC.SetSkills(c.Request.Context(), userID, req.SkillIDs)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skills updated", skills)
}
