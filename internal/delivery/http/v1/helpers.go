package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// bindError turns a binding failure into a 400 with per-field messages when
// the error came from validator, or a generic message otherwise.
func bindError(c *gin.Context, err error) {
	if msgs := validation.Translate(err); len(msgs) > 0 {
		response.Error(c, http.StatusBadRequest, "Validation failed", msgs)
		c.Abort()
		return
	}
	c.Error(apperror.BadRequest("Invalid request body"))
}

// pathID parses the named int64 path parameter, erroring the request on
// malformed input.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.Error(apperror.BadRequest("Invalid " + name + " parameter"))
		return 0, false
	}
	return id, true
}

func toPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
