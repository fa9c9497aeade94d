package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	UserUC        domain.UserUsecase
	SkillUC       domain.SkillUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	MessageUC     domain.MessageUsecase
	ATSUC         domain.ATSUsecase
	Tokens        *token.Service
	DB            *pgxpool.Pool
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// CORS must run before anything that can abort the request.
	r.Use(middleware.CORSMiddleware())
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		if err := deps.DB.Ping(c.Request.Context()); err != nil {
			response.Error(c, http.StatusServiceUnavailable, "Database unreachable", nil)
			return
		}
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Login and registration get a tighter rate limit than the rest.
	authLimited := v1.Group("")
	authLimited.Use(middleware.RateLimitMiddleware(middleware.AuthRateLimitConfig(deps.Config.RateLimitAuthThreshold, window)))

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))
	{
		NewAuthHandler(authLimited, protected, deps.AuthUC)
		NewUserHandler(protected, deps.UserUC)
		NewSkillHandler(protected, deps.SkillUC)
		NewJobHandler(v1, protected, deps.JobUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewMessageHandler(protected, deps.MessageUC)
		NewATSHandler(protected, deps.ATSUC)
	}

	return r
}
