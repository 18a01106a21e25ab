package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/config"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/api/handler"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/api/middleware"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/response"
)

// Setup builds the Gin engine. limiter may be nil, which disables login rate limiting.
func Setup(cfg *config.Config, h *handler.Handler, auth middleware.Authenticator, limiter middleware.Limiter, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	// ── global middleware ──
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger, "/health"))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))
	r.Use(middleware.ErrorHandler(logger))

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Route does not exist")
	})
	r.NoMethod(func(c *gin.Context) {
		response.Error(c, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.GET("/health", h.Health.Check)

	api := r.Group("/api")
	{
		api.POST("/auth/login",
			middleware.AppKey(cfg.Auth.AppKey),
			middleware.RateLimit(limiter, cfg.Auth.LoginRateLimit, cfg.Auth.LoginRateWindow, logger),
			h.Auth.Login,
		)

		authorized := api.Group("")
		authorized.Use(middleware.JWTAuth(auth))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// any authenticated user may read sessions
			authorized.GET("/sessions", h.Session.ListSessions)
			authorized.GET("/sessions/current", h.Session.GetCurrentSession)
			authorized.GET("/sessions/:id", h.Session.GetSession)

			admin := authorized.Group("")
			admin.Use(middleware.RoleAuth(cfg.Auth.AdminRole))

			users := admin.Group("/users")
			{
				users.GET("", h.User.ListUsers)
				users.POST("", h.User.CreateUser)
				users.GET("/:id", h.User.GetUser)
				users.PUT("/:id", h.User.UpdateUser)
				users.DELETE("/:id", h.User.DeleteUser)
			}

			courses := admin.Group("/courses")
			{
				courses.GET("", h.Course.ListCourses)
				courses.POST("", h.Course.CreateCourse)
				courses.GET("/export", h.Export.ExportCourses)
				courses.POST("/import", h.Course.ImportCourses)
				courses.POST("/allocate", h.CourseAllocation.Allocate)
				courses.POST("/allocate/delete", h.CourseAllocation.ClearAll)
				courses.POST("/allocate/delete-specific", h.CourseAllocation.ClearSpecific)
				courses.GET("/:id", h.Course.GetCourse)
				courses.PUT("/:id", h.Course.UpdateCourse)
				courses.DELETE("/:id", h.Course.DeleteCourse)
			}

			roles := admin.Group("/roles")
			{
				roles.GET("", h.Role.ListRoles)
				roles.POST("", h.Role.CreateRole)
				roles.POST("/assign", h.RoleAssignment.Allocate)
				roles.POST("/assign/delete", h.RoleAssignment.ClearAll)
				roles.POST("/assign/delete-specific", h.RoleAssignment.ClearSpecific)
				roles.GET("/:id", h.Role.GetRole)
				roles.PUT("/:id", h.Role.UpdateRole)
				roles.DELETE("/:id", h.Role.DeleteRole)
			}

			sessions := admin.Group("/sessions")
			{
				sessions.POST("", h.Session.CreateSession)
				sessions.PUT("/set-current/:id", h.Session.SetCurrentSession)
				sessions.PUT("/:id", h.Session.UpdateSession)
				sessions.DELETE("/:id", h.Session.DeleteSession)
			}
		}
	}

	return r
}
