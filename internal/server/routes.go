// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	// Init swagger doc
	_ "campusjobs-backend/docs"

	"campusjobs-backend/internal/auth"
	"campusjobs-backend/internal/controller/job"
	"campusjobs-backend/internal/controller/notification"
	"campusjobs-backend/internal/controller/user"
	"campusjobs-backend/internal/middleware"
	"campusjobs-backend/internal/model"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(s.logger), middleware.SafeHeader())

	if len(s.cfg.AllowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     s.cfg.AllowOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
			AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
		}))
	}
	r.Use(middleware.SizeLimit(s.cfg.MaxBodyBytes))

	lAuth := auth.NewLocalAuthHandler(s.store, s.tokens, s.blacklist, s.logger)
	jc := job.NewJobController(s.jobs)
	nc := notification.NewNotificationController(s.notifications, s.hub)
	uc := user.NewUserController(s.store)

	r.GET("/health", s.healthHandler)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		authRoute := v1.Group("/auth")
		{
			authRoute.POST("register", middleware.RateLimiterMiddleware(s.cfg.RateLimitPerSec), lAuth.Register)
			authRoute.POST("login", middleware.RateLimiterMiddleware(s.cfg.RateLimitPerSec), lAuth.Login)
			authRoute.POST("logout", middleware.RequireAuth(s.store, s.tokens), middleware.JwtBlacklistCheck(s.blacklist), lAuth.Logout)
		}

		// EventSource cannot set headers, so the stream also takes the token from the query.
		v1.GET("/notifications/stream",
			middleware.RequireAuthOrQueryToken(s.store, s.tokens),
			middleware.JwtBlacklistCheck(s.blacklist),
			nc.Stream,
		)

		needAuth := v1.Group("")
		needAuth.Use(
			middleware.RequireAuth(s.store, s.tokens),
			middleware.JwtBlacklistCheck(s.blacklist),
			middleware.RateLimiterMiddleware(s.cfg.RateLimitPerSec),
		)
		{
			userRoute := needAuth.Group("/users")
			{
				userRoute.GET("me", uc.Me)
				userRoute.PATCH("me/skills", uc.UpdateSkills)
			}

			posters := middleware.CheckRole(model.RoleAlumni, model.RoleFaculty, model.RoleAdmin)
			jobRoute := needAuth.Group("/jobs")
			{
				jobRoute.POST("", posters, jc.CreateJob)
				jobRoute.GET("", jc.ListJobs)
				jobRoute.GET("my/posted", posters, jc.MyPostedJobs)
				jobRoute.GET(":id", jc.GetJob)
				jobRoute.POST(":id/apply", jc.ApplyJob)
				jobRoute.GET(":id/applicants", jc.GetApplicants)
				jobRoute.PATCH(":id/status", middleware.CheckRole(model.RoleAdmin), jc.UpdateJobStatus)
				jobRoute.PATCH(":id/applicants/:user_id/status", jc.UpdateApplicantStatus)
			}

			notificationRoute := needAuth.Group("/notifications")
			{
				notificationRoute.GET("", nc.List)
				notificationRoute.GET("unread-count", nc.UnreadCount)
				notificationRoute.POST("mark-all-read", nc.MarkAllRead)
				notificationRoute.POST(":id/mark-read", nc.MarkRead)
				notificationRoute.DELETE(":id", nc.Delete)
			}
		}
	}

	return r
}

// healthHandler godoc
// @Summary Check the health of the store
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (s *Server) healthHandler(c *gin.Context) {
	stats := s.store.Health()
	if stats["status"] != "up" {
		c.JSON(http.StatusServiceUnavailable, stats)
		return
	}
	c.JSON(http.StatusOK, stats)
}
