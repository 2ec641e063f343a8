package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/jobly/internal/auth"
)

// HealthCheck reports service liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RegisterRoutes mounts every API endpoint with its auth guards. Reads on
// companies and jobs are public; every mutation is admin-only, and the
// user routes additionally allow the user acting on their own account.
func RegisterRoutes(r *gin.Engine, tokens *auth.TokenManager, authHandler *AuthHandler, companies *CompanyHandler, jobs *JobHandler, users *UserHandler) {
	r.Use(tokens.Authenticate())

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/token", authHandler.Login)
			authGroup.POST("/register", authHandler.Register)
		}

		companyGroup := api.Group("/companies")
		{
			companyGroup.GET("", companies.ListCompanies)
			companyGroup.GET("/:handle", companies.GetCompany)
			companyGroup.POST("", auth.RequireAdmin(), companies.CreateCompany)
			companyGroup.PATCH("/:handle", auth.RequireAdmin(), companies.UpdateCompany)
			companyGroup.DELETE("/:handle", auth.RequireAdmin(), companies.DeleteCompany)
		}

		jobGroup := api.Group("/jobs")
		{
			jobGroup.GET("", jobs.ListJobs)
			jobGroup.GET("/:id", jobs.GetJob)
			jobGroup.POST("", auth.RequireAdmin(), jobs.CreateJob)
			jobGroup.PATCH("/:id", auth.RequireAdmin(), jobs.UpdateJob)
			jobGroup.DELETE("/:id", auth.RequireAdmin(), jobs.DeleteJob)
		}

		userGroup := api.Group("/users")
		{
			userGroup.POST("", auth.RequireAdmin(), users.CreateUser)
			userGroup.GET("", auth.RequireAdmin(), users.ListUsers)
			userGroup.GET("/:username", auth.RequireAdminOrSelf("username"), users.GetUser)
			userGroup.PATCH("/:username", auth.RequireAdminOrSelf("username"), users.UpdateUser)
			userGroup.DELETE("/:username", auth.RequireAdminOrSelf("username"), users.DeleteUser)
			userGroup.POST("/:username/jobs/:id", auth.RequireAdminOrSelf("username"), users.ApplyToJob)
		}
	}
}
