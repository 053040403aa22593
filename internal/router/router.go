package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hivedesk-dev/hivedesk/internal/handlers"
	"github.com/hivedesk-dev/hivedesk/internal/middleware"
	"github.com/hivedesk-dev/hivedesk/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.POST("/logout", handlers.Logout)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
			auth.PATCH("/me", middleware.AuthMiddleware(), handlers.UpdateUser)
		}

		invitations := api.Group("/invitations", middleware.AuthMiddleware())
		{
			invitations.GET("", handlers.ListMyInvitations)
			invitations.POST("/:invitation_id/respond", handlers.RespondInvitation)
		}

		workspaces := api.Group("/workspaces", middleware.AuthMiddleware())
		{
			workspaces.POST("", handlers.CreateWorkspace)
			workspaces.GET("", handlers.ListWorkspaces)
			workspaces.DELETE("/:workspace_name", handlers.DeleteWorkspace)

			// Membership
			workspaces.GET("/:workspace_name/members", handlers.ListMembers)
			workspaces.POST("/:workspace_name/members", handlers.AddMember)
			workspaces.DELETE("/:workspace_name/members/:user_name", handlers.RemoveMember)
			workspaces.POST("/:workspace_name/quit", handlers.QuitWorkspace)

			// Invitations
			workspaces.POST("/:workspace_name/invitations", handlers.CreateInvitation)
			workspaces.GET("/:workspace_name/invitations", handlers.ListWorkspaceInvitations)

			// Tasks
			workspaces.POST("/:workspace_name/tasks", handlers.CreateTask)
			workspaces.GET("/:workspace_name/tasks", handlers.ListTasks)
			workspaces.PATCH("/:workspace_name/tasks/:task_id", handlers.UpdateTask)
			workspaces.DELETE("/:workspace_name/tasks/:task_id", handlers.DeleteTask)

			// Notes
			workspaces.POST("/:workspace_name/notes", handlers.CreateNote)
			workspaces.GET("/:workspace_name/notes", handlers.ListNotes)
			workspaces.PATCH("/:workspace_name/notes/:note_id", handlers.UpdateNote)
			workspaces.DELETE("/:workspace_name/notes/:note_id", handlers.DeleteNote)

			// Preferences
			workspaces.GET("/:workspace_name/preference", handlers.GetPreference)
			workspaces.PUT("/:workspace_name/preference", handlers.SavePreference)
		}
	}

	return r
}
