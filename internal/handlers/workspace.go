package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hivedesk-dev/hivedesk/db"
	"github.com/hivedesk-dev/hivedesk/internal/services"
	"github.com/hivedesk-dev/hivedesk/internal/types"
	"github.com/hivedesk-dev/hivedesk/internal/utils"
)

type CreateWorkspaceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

func CreateWorkspace(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateWorkspaceRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	dueDate, err := parseDate(req.DueDate)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ws, err := services.CreateWorkspace(db.DB, user, req.Name, req.Description, dueDate)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":   "Workspace created successfully",
		"workspace": toWorkspaceResponse(services.Access{Role: services.RoleOwner, Workspace: ws}),
	})
}

func ListWorkspaces(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	accesses, err := services.ListWorkspaces(db.DB, user)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.WorkspaceResponse, 0, len(accesses))

	for _, access := range accesses {
		response = append(response, toWorkspaceResponse(access))
	}

	ctx.JSON(http.StatusOK, gin.H{"workspaces": response})
}

func DeleteWorkspace(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := services.DeleteWorkspace(db.DB, user, ctx.Param("workspace_name")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Workspace deleted successfully"})
}
