package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hivedesk-dev/hivedesk/db"
	"github.com/hivedesk-dev/hivedesk/internal/models"
	"github.com/hivedesk-dev/hivedesk/internal/services"
	"github.com/hivedesk-dev/hivedesk/internal/types"
	"github.com/hivedesk-dev/hivedesk/internal/utils"
)

type AddMemberRequest struct {
	Name string `json:"name" binding:"required"`
}

func ListMembers(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	access, members, err := services.ListMembers(db.DB, user, ctx.Param("workspace_name"))

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := []types.MemberResponse{
		{
			UserID: access.Workspace.OwnerID,
			Name:   access.Workspace.OwnerName,
			Role:   services.RoleOwner.String(),
		},
	}

	for _, member := range members {
		response = append(response, types.MemberResponse{
			UserID: member.UserID,
			Name:   member.User.Name,
			Role:   member.Role,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"members": response})
}

// AddMember is the owner's direct add; an existing membership is a conflict
// here, unlike the invitation-acceptance path.
func AddMember(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req AddMemberRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	target, err := services.AddMemberDirect(db.DB, user, ctx.Param("workspace_name"), req.Name)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Member added successfully",
		"member": types.MemberResponse{
			UserID: target.ID,
			Name:   target.Name,
			Role:   models.RoleMember,
		},
	})
}

func RemoveMember(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	err = services.RemoveMember(db.DB, user, ctx.Param("workspace_name"), ctx.Param("user_name"))

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Member removed successfully"})
}

func QuitWorkspace(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := services.Quit(db.DB, user, ctx.Param("workspace_name")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "You have left the workspace"})
}
