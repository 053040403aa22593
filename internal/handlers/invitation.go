package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hivedesk-dev/hivedesk/db"
	"github.com/hivedesk-dev/hivedesk/internal/services"
	"github.com/hivedesk-dev/hivedesk/internal/types"
	"github.com/hivedesk-dev/hivedesk/internal/utils"
)

type CreateInvitationRequest struct {
	Invitee string `json:"invitee" binding:"required"`
}

type RespondInvitationRequest struct {
	Action string `json:"action" binding:"required,oneof=accept reject"`
}

func CreateInvitation(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateInvitationRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	inv, err := services.Invite(db.DB, user, req.Invitee, ctx.Param("workspace_name"))

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":       "Invitation sent successfully",
		"invitation_id": inv.ID,
	})
}

func ListMyInvitations(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	invitations, err := services.ListPendingForUser(db.DB, user.ID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.InvitationResponse, 0, len(invitations))

	for _, inv := range invitations {
		resp := toInvitationResponse(inv)
		resp.Invitee = user.Name
		response = append(response, resp)
	}

	ctx.JSON(http.StatusOK, gin.H{"invitations": response})
}

func ListWorkspaceInvitations(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaceName := ctx.Param("workspace_name")
	invitations, err := services.ListForWorkspace(db.DB, user, workspaceName)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.InvitationResponse, 0, len(invitations))

	for _, inv := range invitations {
		resp := toInvitationResponse(inv)
		resp.WorkspaceName = workspaceName
		response = append(response, resp)
	}

	ctx.JSON(http.StatusOK, gin.H{"invitations": response})
}

func RespondInvitation(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	invitationID, err := strconv.ParseUint(ctx.Param("invitation_id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID"})
		return
	}

	var req RespondInvitationRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Action must be accept or reject"})
		return
	}

	inv, err := services.Respond(db.DB, user, uint(invitationID), req.Action == "accept")

	if err != nil {
		respondError(ctx, err)
		return
	}

	message := "Invitation rejected"

	if req.Action == "accept" {
		message = "Invitation accepted"
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
		"status":  string(inv.Status),
	})
}
