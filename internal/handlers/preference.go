package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hivedesk-dev/hivedesk/db"
	"github.com/hivedesk-dev/hivedesk/internal/services"
	"github.com/hivedesk-dev/hivedesk/internal/utils"
)

type SavePreferenceRequest struct {
	Theme string `json:"theme" binding:"required"`
}

func GetPreference(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	pref, err := services.GetPreference(db.DB, user, ctx.Param("workspace_name"))

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"theme": pref.Theme})
}

func SavePreference(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req SavePreferenceRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	pref, err := services.SavePreference(db.DB, user, ctx.Param("workspace_name"), req.Theme)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Preference saved successfully",
		"theme":   pref.Theme,
	})
}
