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

type CreateNoteRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content"`
	IsPinned bool   `json:"is_pinned"`
}

type UpdateNoteRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	IsPinned *bool   `json:"is_pinned"`
}

func getNoteID(ctx *gin.Context) (uint, error) {
	noteID, err := strconv.ParseUint(ctx.Param("note_id"), 10, 64)

	if err != nil {
		return 0, err
	}

	return uint(noteID), nil
}

func CreateNote(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateNoteRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	note, err := services.CreateNote(db.DB, user, ctx.Param("workspace_name"), services.NoteInput{
		Title:    req.Title,
		Content:  req.Content,
		IsPinned: req.IsPinned,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Note created successfully",
		"note":    toNoteResponse(note),
	})
}

func ListNotes(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	notes, err := services.ListNotes(db.DB, user, ctx.Param("workspace_name"))

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.NoteResponse, 0, len(notes))

	for _, note := range notes {
		response = append(response, toNoteResponse(note))
	}

	ctx.JSON(http.StatusOK, gin.H{"notes": response})
}

func UpdateNote(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	noteID, err := getNoteID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid note ID"})
		return
	}

	var req UpdateNoteRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	note, err := services.UpdateNote(db.DB, user, ctx.Param("workspace_name"), noteID, services.NoteUpdate{
		Title:    req.Title,
		Content:  req.Content,
		IsPinned: req.IsPinned,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Note updated successfully",
		"note":    toNoteResponse(note),
	})
}

func DeleteNote(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	noteID, err := getNoteID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid note ID"})
		return
	}

	if err := services.DeleteNote(db.DB, user, ctx.Param("workspace_name"), noteID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}
