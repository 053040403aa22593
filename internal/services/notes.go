package services

import (
	"errors"

	"github.com/hivedesk-dev/hivedesk/internal/apperrors"
	"github.com/hivedesk-dev/hivedesk/internal/models"
	"gorm.io/gorm"
)

type NoteInput struct {
	Title    string
	Content  string
	IsPinned bool
}

type NoteUpdate struct {
	Title    *string
	Content  *string
	IsPinned *bool
}

func CreateNote(gdb *gorm.DB, actor models.User, workspaceName string, in NoteInput) (models.Note, error) {
	access, err := RequireAccess(gdb, actor, workspaceName)

	if err != nil {
		return models.Note{}, err
	}

	if in.Title == "" {
		return models.Note{}, apperrors.Validation("Title is required")
	}

	note := models.Note{
		Title:       in.Title,
		Content:     in.Content,
		IsPinned:    in.IsPinned,
		OwnerID:     actor.ID,
		WorkspaceID: access.Workspace.ID,
	}

	if err := gdb.Create(&note).Error; err != nil {
		return models.Note{}, apperrors.Internal("Failed to create note", err)
	}

	return note, nil
}

func ListNotes(gdb *gorm.DB, actor models.User, workspaceName string) ([]models.Note, error) {
	access, err := RequireAccess(gdb, actor, workspaceName)

	if err != nil {
		return nil, err
	}

	var notes []models.Note

	err = gdb.Where("workspace_id = ?", access.Workspace.ID).
		Order("is_pinned DESC, id ASC").
		Find(&notes).Error

	if err != nil {
		return nil, apperrors.Internal("Failed to list notes", err)
	}

	return notes, nil
}

func getNote(gdb *gorm.DB, workspaceID uint, noteID uint) (models.Note, error) {
	var note models.Note

	err := gdb.Where("id = ? AND workspace_id = ?", noteID, workspaceID).First(&note).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Note{}, apperrors.NotFound("Note not found")
	}

	if err != nil {
		return models.Note{}, apperrors.Internal("Failed to load note", err)
	}

	return note, nil
}

// canModifyNote: only the note's author or the workspace owner may change or
// delete a note.
func canModifyNote(access Access, note models.Note, actor models.User) bool {
	return note.OwnerID == actor.ID || access.Role == RoleOwner
}

func UpdateNote(gdb *gorm.DB, actor models.User, workspaceName string, noteID uint, in NoteUpdate) (models.Note, error) {
	access, err := RequireAccess(gdb, actor, workspaceName)

	if err != nil {
		return models.Note{}, err
	}

	note, err := getNote(gdb, access.Workspace.ID, noteID)

	if err != nil {
		return models.Note{}, err
	}

	if !canModifyNote(access, note, actor) {
		return models.Note{}, apperrors.Forbidden("Only the note owner can modify this note")
	}

	updates := make(map[string]interface{})

	if in.Title != nil {
		if *in.Title == "" {
			return models.Note{}, apperrors.Validation("Title is required")
		}
		updates["title"] = *in.Title
	}

	if in.Content != nil {
		updates["content"] = *in.Content
	}

	if in.IsPinned != nil {
		updates["is_pinned"] = *in.IsPinned
	}

	if len(updates) == 0 {
		return note, nil
	}

	if err := gdb.Model(&note).Updates(updates).Error; err != nil {
		return models.Note{}, apperrors.Internal("Failed to update note", err)
	}

	return getNote(gdb, access.Workspace.ID, noteID)
}

func DeleteNote(gdb *gorm.DB, actor models.User, workspaceName string, noteID uint) error {
	access, err := RequireAccess(gdb, actor, workspaceName)

	if err != nil {
		return err
	}

	note, err := getNote(gdb, access.Workspace.ID, noteID)

	if err != nil {
		return err
	}

	if !canModifyNote(access, note, actor) {
		return apperrors.Forbidden("Only the note owner can delete this note")
	}

	if err := gdb.Delete(&note).Error; err != nil {
		return apperrors.Internal("Failed to delete note", err)
	}

	return nil
}
