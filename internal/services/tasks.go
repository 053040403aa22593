package services

import (
	"errors"

	"github.com/hivedesk-dev/hivedesk/internal/apperrors"
	"github.com/hivedesk-dev/hivedesk/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TaskInput struct {
	Title       string
	Description string
	Priority    string
	DueDate     *datatypes.Date
	Assignee    string
}

type TaskUpdate struct {
	Title       *string
	Description *string
	Priority    *string
	DueDate     *datatypes.Date
	Assignee    *string
	IsFinished  *bool
}

// resolveAssignee maps an assignee name to its user. An unknown name is a
// hard validation failure, never a silent null.
func resolveAssignee(gdb *gorm.DB, name string) (models.User, error) {
	assignee, err := ResolveUser(gdb, name)

	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return models.User{}, apperrors.Validation("Assignee does not exist")
		}
		return models.User{}, err
	}

	return assignee, nil
}

// CreateTask binds a task to the workspace and to the assignee's current
// identity; the assignee id and denormalized name are written in the same
// statement. An empty assignee defaults to the acting user.
func CreateTask(gdb *gorm.DB, actor models.User, workspaceName string, in TaskInput) (models.Task, error) {
	access, err := RequireAccess(gdb, actor, workspaceName)

	if err != nil {
		return models.Task{}, err
	}

	if in.Title == "" {
		return models.Task{}, apperrors.Validation("Title is required")
	}

	priority := models.PriorityMedium

	if in.Priority != "" {
		priority = models.TaskPriority(in.Priority)
		if !priority.IsValid() {
			return models.Task{}, apperrors.Validation("Invalid priority")
		}
	}

	assignee := actor

	if in.Assignee != "" && in.Assignee != actor.Name {
		assignee, err = resolveAssignee(gdb, in.Assignee)
		if err != nil {
			return models.Task{}, err
		}
	}

	workspaceID := access.Workspace.ID
	createdBy := actor.ID

	task := models.Task{
		Title:        in.Title,
		Description:  in.Description,
		Priority:     priority,
		DueDate:      in.DueDate,
		WorkspaceID:  &workspaceID,
		AssigneeID:   assignee.ID,
		AssigneeName: assignee.Name,
		CreatedBy:    &createdBy,
	}

	if err := gdb.Create(&task).Error; err != nil {
		return models.Task{}, apperrors.Internal("Failed to create task", err)
	}

	return task, nil
}

func ListTasks(gdb *gorm.DB, actor models.User, workspaceName string) ([]models.Task, error) {
	access, err := RequireAccess(gdb, actor, workspaceName)

	if err != nil {
		return nil, err
	}

	var tasks []models.Task

	if err := gdb.Where("workspace_id = ?", access.Workspace.ID).Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, apperrors.Internal("Failed to list tasks", err)
	}

	return tasks, nil
}

func getTask(gdb *gorm.DB, workspaceID uint, taskID uint) (models.Task, error) {
	var task models.Task

	err := gdb.Where("id = ? AND workspace_id = ?", taskID, workspaceID).First(&task).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Task{}, apperrors.NotFound("Task not found")
	}

	if err != nil {
		return models.Task{}, apperrors.Internal("Failed to load task", err)
	}

	return task, nil
}

// UpdateTask re-resolves a changed assignee name at write time and keeps the
// id and denormalized name in the same statement.
func UpdateTask(gdb *gorm.DB, actor models.User, workspaceName string, taskID uint, in TaskUpdate) (models.Task, error) {
	access, err := RequireAccess(gdb, actor, workspaceName)

	if err != nil {
		return models.Task{}, err
	}

	task, err := getTask(gdb, access.Workspace.ID, taskID)

	if err != nil {
		return models.Task{}, err
	}

	updates := make(map[string]interface{})

	if in.Title != nil {
		if *in.Title == "" {
			return models.Task{}, apperrors.Validation("Title is required")
		}
		updates["title"] = *in.Title
	}

	if in.Description != nil {
		updates["description"] = *in.Description
	}

	if in.Priority != nil {
		priority := models.TaskPriority(*in.Priority)
		if !priority.IsValid() {
			return models.Task{}, apperrors.Validation("Invalid priority")
		}
		updates["priority"] = priority
	}

	if in.DueDate != nil {
		updates["due_date"] = *in.DueDate
	}

	if in.IsFinished != nil {
		updates["is_finished"] = *in.IsFinished
	}

	if in.Assignee != nil {
		assignee, err := resolveAssignee(gdb, *in.Assignee)
		if err != nil {
			return models.Task{}, err
		}
		updates["assignee_id"] = assignee.ID
		updates["assignee"] = assignee.Name
	}

	if len(updates) == 0 {
		return task, nil
	}

	if err := gdb.Model(&task).Updates(updates).Error; err != nil {
		return models.Task{}, apperrors.Internal("Failed to update task", err)
	}

	task, err = getTask(gdb, access.Workspace.ID, taskID)

	if err != nil {
		return models.Task{}, err
	}

	return task, nil
}

func DeleteTask(gdb *gorm.DB, actor models.User, workspaceName string, taskID uint) error {
	access, err := RequireAccess(gdb, actor, workspaceName)

	if err != nil {
		return err
	}

	task, err := getTask(gdb, access.Workspace.ID, taskID)

	if err != nil {
		return err
	}

	if err := gdb.Delete(&task).Error; err != nil {
		return apperrors.Internal("Failed to delete task", err)
	}

	return nil
}
