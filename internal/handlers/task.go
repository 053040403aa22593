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

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
	Assignee    string `json:"assignee"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date"`
	Assignee    *string `json:"assignee"`
	IsFinished  *bool   `json:"is_finished"`
}

func getTaskID(ctx *gin.Context) (uint, error) {
	taskID, err := strconv.ParseUint(ctx.Param("task_id"), 10, 64)

	if err != nil {
		return 0, err
	}

	return uint(taskID), nil
}

func CreateTask(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateTaskRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	dueDate, err := parseDate(req.DueDate)

	if err != nil {
		respondError(ctx, err)
		return
	}

	task, err := services.CreateTask(db.DB, user, ctx.Param("workspace_name"), services.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     dueDate,
		Assignee:    req.Assignee,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"task":    toTaskResponse(task),
	})
}

func ListTasks(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	tasks, err := services.ListTasks(db.DB, user, ctx.Param("workspace_name"))

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.TaskResponse, 0, len(tasks))

	for _, task := range tasks {
		response = append(response, toTaskResponse(task))
	}

	ctx.JSON(http.StatusOK, gin.H{"tasks": response})
}

func UpdateTask(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, err := getTaskID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var req UpdateTaskRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	update := services.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Assignee:    req.Assignee,
		IsFinished:  req.IsFinished,
	}

	if req.DueDate != nil {
		dueDate, err := parseDate(*req.DueDate)

		if err != nil {
			respondError(ctx, err)
			return
		}

		update.DueDate = dueDate
	}

	task, err := services.UpdateTask(db.DB, user, ctx.Param("workspace_name"), taskID, update)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Task updated successfully",
		"task":    toTaskResponse(task),
	})
}

func DeleteTask(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, err := getTaskID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	if err := services.DeleteTask(db.DB, user, ctx.Param("workspace_name"), taskID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
