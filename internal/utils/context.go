package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/hivedesk-dev/hivedesk/internal/models"
	"github.com/hivedesk-dev/hivedesk/internal/types"
)

func GetCurrentUser(ctx *gin.Context) (models.User, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return models.User{}, fmt.Errorf("User not authenticated")
	}

	currentUser, ok := user.(models.User)

	if !ok {
		return models.User{}, fmt.Errorf("Invalid user type in context")
	}

	return currentUser, nil
}

func GetCurrentUserID(ctx *gin.Context) (uint, error) {
	user, err := GetCurrentUser(ctx)

	if err != nil {
		return 0, err
	}

	return user.ID, nil
}
