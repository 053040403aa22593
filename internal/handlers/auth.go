package handlers

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hivedesk-dev/hivedesk/db"
	"github.com/hivedesk-dev/hivedesk/internal/auth"
	"github.com/hivedesk-dev/hivedesk/internal/services"
	"github.com/hivedesk-dev/hivedesk/internal/types"
	"github.com/hivedesk-dev/hivedesk/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email" binding:"omitempty,email"`
	CurrentPassword string  `json:"current_password"`
	NewPassword     string  `json:"new_password" binding:"omitempty,min=8"`
}

var (
	Domain = os.Getenv("DOMAIN")
)

func setAuthCookie(ctx *gin.Context, token string, maxAge int) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Domain:   Domain,
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}

func Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var email *string

	if req.Email != "" {
		normalized := strings.ToLower(strings.TrimSpace(req.Email))
		email = &normalized
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user, err := services.RegisterUser(db.DB, req.Name, email, string(passwordHash))

	if err != nil {
		respondError(ctx, err)
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Name)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	setAuthCookie(ctx, token, 60*60*24*7)

	ctx.JSON(http.StatusCreated, gin.H{
		"user": types.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

func Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := services.ResolveUser(db.DB, req.Name)

	if err != nil {
		// Indistinguishable from a bad password so names cannot be probed.
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid name or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid name or password"})
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Name)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	setAuthCookie(ctx, token, 60*60*24*7)

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

func Me(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

func Logout(ctx *gin.Context) {
	setAuthCookie(ctx, "", -1)

	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// UpdateUser handles renames (with propagation to denormalized copies),
// email changes and password changes.
func UpdateUser(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req UpdateUserRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Name == nil && req.Email == nil && req.NewPassword == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	if req.NewPassword != "" {
		if req.CurrentPassword == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Current password is required to change password"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
			return
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)

		if err != nil {
			log.Printf("Failed to hash new password: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if err := db.DB.Model(&user).Update("password_hash", string(passwordHash)).Error; err != nil {
			log.Printf("Failed to update password: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	updated := user

	if req.Name != nil || req.Email != nil {
		updated, err = services.RenameUser(db.DB, user.ID, services.RenameInput{
			Name:  req.Name,
			Email: req.Email,
		})

		if err != nil {
			respondError(ctx, err)
			return
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user": types.UserResponse{
			ID:    updated.ID,
			Name:  updated.Name,
			Email: updated.Email,
		},
	})
}
