package controllers

import (
	"errors"
	"net/http"

	"github.com/zenott/boilerplate-project-exercisetracker/apperrors"
	"github.com/zenott/boilerplate-project-exercisetracker/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

type NewUserInput struct {
	Username string `form:"username" json:"username"`
}

// respondErr reports known domain failures in-band as HTTP 200 JSON with an
// "error" key; anything unexpected is handed to the error middleware.
func respondErr(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) && appErr.Kind != apperrors.Store {
		c.JSON(http.StatusOK, gin.H{"error": appErr.Message})
		return
	}
	c.Error(err)
}

func (uc *UserController) CreateUser(c *gin.Context) {
	var input NewUserInput
	_ = c.ShouldBind(&input)

	user, err := uc.Users.CreateUser(input.Username)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": user.Username,
		"_id":      user.ID,
	})
}

func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.Users.ListUsers()
	if err != nil {
		respondErr(c, err)
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{
			"username": u.Username,
			"userId":   u.ID,
		})
	}
	c.JSON(http.StatusOK, out)
}
