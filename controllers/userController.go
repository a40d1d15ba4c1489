package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Korux/SnP-REST-API/helpers"
	"github.com/Korux/SnP-REST-API/models"
	"github.com/Korux/SnP-REST-API/store"
)

type UserController struct {
	users   store.UserStore
	baseURL string
}

func NewUserController(users store.UserStore, baseURL string) *UserController {
	return &UserController{users: users, baseURL: baseURL}
}

// -------------------- LIST USERS --------------------
// User listings cap the fetch at PageSize+1 instead of scanning to the end;
// the slicing rule is the same. No total is reported for users.
func (uc *UserController) GetAllUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		offset := helpers.PageOffset(c.Query("page"))

		users, err := uc.users.Scan(c.Request.Context(), offset, helpers.PageSize+1)
		if err != nil {
			respondError(c, http.StatusInternalServerError, msgServerError)
			return
		}

		page, next, _ := helpers.Paginate(users, offset, uc.baseURL+"users")
		views := make([]models.UserView, 0, len(page))
		for _, u := range page {
			views = append(views, u.View(uc.baseURL))
		}

		c.JSON(http.StatusOK, models.UserListView{Users: views, Next: next})
	}
}

// -------------------- GET USER --------------------
func (uc *UserController) GetUserByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := uc.users.GetByUID(c.Request.Context(), c.Param("userid"))
		if errors.Is(err, models.ErrNotFound) {
			respondError(c, http.StatusNotFound, msgUserNotFound)
			return
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, msgServerError)
			return
		}

		if !acceptsJSON(c) {
			respondError(c, http.StatusNotAcceptable, msgNotAcceptable)
			return
		}
		c.JSON(http.StatusOK, user.View(uc.baseURL))
	}
}

// MethodNotAllowed answers writes against the user collection, which is
// owned by the signup flow and read-only here.
func (uc *UserController) MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Accept", "GET")
		c.Status(http.StatusMethodNotAllowed)
	}
}
