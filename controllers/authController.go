package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Korux/SnP-REST-API/helpers"
	"github.com/Korux/SnP-REST-API/models"
	"github.com/Korux/SnP-REST-API/store"
)

var validate = validator.New()

// AuthController is thin plumbing: credentials go to the identity provider
// and its response is relayed. The only local side effect is the user record
// written on signup.
type AuthController struct {
	users    store.UserStore
	identity *helpers.IdentityClient
}

func NewAuthController(users store.UserStore, identity *helpers.IdentityClient) *AuthController {
	return &AuthController{users: users, identity: identity}
}

type credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// -------------------- LOGIN --------------------
func (ac *AuthController) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var creds credentials
		if err := c.ShouldBindJSON(&creds); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"Error": err.Error()})
			return
		}
		if err := validate.Struct(creds); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"Error": err.Error()})
			return
		}

		body, err := ac.identity.Login(c.Request.Context(), creds.Email, creds.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, body)
			return
		}
		c.JSON(http.StatusOK, body)
	}
}

// -------------------- SIGNUP --------------------
func (ac *AuthController) Signup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var creds credentials
		if err := c.ShouldBindJSON(&creds); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"Error": err.Error()})
			return
		}
		if err := validate.Struct(creds); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"Error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		body, err := ac.identity.Signup(ctx, creds.Email, creds.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, body)
			return
		}

		providerID, _ := body["_id"].(string)
		user := models.User{
			Email:    creds.Email,
			Username: creds.Email,
			JoinDate: time.Now().Format("2006-1-2"),
			UID:      "auth0|" + providerID,
		}

		if err := ac.users.Insert(ctx, user); err != nil {
			respondError(c, http.StatusInternalServerError, msgServerError)
			return
		}
		c.JSON(http.StatusCreated, body)
	}
}
