package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/erickmeikoki/Box/errs"
	"github.com/erickmeikoki/Box/middleware"
)

// respondErr is the single point where service errors become HTTP
// responses. Typed errors carry their status; everything else is a 500
// with the detail kept out of the body.
func respondErr(c *gin.Context, err error) {
	status := errs.StatusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		if _, ok := err.(*errs.Error); !ok {
			message = "internal server error"
		}
	}
	c.JSON(status, gin.H{"error": message})
}

// bindErrMessage turns binding failures into a single friendly message.
func bindErrMessage(err error) string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid request format"
	}
	for _, e := range ve {
		switch e.Field() {
		case "Email":
			return "Please provide a valid email address"
		case "Password":
			if e.Tag() == "min" {
				return "Password must be at least 6 characters long"
			}
			return "Password is required"
		case "Username":
			return "Username must be between 3 and 30 characters"
		case "MovieID":
			return "A valid movie id is required"
		case "Rating":
			return "Rating is required"
		case "Title":
			return "Title is required"
		case "Avatar":
			return "A valid avatar URL is required"
		}
	}
	return "Invalid input data"
}

// currentUserID reads the identity the auth gate attached.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	v, ok := c.Get(middleware.UserIDKey)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok
}
