package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/justsurfingit/jobly/internal/repository"
	"github.com/justsurfingit/jobly/internal/sqlbuilder"
)

// respondError translates repository and builder errors into HTTP
// responses. Anything unrecognized is a 500 and gets logged here, once.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrBadCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrEmployeeRange), errors.Is(err, sqlbuilder.ErrNoUpdateData):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("❌ Internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// bindingMessage flattens a ShouldBind error into one client-readable
// message.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag()))
		}
		return strings.Join(msgs, "; ")
	}
	return "Invalid request format: " + err.Error()
}

// requireKnownQuery rejects requests carrying query parameters outside the
// allowed set, so typos like minEmployes fail loudly instead of silently
// returning everything. Returns false after writing the response.
func requireKnownQuery(c *gin.Context, allowed ...string) bool {
	for key := range c.Request.URL.Query() {
		known := false
		for _, a := range allowed {
			if key == a {
				known = true
				break
			}
		}
		if !known {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown filter: " + key})
			return false
		}
	}
	return true
}
