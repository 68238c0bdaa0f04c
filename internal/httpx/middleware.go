package httpx

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MikeMC777/food-orders/internal/auth"
)

const userIDKey = "userID"

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("rid", rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		rid, _ := c.Get("rid")
		log.Printf("[http] rid=%v %s %s status=%d dur=%s",
			rid, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// Auth accepts the token either as a bearer header or as the "token" cookie
// set by the web client, and stores the user id for UserID.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if tok == "" {
			tok, _ = c.Cookie("token")
		}
		if tok == "" {
			Fail(c, http.StatusUnauthorized, "User not authenticated")
			return
		}
		uid, err := auth.Parse(secret, tok)
		if err != nil {
			Fail(c, http.StatusUnauthorized, "Invalid token")
			return
		}
		c.Set(userIDKey, uid)
		c.Next()
	}
}

func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// Fail writes the JSON error envelope and stops the chain.
func Fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Success: false, Message: msg})
}

// ErrorResponse is the error body of every endpoint.
// swagger:model
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Internal server error"`
}
