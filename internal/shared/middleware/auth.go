package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	identitymodel "eventgallery-backend/internal/domains/identity/model"
	identityservice "eventgallery-backend/internal/domains/identity/service"
	"eventgallery-backend/internal/shared/response"
)

const principalKey = "principal"

// Authenticate resolves the bearer credential for a fixed channel and puts
// the resulting Principal into the gin context. The channel is the route
// group's namespace; the resolver rejects credentials whose signed role
// disagrees with it.
func Authenticate(resolver *identityservice.Resolver, channel identitymodel.Channel) gin.HandlerFunc {
	return func(c *gin.Context) {
		credential := extractBearer(c)

		principal, err := resolver.Resolve(credential, channel)
		if err != nil {
			status, code := mapIdentityError(err)
			response.ErrorResponse(c, status, code, err.Error())
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func mapIdentityError(err error) (int, string) {
	switch {
	case errors.Is(err, identitymodel.ErrMissingCredential):
		return http.StatusUnauthorized, identitymodel.ErrCodeMissingCredential
	case errors.Is(err, identitymodel.ErrExpiredCredential):
		return http.StatusUnauthorized, identitymodel.ErrCodeExpiredCredential
	case errors.Is(err, identitymodel.ErrRoleMismatch):
		return http.StatusForbidden, identitymodel.ErrCodeRoleMismatch
	default:
		return http.StatusUnauthorized, identitymodel.ErrCodeMalformedCredential
	}
}

// CustomerFrom returns the Customer principal set by Authenticate
func CustomerFrom(c *gin.Context) (identitymodel.Customer, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return identitymodel.Customer{}, false
	}
	customer, ok := v.(identitymodel.Customer)
	return customer, ok
}

// GuestFrom returns the Guest principal set by Authenticate
func GuestFrom(c *gin.Context) (identitymodel.Guest, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return identitymodel.Guest{}, false
	}
	guest, ok := v.(identitymodel.Guest)
	return guest, ok
}

// AdminFrom returns the Admin principal set by Authenticate
func AdminFrom(c *gin.Context) (identitymodel.Admin, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return identitymodel.Admin{}, false
	}
	admin, ok := v.(identitymodel.Admin)
	return admin, ok
}
