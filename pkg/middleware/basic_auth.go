package middleware

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/quickpost/publisher/pkg/metrics"
)

// Realm is sent in the WWW-Authenticate challenge.
const Realm = "Secure Area"

// CheckBasicAuth reports whether header carries Basic credentials equal to
// username/password. The password is everything after the first colon.
func CheckBasicAuth(header, username, password string) bool {
	scheme, encoded, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Basic") {
		return false
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return false
	}
	user, pass, ok := strings.Cut(string(raw), ":")
	if !ok {
		return false
	}
	// evaluate both so the comparison time does not reveal which field differed
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1
	return userOK && passOK
}

// BasicAuth returns a Gin middleware enforcing a single username/password pair.
// On success the username is stored under gin.AuthUserKey.
func BasicAuth(username, password string) gin.HandlerFunc {
	challenge := `Basic realm="` + Realm + `"`
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !CheckBasicAuth(header, username, password) {
			metrics.AuthFailures.Inc()
			c.Header("WWW-Authenticate", challenge)
			c.String(http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}
		c.Set(gin.AuthUserKey, username)
		c.Next()
	}
}
