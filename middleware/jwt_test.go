package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("user-1", "alice", RoleHost)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	identity, err := VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", identity.SubjectID)
	assert.Equal(t, "alice", identity.Username)
	assert.Equal(t, RoleHost, identity.Role)
	assert.True(t, identity.IsHostAuthorized())
	assert.False(t, identity.IsAdmin())

	// bearer prefix is accepted too
	identity, err = VerifyToken("Bearer " + token)
	assert.NoError(t, err)
	assert.Equal(t, "alice", identity.Username)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := VerifyToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = VerifyToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := GenerateToken("user-1", "alice", RoleAdmin)
	assert.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	_, err = VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRoleClosedSet(t *testing.T) {
	assert.Equal(t, RoleHost, ParseRole("host"))
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleGuest, ParseRole("guest"))
	assert.Equal(t, RoleGuest, ParseRole(""))
	assert.Equal(t, RoleGuest, ParseRole("superuser"))
}

func TestSocketIdentityGuestFallback(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	// missing or malformed auth data -> guest (nil identity)
	assert.Nil(t, SocketIdentity(nil))
	assert.Nil(t, SocketIdentity("bogus"))
	assert.Nil(t, SocketIdentity(map[string]interface{}{}))
	assert.Nil(t, SocketIdentity(map[string]interface{}{"authorization": "Bearer junk"}))

	token, err := GenerateToken("user-2", "bob", RoleAdmin)
	assert.NoError(t, err)

	identity := SocketIdentity(map[string]interface{}{"authorization": "Bearer " + token})
	assert.NotNil(t, identity)
	assert.Equal(t, "bob", identity.Username)
	assert.True(t, identity.IsHostAuthorized())

	// guests are never host-authorized
	var guest *Identity
	assert.False(t, guest.IsHostAuthorized())
}

func TestAuthRequiredMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/me", AuthRequired, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": IdentityFromContext(c).Username})
	})
	router.GET("/admin", AuthRequired, AdminRequired, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})

	// no token
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, _ := GenerateToken("user-1", "alice", RoleHost)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")

	// host role is not enough for the admin group
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken, _ := GenerateToken("user-2", "root", RoleAdmin)
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
