package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ambition/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

func authedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	chain := append([]gin.HandlerFunc{AuthRequired(testSecret)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		ownerID := c.MustGet(ContextOwnerID).(primitive.ObjectID)
		c.JSON(http.StatusOK, gin.H{"owner_id": ownerID.Hex()})
	})
	router.GET("/protected", chain...)

	return router
}

func bearerRequest(t *testing.T, token string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAuthRequired(t *testing.T) {
	router := authedRouter()

	ownerID := primitive.NewObjectID()
	token, err := utils.GenerateToken(ownerID, "user", "+447700900123", testSecret, time.Hour)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, bearerRequest(t, token))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), ownerID.Hex())
}

func TestAuthRequiredRejections(t *testing.T) {
	router := authedRouter()

	expired, err := utils.GenerateToken(primitive.NewObjectID(), "user", "", testSecret, -time.Minute)
	require.NoError(t, err)
	wrongKey, err := utils.GenerateToken(primitive.NewObjectID(), "user", "", "other-secret", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "missing header", token: ""},
		{name: "garbage token", token: "not-a-jwt"},
		{name: "expired token", token: expired},
		{name: "wrong signing key", token: wrongKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, bearerRequest(t, tt.token))
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}

func TestDriverRequired(t *testing.T) {
	router := authedRouter(DriverRequired())

	driverToken, err := utils.GenerateToken(primitive.NewObjectID(), "driver", "", testSecret, time.Hour)
	require.NoError(t, err)
	userToken, err := utils.GenerateToken(primitive.NewObjectID(), "user", "", testSecret, time.Hour)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, bearerRequest(t, driverToken))
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, bearerRequest(t, userToken))
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
