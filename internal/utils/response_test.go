package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorMapsKinds(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "not found", err: NotFoundf("ride request abc"), wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "invalid argument", err: InvalidArgumentf("bad input"), wantStatus: http.StatusBadRequest, wantCode: "INVALID_ARGUMENT"},
		{name: "invalid time range", err: fmt.Errorf("estimated time 90 minutes: %w", ErrInvalidTimeRange), wantStatus: http.StatusUnprocessableEntity, wantCode: "INVALID_TIME_RANGE"},
		{name: "category mismatch", err: fmt.Errorf("driver x: %w", ErrCategoryMismatch), wantStatus: http.StatusConflict, wantCode: "CATEGORY_MISMATCH"},
		{name: "already assigned", err: fmt.Errorf("driver_id on request x: %w", ErrAlreadyAssigned), wantStatus: http.StatusConflict, wantCode: "ALREADY_ASSIGNED"},
		{name: "upstream timeout", err: fmt.Errorf("eta lookup: %w", ErrTimedOut), wantStatus: http.StatusGatewayTimeout, wantCode: "UPSTREAM_TIMEOUT"},
		{name: "upstream unavailable", err: fmt.Errorf("distance lookup: %w", ErrUpstreamUnavailable), wantStatus: http.StatusBadGateway, wantCode: "UPSTREAM_UNAVAILABLE"},
		{name: "unrecognized error", err: errors.New("disk on fire"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			RespondError(c, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var body APIResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, "error", body.Status)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

// Internal errors must not leak their detail to the client.
func TestRespondErrorHidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	RespondError(c, errors.New("mongo: connection refused at 10.0.0.3"))

	var body APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "internal server error", body.Error.Message)
	assert.NotContains(t, body.Error.Message, "10.0.0.3")
}
