package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestsRemaining_Marshal(t *testing.T) {
	metered, err := json.Marshal(RequestsRemaining{Count: 15})
	require.NoError(t, err)
	assert.Equal(t, "15", string(metered))

	zero, err := json.Marshal(RequestsRemaining{Count: 0})
	require.NoError(t, err)
	assert.Equal(t, "0", string(zero))

	unlimited, err := json.Marshal(RequestsRemaining{Unlimited: true, Count: 42})
	require.NoError(t, err)
	assert.Equal(t, `"unlimited"`, string(unlimited))
}

func TestRequestsRemaining_Unmarshal(t *testing.T) {
	var metered RequestsRemaining
	require.NoError(t, json.Unmarshal([]byte("15"), &metered))
	assert.False(t, metered.Unlimited)
	assert.Equal(t, 15, metered.Count)

	var unlimited RequestsRemaining
	require.NoError(t, json.Unmarshal([]byte(`"unlimited"`), &unlimited))
	assert.True(t, unlimited.Unlimited)
}

func TestAnalysisResponse_RendersRemainingInline(t *testing.T) {
	body, err := json.Marshal(AnalysisResponse{
		Success:           true,
		Data:              json.RawMessage(`{"biases_detected":[]}`),
		RequestsRemaining: RequestsRemaining{Unlimited: true},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":{"biases_detected":[]},"requests_remaining":"unlimited"}`, string(body))
}

func TestMaskAPIKey(t *testing.T) {
	key := "bdr_0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	assert.Equal(t, "bdr_0123456789abcdef...", MaskAPIKey(key))

	// Keys shorter than the visible prefix are passed through untouched.
	assert.Equal(t, "bdr_short", MaskAPIKey("bdr_short"))
}
