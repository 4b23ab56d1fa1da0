package retell

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voicedesk/scheduler/pkg/utils"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(utils.NewConfig(map[string]string{
		"RETELL_API_KEY":  "key-123",
		"RETELL_AGENT_ID": "agent-456",
		"RETELL_API_URL":  server.URL,
	}))
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient(utils.NewConfig(map[string]string{
		"RETELL_AGENT_ID": "agent-456",
	}))
	require.Error(t, err)

	_, err = NewClient(utils.NewConfig(map[string]string{
		"RETELL_API_KEY": "key-123",
	}))
	require.Error(t, err)
}

func TestCreateWebCall(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/create-web-call", r.URL.Path)
		assert.Equal(t, "Bearer key-123", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "agent-456", body["agent_id"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "tok-789",
			"call_id":      "call-001",
		})
	})

	call, err := client.CreateWebCall(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-789", call.AccessToken)
	assert.Equal(t, "call-001", call.CallID)
}

func TestCreateWebCallAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid agent", http.StatusUnauthorized)
	})

	_, err := client.CreateWebCall(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "401")
}

func TestCreateWebCallMissingToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"call_id": "call-001"})
	})

	_, err := client.CreateWebCall(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "access_token")
}
