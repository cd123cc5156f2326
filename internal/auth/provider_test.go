package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/acme/internal/auth"
)

func TestHTTPProvider_Authenticate(t *testing.T) {
	type testCase struct {
		name     string
		status   int
		body     any
		wantKind auth.FailureKind
		wantOK   bool
	}

	tests := []testCase{
		{
			name:   "Success",
			status: http.StatusOK,
			body:   map[string]string{"user_id": "user-1", "email": "grace@example.com"},
			wantOK: true,
		},
		{
			name:     "Unauthorized",
			status:   http.StatusUnauthorized,
			wantKind: auth.FailureInvalidCredentials,
		},
		{
			name:     "Forbidden",
			status:   http.StatusForbidden,
			wantKind: auth.FailureInvalidCredentials,
		},
		{
			name:     "ServerError",
			status:   http.StatusInternalServerError,
			wantKind: auth.FailureUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "Token test-token", r.Header.Get("Authorization"))

				w.WriteHeader(tt.status)
				if tt.body != nil {
					_ = json.NewEncoder(w).Encode(tt.body)
				}
			}))
			defer srv.Close()

			provider := auth.NewHTTPProvider(srv.URL, "test-token")

			ident, err := provider.Authenticate(context.Background(), auth.Credentials{
				Email:    "grace@example.com",
				Password: "hunter2",
			})

			if tt.wantOK {
				require.NoError(t, err)
				assert.Equal(t, "user-1", ident.UserID)

				return
			}

			var perr *auth.ProviderError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.wantKind, perr.Kind)
		})
	}
}

func TestHTTPProvider_TransportFailureIsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	provider := auth.NewHTTPProvider(srv.URL, "")

	_, err := provider.Authenticate(context.Background(), auth.Credentials{})

	var perr *auth.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, auth.FailureUnavailable, perr.Kind)
}
