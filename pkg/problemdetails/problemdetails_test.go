package problemdetails

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p := New(http.StatusNotFound, TypeLinkExpired, "Link Expired", "Short link expired")

	assert.Equal(t, "https://short.link/problems/link-expired", p.Type)
	assert.Equal(t, "Link Expired", p.Title)
	assert.Equal(t, 404, p.Status)
	assert.Equal(t, "Short link expired", p.Detail)
}

func TestNew_Defaults(t *testing.T) {
	p := New(http.StatusServiceUnavailable, "", "", "database unavailable")

	assert.Equal(t, BaseURL+TypeInternalError, p.Type)
	assert.Equal(t, "Service Unavailable", p.Title)
}

func TestTypeFromReason(t *testing.T) {
	tests := []struct {
		reason string
		want   string
	}{
		{reason: "INVALID_URL", want: TypeInvalidURL},
		{reason: "INVALID_TTL", want: TypeInvalidTTL},
		{reason: "LINK_NOT_FOUND", want: TypeLinkNotFound},
		{reason: "LINK_EXPIRED", want: TypeLinkExpired},
		{reason: "CODE_EXHAUSTED", want: TypeCodeExhausted},
		{reason: "STORAGE_ERROR", want: TypeStorageError},
		{reason: "", want: TypeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeFromReason(tt.reason))
		})
	}
}

func TestProblemDetail_JSON(t *testing.T) {
	// Arrange
	p := New(http.StatusNotFound, TypeLinkNotFound, "", "Not found").
		WithInstance("/links/abc1234").
		WithMetadata(map[string]string{"code": "abc1234"})

	// Act
	data, err := json.Marshal(p)
	require.NoError(t, err)

	// Assert
	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, "/links/abc1234", body["instance"])
	assert.Equal(t, map[string]any{"code": "abc1234"}, body["metadata"])
	assert.Equal(t, float64(404), body["status"])
}

func TestProblemDetail_OmitsEmptyMembers(t *testing.T) {
	data, err := json.Marshal(New(http.StatusBadRequest, TypeInvalidURL, "", "bad").WithMetadata(nil))
	require.NoError(t, err)

	assert.NotContains(t, string(data), "instance")
	assert.NotContains(t, string(data), "metadata")
}
