package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tiershowcase/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTiers(t *testing.T) {
	rr := httptest.NewRecorder()

	ListTiers(rr, httptest.NewRequest(http.MethodGet, "/tiers", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var got []domain.TierInfo
	require.Nil(t, decodeEnvelope(t, rr, &got))
	require.Len(t, got, 4)
	for i, info := range got {
		assert.Equal(t, i, info.Rank)
		assert.Equal(t, domain.AllTiers()[i], info.Tier)
		assert.NotEmpty(t, info.Label)
	}
}
