package helpers

import (
	"net/http"

	"tiershowcase/internal/domain"
)

// TierQueryParam is the query parameter carrying the viewer's selected tier.
const TierQueryParam = "tier"

// ParseViewerTier reads the viewer tier from the request query string.
// A missing or empty value yields domain.DefaultViewerTier; an unknown value yields domain.ErrInvalidTier.
func ParseViewerTier(r *http.Request) (domain.Tier, error) {
	raw := r.URL.Query().Get(TierQueryParam)
	if raw == "" {
		return domain.DefaultViewerTier, nil
	}
	return domain.ParseTier(raw)
}
