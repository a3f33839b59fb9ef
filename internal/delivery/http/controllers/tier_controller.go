package controllers

import (
	"net/http"

	"tiershowcase/internal/delivery/http/helpers"
	"tiershowcase/internal/domain"
)

// ListTiersSuccessResponse is the success response envelope for GET /tiers (200).
type ListTiersSuccessResponse struct {
	Data  []domain.TierInfo `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListTiers godoc
// @Summary List membership tiers
// @Description Returns the tiers in ascending rank with display label and description. Public.
// @Tags tiers
// @Produce json
// @Success 200 {object} controllers.ListTiersSuccessResponse "data contains the tier catalog"
// @Router /tiers [get]
func ListTiers(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, domain.TierCatalog())
}
