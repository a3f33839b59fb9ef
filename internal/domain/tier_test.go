package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTier_RankFollowsOrder(t *testing.T) {
	tiers := AllTiers()
	require.Equal(t, []Tier{TierFree, TierSilver, TierGold, TierPlatinum}, tiers)

	for i, t1 := range tiers {
		assert.Equal(t, i, t1.Rank(), "rank of %s", t1)
		for j, t2 := range tiers {
			assert.Equal(t, i < j, t1.Rank() < t2.Rank(), "%s < %s", t1, t2)
			assert.Equal(t, i == j, t1.Rank() == t2.Rank(), "%s == %s", t1, t2)
		}
	}
}

func TestAllTiers_ReturnsCopy(t *testing.T) {
	tiers := AllTiers()
	tiers[0] = TierPlatinum
	assert.Equal(t, TierFree, AllTiers()[0])
}

func TestTier_Allows(t *testing.T) {
	tests := []struct {
		viewer   Tier
		required Tier
		want     bool
	}{
		{TierFree, TierFree, true},
		{TierFree, TierSilver, false},
		{TierSilver, TierFree, true},
		{TierSilver, TierGold, false},
		{TierGold, TierGold, true},
		{TierGold, TierPlatinum, false},
		{TierPlatinum, TierGold, true},
		{TierPlatinum, TierPlatinum, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.viewer)+"/"+string(tt.required), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.viewer.Allows(tt.required))
		})
	}
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Tier
		wantErr bool
	}{
		{"lowercase", "gold", TierGold, false},
		{"mixed case and spaces", "  Platinum ", TierPlatinum, false},
		{"free", "free", TierFree, false},
		{"unknown", "diamond", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTier(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTier)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTier_InvalidRanksBelowFree(t *testing.T) {
	bogus := Tier("diamond")
	assert.False(t, bogus.Valid())
	assert.Equal(t, -1, bogus.Rank())
	assert.Equal(t, "diamond", bogus.Label())
	assert.Empty(t, bogus.Description())
}

func TestTier_JSON(t *testing.T) {
	var v struct {
		Tier Tier `json:"tier"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"tier":"Silver"}`), &v))
	assert.Equal(t, TierSilver, v.Tier)

	err := json.Unmarshal([]byte(`{"tier":"bronze"}`), &v)
	require.ErrorIs(t, err, ErrInvalidTier)

	out, err := json.Marshal(struct {
		Tier Tier `json:"tier"`
	}{TierGold})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tier":"gold"}`, string(out))

	_, err = json.Marshal(struct {
		Tier Tier `json:"tier"`
	}{Tier("bronze")})
	require.Error(t, err)
}

func TestTier_ScanAndValue(t *testing.T) {
	var tier Tier
	require.NoError(t, tier.Scan("gold"))
	assert.Equal(t, TierGold, tier)
	require.NoError(t, tier.Scan([]byte("silver")))
	assert.Equal(t, TierSilver, tier)

	require.ErrorIs(t, tier.Scan("vip"), ErrInvalidTier)
	require.ErrorIs(t, tier.Scan(nil), ErrInvalidTier)
	require.ErrorIs(t, tier.Scan(42), ErrInvalidTier)

	v, err := TierPlatinum.Value()
	require.NoError(t, err)
	assert.Equal(t, "platinum", v)
	_, err = Tier("vip").Value()
	require.ErrorIs(t, err, ErrInvalidTier)
}

func TestTierCatalog(t *testing.T) {
	catalog := TierCatalog()
	require.Len(t, catalog, 4)
	assert.Equal(t, TierInfo{Tier: TierFree, Rank: 0, Label: "Free", Description: "Access to basic community events"}, catalog[0])
	assert.Equal(t, TierInfo{Tier: TierPlatinum, Rank: 3, Label: "Platinum", Description: "Exclusive summits and retreats"}, catalog[3])
}
