package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferRefVariants(t *testing.T) {
	var asID OfferRef
	require.NoError(t, json.Unmarshal([]byte(`12`), &asID))
	assert.Equal(t, OfferRef{ID: 12}, asID)

	var asObject OfferRef
	require.NoError(t, json.Unmarshal([]byte(`{"id": 12, "owner": 3, "owner_username": "bob"}`), &asObject))
	assert.Equal(t, OfferRef{ID: 12, OwnerID: 3, OwnerUsername: "bob"}, asObject)
}

// Locks in the shipped split: outgoing holds requests whose requester equals
// the offer owner, not requests made against other owners' offers.
func TestSplitExchangeRequests(t *testing.T) {
	requests := []ExchangeRequest{
		{ID: 1, RequesterID: 2, Offer: OfferRef{ID: 10, OwnerID: 1}},
		{ID: 2, RequesterID: 1, Offer: OfferRef{ID: 11, OwnerID: 1}},
		{ID: 3, RequesterID: 3, Offer: OfferRef{ID: 12, OwnerID: 1}},
	}

	incoming, outgoing := SplitExchangeRequests(requests)

	require.Len(t, incoming, 2)
	assert.Equal(t, 1, incoming[0].ID)
	assert.Equal(t, 3, incoming[1].ID)

	require.Len(t, outgoing, 1)
	assert.Equal(t, 2, outgoing[0].ID)
}

func TestSplitExchangeRequestsBareOfferID(t *testing.T) {
	// A bare offer id carries no owner; such requests land in incoming, as in
	// the shipped comparison against an undefined owner.
	requests := []ExchangeRequest{
		{ID: 1, RequesterID: 2, Offer: OfferRef{ID: 10}},
	}

	incoming, outgoing := SplitExchangeRequests(requests)
	assert.Len(t, incoming, 1)
	assert.Empty(t, outgoing)
}
