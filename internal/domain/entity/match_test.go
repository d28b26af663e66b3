package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairKeyIsOrderIndependent(t *testing.T) {
	assert.Equal(t, PairKey("alice", "bob", "l1"), PairKey("bob", "alice", "l1"))
	assert.NotEqual(t, PairKey("alice", "bob", "l1"), PairKey("alice", "bob", "l2"))
}

func TestNewMatchNormalizesUsers(t *testing.T) {
	now := time.Now()

	m1, err := NewMatch("zoe", "adam", "l1", now)
	require.NoError(t, err)
	m2, err := NewMatch("adam", "zoe", "l1", now)
	require.NoError(t, err)

	assert.Equal(t, m1.ID, m2.ID)
	assert.Equal(t, [2]string{"adam", "zoe"}, m1.Users)
	assert.Equal(t, m1.Users, m2.Users)
}

func TestNewMatchRejectsSamePair(t *testing.T) {
	_, err := NewMatch("adam", "adam", "l1", time.Now())
	assert.Error(t, err)
}

func TestMatchUserHelpers(t *testing.T) {
	m, err := NewMatch("adam", "zoe", "l1", time.Now())
	require.NoError(t, err)

	assert.True(t, m.HasUser("adam"))
	assert.True(t, m.HasUser("zoe"))
	assert.False(t, m.HasUser("mallory"))
	assert.Equal(t, "zoe", m.OtherUser("adam"))
	assert.Equal(t, "adam", m.OtherUser("zoe"))
}

func TestBuyerRefRoundTrip(t *testing.T) {
	ref := BuyerRef("u42")
	assert.Equal(t, "buyer-u42", ref)
	assert.True(t, IsBuyerRef(ref))
	assert.False(t, IsBuyerRef("l1"))
	assert.Equal(t, "u42", BuyerIDFromRef(ref))
}
