package doudizhu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGame_Snapshot 快照是深拷贝的只读视图
func TestGame_Snapshot(t *testing.T) {
	g := NewGame(WithRand(testRand(1)), WithPlayers("东家", "南家", "西家"))
	require.NoError(t, g.Start())
	require.True(t, g.Bid(g.CurrentPlayer().ID, true))

	landlord := g.CurrentPlayer()
	lead := landlord.Hand[len(landlord.Hand)-1]
	require.Equal(t, PlaySuccess, g.Play(landlord.ID, Cards{lead}))

	snap := g.Snapshot()
	assert.Equal(t, "PLAYING", snap.State)
	require.Len(t, snap.Players, PlayerCount)
	assert.Len(t, snap.LandlordCards, LandlordCardCount)

	landlordSeen := 0
	for _, p := range snap.Players {
		assert.Equal(t, len(p.Hand), p.HandCount)
		if p.Role == "LANDLORD" {
			landlordSeen++
			assert.Equal(t, landlord.ID, p.ID)
			assert.Equal(t, HandSize+LandlordCardCount-1, p.HandCount)
		}
	}
	assert.Equal(t, 1, landlordSeen)

	require.NotNil(t, snap.LastCombo)
	assert.Equal(t, "SINGLE", snap.LastCombo.Type)
	assert.Equal(t, landlord.ID, snap.LastCombo.PlayedBy)
}

// TestGameSnapshot_EncodeRoundTrip 快照经 JSON 编解码后不变
func TestGameSnapshot_EncodeRoundTrip(t *testing.T) {
	g := NewGame(WithRand(testRand(2)))
	require.NoError(t, g.Start())

	snap := g.Snapshot()
	data, err := snap.Encode()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, snap, decoded)
}

// TestGameSnapshot_NoLastCombo 新的一轮没有桌面牌字段
func TestGameSnapshot_NoLastCombo(t *testing.T) {
	g := NewGame(WithRand(testRand(3)))
	require.NoError(t, g.Start())

	snap := g.Snapshot()
	assert.Equal(t, "BIDDING", snap.State)
	assert.Nil(t, snap.LastCombo)
}
