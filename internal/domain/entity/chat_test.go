package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeRoomPair(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b := uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")

	p1, p2 := NormalizeRoomPair(a, b)
	assert.Equal(t, a, p1)
	assert.Equal(t, b, p2)

	// Same pair regardless of argument order
	q1, q2 := NormalizeRoomPair(b, a)
	assert.Equal(t, p1, q1)
	assert.Equal(t, p2, q2)
}

func TestNormalizeRoomPair_Equal(t *testing.T) {
	a := uuid.New()
	p1, p2 := NormalizeRoomPair(a, a)
	assert.Equal(t, a, p1)
	assert.Equal(t, a, p2)
}

func TestRoomParticipants(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	p1, p2 := NormalizeRoomPair(a, b)
	room := ChatRoom{Participant1ID: p1, Participant2ID: p2}

	assert.True(t, room.HasParticipant(a))
	assert.True(t, room.HasParticipant(b))
	assert.False(t, room.HasParticipant(uuid.New()))

	assert.Equal(t, b, room.OtherParticipant(a))
	assert.Equal(t, a, room.OtherParticipant(b))
}
