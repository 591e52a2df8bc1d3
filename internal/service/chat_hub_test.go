package service

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type fakeSubscriber struct {
	received []interface{}
	fail     bool
}

func (s *fakeSubscriber) Send(payload interface{}) error {
	if s.fail {
		return errors.New("connection gone")
	}
	s.received = append(s.received, payload)
	return nil
}

func newTestHub() *ChatHub {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewChatHub(log)
}

func TestHubBroadcast_ReachesAllRoomSubscribers(t *testing.T) {
	hub := newTestHub()

	a := &fakeSubscriber{}
	b := &fakeSubscriber{}
	other := &fakeSubscriber{}

	hub.Join(1, a)
	hub.Join(1, b)
	hub.Join(2, other)

	hub.Broadcast(1, "hello")

	assert.Equal(t, []interface{}{"hello"}, a.received)
	assert.Equal(t, []interface{}{"hello"}, b.received)
	assert.Empty(t, other.received)
}

func TestHubBroadcast_EvictsFailedSubscribers(t *testing.T) {
	hub := newTestHub()

	healthy := &fakeSubscriber{}
	broken := &fakeSubscriber{fail: true}

	hub.Join(1, healthy)
	hub.Join(1, broken)
	assert.Equal(t, 2, hub.RoomSize(1))

	hub.Broadcast(1, "first")
	assert.Equal(t, 1, hub.RoomSize(1))

	hub.Broadcast(1, "second")
	assert.Equal(t, []interface{}{"first", "second"}, healthy.received)
}

func TestHubLeave_DropsEmptyRooms(t *testing.T) {
	hub := newTestHub()

	sub := &fakeSubscriber{}
	hub.Join(7, sub)
	assert.Equal(t, 1, hub.RoomSize(7))

	hub.Leave(7, sub)
	assert.Equal(t, 0, hub.RoomSize(7))

	// Leaving twice is harmless
	hub.Leave(7, sub)
	hub.Broadcast(7, "nobody home")
	assert.Empty(t, sub.received)
}
