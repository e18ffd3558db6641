package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingSender struct {
	err  error
	sent []Notification
}

func (s *recordingSender) Send(n Notification) error {
	s.sent = append(s.sent, n)
	return s.err
}

func TestNotification_IconAndUrgency(t *testing.T) {
	tests := []struct {
		n       Notification
		icon    string
		urgency byte
	}{
		{Notification{Kind: KindInfo}, "network-vpn", 0},
		{Notification{Kind: KindSuccess}, "network-vpn", 0},
		{Notification{Kind: KindWarning}, "dialog-warning", 1},
		{Notification{Kind: KindError}, "dialog-error", 2},
		{Notification{Kind: KindError, Icon: "custom"}, "custom", 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.icon, tt.n.IconName())
		assert.Equal(t, tt.urgency, tt.n.Urgency())
	}
}

func TestNotifier_FallsBack(t *testing.T) {
	first := &recordingSender{err: errors.New("no session bus")}
	second := &recordingSender{}
	n := NewWithSenders(nil, first, second)

	n.Connected("Germany (Berlin)")

	assert.Len(t, first.sent, 1)
	if assert.Len(t, second.sent, 1) {
		assert.Equal(t, "Connected to Germany (Berlin)", second.sent[0].Message)
		assert.Equal(t, KindSuccess, second.sent[0].Kind)
	}
}

func TestNotifier_StopsAtFirstSuccess(t *testing.T) {
	first := &recordingSender{}
	second := &recordingSender{}
	n := NewWithSenders(nil, first, second)

	n.Error("Connect failed", "Whoops!")

	assert.Len(t, first.sent, 1)
	assert.Empty(t, second.sent)
	assert.Equal(t, KindError, first.sent[0].Kind)
}

func TestNotifier_Disabled(t *testing.T) {
	s := &recordingSender{}
	n := NewWithSenders(func() bool { return false }, s)

	n.Disconnected()
	assert.Empty(t, s.sent)
}
