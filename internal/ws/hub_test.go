package ws

import (
	"encoding/json"
	"sync"
	"testing"

	"investlion/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubBroadcastToUser(t *testing.T) {
	hub := NewHub()
	a := &Client{UserID: 1, Send: make(chan []byte, 4)}
	b := &Client{UserID: 1, Send: make(chan []byte, 4)}
	other := &Client{UserID: 2, Send: make(chan []byte, 4)}
	hub.Register(a)
	hub.Register(b)
	hub.Register(other)

	hub.BroadcastToUser(1, map[string]string{"hello": "world"})

	assert.Len(t, a.Send, 1)
	assert.Len(t, b.Send, 1)
	assert.Len(t, other.Send, 0)
}

func TestHubUnregisterOnClose(t *testing.T) {
	hub := NewHub()
	c := &Client{UserID: 1, Send: make(chan []byte, 1)}
	hub.Register(c)
	c.Close()
	c.Close() // second close is a no-op

	hub.BroadcastToUser(1, "ignored")
	_, open := <-c.Send
	assert.False(t, open)
}

func TestHubSlowClientDoesNotBlock(t *testing.T) {
	hub := NewHub()
	slow := &Client{UserID: 1, Send: make(chan []byte)} // unbuffered, no reader
	hub.Register(slow)

	done := make(chan struct{})
	go func() {
		hub.BroadcastToUser(1, "dropped")
		close(done)
	}()
	<-done
}

func TestHubBroadcastRacingClose(t *testing.T) {
	// a push racing a disconnect must drop the message, not panic on the
	// closed channel
	hub := NewHub()
	for i := 0; i < 500; i++ {
		c := &Client{UserID: 1, Send: make(chan []byte, 1)}
		hub.Register(c)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			hub.BroadcastToUser(1, "profile")
		}()
		go func() {
			defer wg.Done()
			c.Close()
		}()
		wg.Wait()
	}
}

func TestProfileHubPayload(t *testing.T) {
	hub := NewProfileHub()
	c := &Client{UserID: 7, Send: make(chan []byte, 1)}
	hub.Register(c)

	hub.PublishProfile(&models.User{ID: 7, Balance: 123.5})

	var msg struct {
		Type    string      `json:"type"`
		Profile models.User `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(<-c.Send, &msg))
	assert.Equal(t, "profile", msg.Type)
	assert.Equal(t, uint(7), msg.Profile.ID)
	assert.Equal(t, 123.5, msg.Profile.Balance)
}
