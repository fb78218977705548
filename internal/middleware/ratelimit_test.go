package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryRateLimiter(t *testing.T) {
	limiter := NewInMemoryRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("1.2.3.4"), "request %d should pass", i+1)
	}
	assert.False(t, limiter.Allow("1.2.3.4"), "fourth request should be limited")

	// other keys are independent
	assert.True(t, limiter.Allow("5.6.7.8"))
}

func TestInMemoryRateLimiterWindowExpiry(t *testing.T) {
	limiter := NewInMemoryRateLimiter(1, 10*time.Millisecond)

	assert.True(t, limiter.Allow("k"))
	assert.False(t, limiter.Allow("k"))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, limiter.Allow("k"), "window expired, slot should free up")
}
