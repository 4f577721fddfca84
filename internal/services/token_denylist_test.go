package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenDenylist(t *testing.T) {
	client := setupTestRedis(t)
	denylist := NewTokenDenylist(client)

	found, err := denylist.Contains("unknown-token")
	assert.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, denylist.Add("revoked-token", time.Hour))

	found, err = denylist.Contains("revoked-token")
	assert.NoError(t, err)
	assert.True(t, found)

	found, err = denylist.Contains("other-token")
	assert.NoError(t, err)
	assert.False(t, found)
}
