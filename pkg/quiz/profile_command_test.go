package quiz

import (
	"context"
	"testing"

	"coffeeQuizBot/pkg/msg"
	"coffeeQuizBot/pkg/recommend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileCommand(t *testing.T) {
	h, store, _ := newTestHandler(t)
	pc := NewProfileCommand(h.registry, store)
	ctx := context.Background()

	req := func(text string) *msg.Request {
		return &msg.Request{Platform: testPlatform, Sender: &msg.Sender{ID: testUser}, Message: text}
	}

	ok, err := pc.CanHandle(ctx, req("/profile"))
	require.NoError(t, err)
	assert.True(t, ok)

	resp, err := pc.Handle(ctx, req("/profile"))
	require.NoError(t, err)
	assert.Contains(t, resp.Messages[0].Message, "* classic (milk-preference, 20 drinks)")
	assert.Contains(t, resp.Messages[0].Message, "  minimal (nearest, 2 drinks)")

	resp, err = pc.Handle(ctx, req("/profile espresso-only"))
	require.NoError(t, err)
	assert.Equal(t, msg.Error, resp.Messages[0].Type)

	resp, err = pc.Handle(ctx, req("/profile flavored"))
	require.NoError(t, err)
	assert.Equal(t, msg.Success, resp.Messages[0].Type)

	profile, err := store.LoadProfile(ctx, testPlatform, testUser)
	require.NoError(t, err)
	assert.Equal(t, recommend.ProfileFlavored, profile)

	resp, err = pc.Handle(ctx, req("/profile"))
	require.NoError(t, err)
	assert.Contains(t, resp.Messages[0].Message, "* flavored")
}
