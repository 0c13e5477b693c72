package help

import (
	"context"
	"testing"

	"coffeeQuizBot/pkg/msg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticProvider Result

func (sp staticProvider) GetHelp(_ context.Context, _ *msg.Request) Result {
	return Result(sp)
}

func TestHandler(t *testing.T) {
	h := &Handler{
		Providers: []Provider{
			staticProvider{Text: "/quiz: starts a quiz", PredefinedOption: "/quiz"},
			staticProvider{},
			staticProvider{Text: "/stats: shows stats"},
		},
	}

	ok, err := h.CanHandle(context.Background(), &msg.Request{Message: "/help"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.CanHandle(context.Background(), &msg.Request{Message: "/helpme"})
	require.NoError(t, err)
	assert.False(t, ok)

	resp, err := h.Handle(context.Background(), &msg.Request{Message: "/help"})
	require.NoError(t, err)
	require.Len(t, resp.Messages, 1)

	text := resp.Messages[0].Message
	assert.Contains(t, text, "/help: to show this help")
	assert.Contains(t, text, "/quiz: starts a quiz")
	assert.Contains(t, text, "/stats: shows stats")
	assert.NotContains(t, text, "\n\n\n\n")

	assert.Equal(t, []msg.PredefinedResponse{{Text: "/quiz"}, {Text: "/help"}}, resp.Messages[0].Options.GetPredefinedResponses())
}
