package msg

import (
	"context"
	"fmt"
	"strings"
)

const CommandPrefix = "/"

type Handler interface {
	Handle(ctx context.Context, req *Request) (*Response, error)
	CanHandle(ctx context.Context, req *Request) (bool, error)
}

// Middleware runs before the handlers, a non nil response stops the routing.
type Middleware interface {
	Handle(ctx context.Context, req *Request) (*Response, error)
}

func IsCommand(msg string) bool {
	return strings.HasPrefix(msg, CommandPrefix)
}

// UnknownCommandHandler answers any slash command that no other handler accepted.
type UnknownCommandHandler struct{}

func (uh *UnknownCommandHandler) CanHandle(_ context.Context, req *Request) (bool, error) {
	return IsCommand(req.Message), nil
}

func (uh *UnknownCommandHandler) Handle(_ context.Context, req *Request) (*Response, error) {
	return NewError(fmt.Sprintf("unsupported command %q, see /help", req.Message)), nil
}
