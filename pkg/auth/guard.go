package auth

import (
	"context"
	"time"

	"coffeeQuizBot/pkg/help"
	"coffeeQuizBot/pkg/msg"
)

var timeNow = time.Now

type helpHandler interface {
	msg.Handler
	help.Provider
}

// AdminOnly hides a handler and its help text from everyone but logged in admins.
type AdminOnly struct {
	handler helpHandler
}

func NewAdminOnly(h helpHandler) *AdminOnly {
	return &AdminOnly{handler: h}
}

func (ao *AdminOnly) CanHandle(ctx context.Context, req *msg.Request) (bool, error) {
	return ao.handler.CanHandle(ctx, req)
}

func (ao *AdminOnly) Handle(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	if !CheckAdmin(ctx, req) {
		return msg.NewError("you need to login as admin to use this command, see " + LoginCommand), nil
	}

	return ao.handler.Handle(ctx, req)
}

func (ao *AdminOnly) GetHelp(ctx context.Context, req *msg.Request) help.Result {
	user := GetUserFromReq(req)
	if user == nil || user.Role != AdminRole || !user.IsLoggedIn(timeNow()) {
		return help.Result{}
	}

	return ao.handler.GetHelp(ctx, req)
}
