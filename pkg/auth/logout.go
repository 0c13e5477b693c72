package auth

import (
	"context"
	"fmt"

	"coffeeQuizBot/pkg/help"
	"coffeeQuizBot/pkg/msg"
	"coffeeQuizBot/pkg/utils"

	"github.com/sirupsen/logrus"
)

const LogoutCommand = "/logout"

type LogoutHandler struct {
	us *UserStorage
}

func NewLogoutHandler(us *UserStorage) *LogoutHandler {
	return &LogoutHandler{us: us}
}

func (h *LogoutHandler) CanHandle(_ context.Context, req *msg.Request) (bool, error) {
	return utils.MatchesCommand(req.Message, LogoutCommand), nil
}

func (h *LogoutHandler) Handle(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	log := logrus.WithContext(ctx)

	user := GetUserFromReq(req)

	if user == nil {
		log.Warnf("user not found, will do nothing")
		return msg.NewSuccess("User not found"), nil
	}

	user.State = UserUnverified
	user.LoginTill = 0

	err := h.us.WriteUserToStorage(ctx, user)
	if err != nil {
		return nil, err
	}

	op := &msg.Options{}
	op.WithRemovedPredefinedResponses()

	return msg.NewResponse("Logout success", msg.Success, op), nil
}

func (h *LogoutHandler) GetHelp(_ context.Context, req *msg.Request) help.Result {
	if !GetUserFromReq(req).IsLoggedIn(timeNow()) {
		return help.Result{}
	}

	return help.Result{
		Text: fmt.Sprintf("%s: to logout the current user", LogoutCommand),
	}
}
