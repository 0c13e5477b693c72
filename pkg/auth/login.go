package auth

import (
	"context"
	"fmt"
	"time"

	"coffeeQuizBot/pkg/help"
	"coffeeQuizBot/pkg/msg"
	"coffeeQuizBot/pkg/utils"

	logging "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const LoginCommand = "/login"

type LoginHandler struct {
	us  *UserStorage
	cfg *Config
	now func() time.Time
}

func NewLoginHandler(us *UserStorage, cfg *Config) *LoginHandler {
	return &LoginHandler{
		us:  us,
		cfg: cfg,
		now: time.Now,
	}
}

// CanHandle takes the login command and the password message that follows it.
func (h *LoginHandler) CanHandle(_ context.Context, req *msg.Request) (bool, error) {
	if utils.MatchesCommand(req.Message, LoginCommand) {
		return true, nil
	}

	user := GetUserFromReq(req)

	return user != nil && user.State == UserReadyToBeVerified && !msg.IsCommand(req.Message), nil
}

func (h *LoginHandler) Handle(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	log := logging.WithContext(ctx)

	user := GetUserFromReq(req)

	if user == nil {
		log.Warnf("login attempt of unknown user %q", req.Sender.GetID())
		return msg.NewError("your user is unknown"), nil
	}

	if utils.MatchesCommand(req.Message, LoginCommand) {
		if user.IsLoggedIn(h.now()) {
			return msg.NewSuccess("you are already logged in"), nil
		}

		user.State = UserReadyToBeVerified
		err := h.us.WriteUserToStorage(ctx, user)
		if err != nil {
			return nil, err
		}

		op := &msg.Options{}
		op.WithRemovedPredefinedResponses()

		return msg.NewResponse("Please provide your password", msg.Prompt, op), nil
	}

	return h.handleNotVerifiedUser(ctx, req, user)
}

func (h *LoginHandler) handleNotVerifiedUser(
	ctx context.Context,
	req *msg.Request,
	user *CachedUser,
) (*msg.Response, error) {
	log := logging.WithContext(ctx)

	hiddenOp := &msg.Options{}
	hiddenOp.WithIsResponseToHiddenMessage()

	log.Debugf("checking password for user %q", req.Sender.GetID())
	if !h.checkPassword(req.Message, user) {
		log.Debugf("password for user %q is not correct", req.Sender.GetID())

		user.State = UserUnverified
		err := h.us.WriteUserToStorage(ctx, user)
		if err != nil {
			return nil, err
		}

		return msg.NewResponse(
			fmt.Sprintf("password is not correct, send %s to try again", LoginCommand),
			msg.Error,
			hiddenOp,
		), nil
	}
	log.Debugf("password for user %q is correct", req.Sender.GetID())

	user.State = UserVerified
	user.LoginTill = 0
	if h.cfg.SessionDuration > 0 {
		user.LoginTill = h.now().Add(h.cfg.SessionDuration).Unix()
	}

	err := h.us.WriteUserToStorage(ctx, user)
	if err != nil {
		return nil, err
	}

	return msg.NewResponse(
		"Password is correct, you can use the admin commands now. Will delete the message with password for security reasons.",
		msg.Success,
		hiddenOp,
	), nil
}

func (h *LoginHandler) checkPassword(candidatePassword string, user *CachedUser) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(candidatePassword))

	return err == nil
}

func (h *LoginHandler) GetHelp(_ context.Context, req *msg.Request) help.Result {
	if GetUserFromReq(req) == nil {
		return help.Result{}
	}

	return help.Result{
		Text: fmt.Sprintf("%s: logs you in as admin, the message with the password is deleted afterwards", LoginCommand),
	}
}
