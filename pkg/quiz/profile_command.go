package quiz

import (
	"context"
	"fmt"
	"strings"

	"coffeeQuizBot/pkg/help"
	"coffeeQuizBot/pkg/msg"
	"coffeeQuizBot/pkg/recommend"
	"coffeeQuizBot/pkg/utils"

	"github.com/sirupsen/logrus"
)

const ProfileCommandName = "/profile"

// ProfileCommand shows or switches the engine profile used by the sender's next quizzes.
type ProfileCommand struct {
	registry *recommend.Registry
	store    *Store
}

func NewProfileCommand(registry *recommend.Registry, store *Store) *ProfileCommand {
	return &ProfileCommand{registry: registry, store: store}
}

func (pc *ProfileCommand) CanHandle(_ context.Context, req *msg.Request) (bool, error) {
	return utils.MatchesCommand(req.Message, ProfileCommandName), nil
}

func (pc *ProfileCommand) Handle(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	log := logrus.WithContext(ctx)

	current, err := pc.store.LoadProfile(ctx, req.Platform, req.Sender.GetID())
	if err != nil {
		return nil, err
	}
	current = pc.registry.Resolve(current).Profile().Name

	name := utils.ExtractCommandValue(req.Message, ProfileCommandName)
	if name == "" {
		return pc.list(current), nil
	}

	if _, ok := pc.registry.Get(name); !ok {
		return msg.NewError(fmt.Sprintf(
			"unknown profile %q, available profiles: %s",
			name,
			strings.Join(pc.registry.Names(), ", "),
		)), nil
	}

	err = pc.store.SaveProfile(ctx, req.Platform, req.Sender.GetID(), name)
	if err != nil {
		return nil, err
	}

	log.Infof("user %q switched engine profile from %q to %q", req.Sender.GetID(), current, name)

	op := &msg.Options{}
	op.WithPredefinedResponses(QuizCommand)

	return msg.NewResponse(
		fmt.Sprintf("switched to profile %q, send %s to start a new quiz", name, QuizCommand),
		msg.Success,
		op,
	), nil
}

func (pc *ProfileCommand) list(current string) *msg.Response {
	lines := []string{"available profiles:"}
	op := &msg.Options{}

	for _, name := range pc.registry.Names() {
		engine, _ := pc.registry.Get(name)
		p := engine.Profile()

		marker := " "
		if name == current {
			marker = "*"
		}
		lines = append(lines, fmt.Sprintf("%s %s (%s, %d drinks): %s", marker, name, p.Policy.Name(), p.Catalog.Len(), p.Description))
		op.WithPredefinedResponses(ProfileCommandName + " " + name)
	}

	return msg.NewResponse(strings.Join(lines, "\n"), msg.Success, op)
}

func (pc *ProfileCommand) GetHelp(_ context.Context, _ *msg.Request) help.Result {
	return help.Result{
		Text: fmt.Sprintf("%s [name]: shows the engine profiles or switches the profile of your next quizzes", ProfileCommandName),
	}
}
