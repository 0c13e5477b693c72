package monitoring

import (
	"context"
	"fmt"
	"strings"

	"coffeeQuizBot/pkg/help"
	"coffeeQuizBot/pkg/msg"
	"coffeeQuizBot/pkg/utils"
)

const StatsCommandName = "/stats"

type StatsCommand struct {
	stats *Stats
}

func NewStatsCommand(stats *Stats) *StatsCommand {
	return &StatsCommand{stats: stats}
}

func (sc *StatsCommand) CanHandle(_ context.Context, req *msg.Request) (bool, error) {
	return utils.MatchesCommand(req.Message, StatsCommandName), nil
}

func (sc *StatsCommand) Handle(ctx context.Context, _ *msg.Request) (*msg.Response, error) {
	counters, err := sc.stats.Report(ctx)
	if err != nil {
		return nil, err
	}

	if len(counters) == 0 {
		return msg.NewSuccess("no recommendations yet"), nil
	}

	var total int64
	lines := make([]string, 0, len(counters)+2)
	for _, c := range counters {
		total += c.Count
		lines = append(lines, fmt.Sprintf("%d  %s (%s), profile %s, %s", c.Count, c.Drink, c.Temperature, c.Profile, c.Platform))
	}

	lines = append([]string{fmt.Sprintf("total recommendations: %d", total), ""}, lines...)

	return msg.NewSuccess(strings.Join(lines, "\n")), nil
}

func (sc *StatsCommand) GetHelp(_ context.Context, _ *msg.Request) help.Result {
	return help.Result{
		Text: fmt.Sprintf("%s: shows how often each drink was recommended", StatsCommandName),
	}
}
