package cmd

import (
	"coffeeQuizBot/pkg/auth"
	"coffeeQuizBot/pkg/help"
	"coffeeQuizBot/pkg/monitoring"
	"coffeeQuizBot/pkg/msg"
	"coffeeQuizBot/pkg/present"
	"coffeeQuizBot/pkg/quiz"
	"coffeeQuizBot/pkg/recommend"
	"coffeeQuizBot/pkg/storage"
)

func BuildMessageRouter(db storage.Client, registry *recommend.Registry) (*msg.Router, error) {
	us := auth.NewUserStorage(db)

	userMiddleware := auth.NewUserMiddleware(us)

	loginHandler, err := auth.BuildLoginHandler(us)
	if err != nil {
		return nil, err
	}

	logoutHandler := auth.NewLogoutHandler(us)

	quizCfg, err := quiz.LoadConfig()
	if err != nil {
		return nil, err
	}

	validationErr := quizCfg.Validate()
	if validationErr.HasErrors() {
		return nil, validationErr
	}

	store := quiz.NewStore(db, quizCfg.SessionTTL)
	stats := monitoring.NewStats(db)
	quizHandler := quiz.NewHandler(registry, store, present.NewTableResolverFactory(), stats)
	profileHandler := auth.NewAdminOnly(quiz.NewProfileCommand(registry, store))
	statsHandler := auth.NewAdminOnly(monitoring.NewStatsCommand(stats))

	helpHandler := &help.Handler{
		Providers: []help.Provider{
			quizHandler,
			loginHandler,
			logoutHandler,
			profileHandler,
			statsHandler,
		},
	}

	r := &msg.Router{
		Handlers: []msg.Handler{
			loginHandler,
			helpHandler,
			logoutHandler,
			profileHandler,
			statsHandler,
			quizHandler,
			&msg.UnknownCommandHandler{},
		},
	}

	r.UseMiddleware(userMiddleware)

	return r, nil
}
