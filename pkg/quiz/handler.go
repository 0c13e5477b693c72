package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	"coffeeQuizBot/pkg/catalog"
	"coffeeQuizBot/pkg/help"
	"coffeeQuizBot/pkg/msg"
	"coffeeQuizBot/pkg/present"
	"coffeeQuizBot/pkg/recommend"
	"coffeeQuizBot/pkg/utils"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	StartCommand = "/start"
	QuizCommand  = "/quiz"
	BackCommand  = "/back"
	ResetCommand = "/reset"
	LastCommand  = "/last"
)

var commands = []string{StartCommand, QuizCommand, BackCommand, ResetCommand, LastCommand}

// Recorder is notified about every completed quiz.
type Recorder interface {
	Record(ctx context.Context, platform, profile string, item catalog.Item) error
}

type Handler struct {
	registry    *recommend.Registry
	store       *Store
	resolverFor present.ResolverFactory
	recorder    Recorder
	prompts     map[string]string
	locks       *userLocks
	now         func() time.Time
}

func NewHandler(
	registry *recommend.Registry,
	store *Store,
	resolverFor present.ResolverFactory,
	recorder Recorder,
) *Handler {
	return &Handler{
		registry:    registry,
		store:       store,
		resolverFor: resolverFor,
		recorder:    recorder,
		prompts:     DefaultPrompts(),
		locks:       newUserLocks(),
		now:         time.Now,
	}
}

// CanHandle accepts the quiz commands and any plain text, which is treated as an answer.
func (h *Handler) CanHandle(_ context.Context, req *msg.Request) (bool, error) {
	if utils.MatchesCommands(req.Message, commands) {
		return true, nil
	}

	return !msg.IsCommand(req.Message) && strings.TrimSpace(req.Message) != "", nil
}

func (h *Handler) Handle(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	if req.Sender.GetID() == "" {
		return nil, errors.New("unknown message sender id")
	}

	// telebot handles updates concurrently, two quick taps must not overwrite each other's answer
	unlock := h.locks.Lock(req.Platform + "/" + req.Sender.GetID())
	defer unlock()

	switch {
	case utils.MatchesCommand(req.Message, StartCommand):
		return h.start(ctx, req, "أهلًا بك! أجب عن بعض الأسئلة وسنقترح عليك القهوة الأنسب لذوقك.\n\n")
	case utils.MatchesCommand(req.Message, QuizCommand):
		return h.start(ctx, req, "")
	case utils.MatchesCommand(req.Message, BackCommand):
		return h.back(ctx, req)
	case utils.MatchesCommand(req.Message, ResetCommand):
		return h.reset(ctx, req)
	case utils.MatchesCommand(req.Message, LastCommand):
		return h.last(ctx, req)
	}

	return h.answer(ctx, req)
}

func (h *Handler) GetHelp(_ context.Context, _ *msg.Request) help.Result {
	return help.Result{
		Text: fmt.Sprintf(`%s: starts a new coffee quiz
%s: goes back to the previous question
%s: clears the answer of the current question
%s: shows the recommendation of your last completed quiz`, QuizCommand, BackCommand, ResetCommand, LastCommand),
		PredefinedOption: QuizCommand,
	}
}

func (h *Handler) engineFor(ctx context.Context, req *msg.Request) (*recommend.Engine, error) {
	profile, err := h.store.LoadProfile(ctx, req.Platform, req.Sender.GetID())
	if err != nil {
		return nil, err
	}

	return h.registry.Resolve(profile), nil
}

func (h *Handler) start(ctx context.Context, req *msg.Request, greeting string) (*msg.Response, error) {
	log := logrus.WithContext(ctx)

	engine, err := h.engineFor(ctx, req)
	if err != nil {
		return nil, err
	}

	sess := &Session{
		Profile:   engine.Profile().Name,
		Answers:   recommend.Answers{},
		StartedAt: h.now().UTC(),
	}

	err = h.store.SaveSession(ctx, req.Platform, req.Sender.GetID(), sess)
	if err != nil {
		return nil, err
	}

	log.Debugf("started quiz for user %q with profile %q", req.Sender.GetID(), sess.Profile)

	return h.ask(sess, h.questions(engine), greeting), nil
}

func (h *Handler) loadSession(ctx context.Context, req *msg.Request) (*Session, *recommend.Engine, []Question, error) {
	sess, err := h.store.LoadSession(ctx, req.Platform, req.Sender.GetID())
	if err != nil || sess == nil {
		return nil, nil, nil, err
	}

	engine := h.registry.Resolve(sess.Profile)
	questions := h.questions(engine)

	if sess.Step >= len(questions) {
		sess.Step = len(questions) - 1
	}
	if sess.Step < 0 {
		sess.Step = 0
	}

	return sess, engine, questions, nil
}

func (h *Handler) questions(engine *recommend.Engine) []Question {
	return BuildQuestions(engine.Profile(), h.prompts)
}

func (h *Handler) noActiveQuiz() *msg.Response {
	op := &msg.Options{}
	op.WithPredefinedResponses(QuizCommand)

	return msg.NewResponse("لا يوجد اختبار نشط، أرسل "+QuizCommand+" للبدء", msg.Error, op)
}

func (h *Handler) ask(sess *Session, questions []Question, prefix string) *msg.Response {
	q := questions[sess.Step]

	text := fmt.Sprintf("%sالسؤال %d من %d\n%s", prefix, sess.Step+1, len(questions), q.Prompt)
	if current := sess.Answers.Get(q.Key); current != "" {
		text += fmt.Sprintf("\nإجابتك الحالية: %s", current)
	}

	op := &msg.Options{}
	op.WithPredefinedResponses(q.Options...)
	if sess.Step > 0 {
		op.WithPredefinedResponses(BackCommand)
	}

	return msg.NewResponse(text, msg.Prompt, op)
}

func (h *Handler) answer(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	log := logrus.WithContext(ctx)

	sess, engine, questions, err := h.loadSession(ctx, req)
	if err != nil {
		return nil, err
	}

	if sess == nil {
		return h.noActiveQuiz(), nil
	}

	q := questions[sess.Step]
	value := strings.TrimSpace(req.Message)
	if !q.Accepts(value) {
		log.Debugf("answer %q is not an option of question %q", value, q.Key)
		resp := msg.NewError("الرجاء اختيار إحدى الإجابات المتاحة")
		resp.Add(h.ask(sess, questions, "").Messages[0])

		return resp, nil
	}

	sess.Answers[q.Key] = value

	next, ok := nextUnanswered(questions, sess.Answers, sess.Step)
	if !ok {
		return h.finish(ctx, req, sess, engine, questions)
	}

	sess.Step = next
	err = h.store.SaveSession(ctx, req.Platform, req.Sender.GetID(), sess)
	if err != nil {
		return nil, err
	}

	return h.ask(sess, questions, ""), nil
}

// nextUnanswered looks forward from the current step first and wraps around to the beginning.
func nextUnanswered(questions []Question, answers recommend.Answers, step int) (int, bool) {
	for i := 1; i <= len(questions); i++ {
		idx := (step + i) % len(questions)
		if answers.Get(questions[idx].Key) == "" {
			return idx, true
		}
	}

	return 0, false
}

func (h *Handler) finish(
	ctx context.Context,
	req *msg.Request,
	sess *Session,
	engine *recommend.Engine,
	questions []Question,
) (*msg.Response, error) {
	log := logrus.WithContext(ctx)

	if missing := MissingKeys(questions, sess.Answers); len(missing) > 0 {
		return nil, errors.Errorf("cannot recommend with unanswered questions %v", missing)
	}

	profile := engine.Profile()
	res := engine.Recommend(sess.Answers)

	log.Infof(
		"recommended %s for user %q, profile %q, distance %.1f",
		res.Item.String(),
		req.Sender.GetID(),
		res.Profile,
		res.Distance,
	)

	err := h.store.SaveSnapshot(ctx, req.Platform, req.Sender.GetID(), &Snapshot{
		Profile:     profile.Name,
		Answers:     sess.Answers.Clone(),
		CompletedAt: h.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	err = h.store.DeleteSession(ctx, req.Platform, req.Sender.GetID())
	if err != nil {
		return nil, err
	}

	if h.recorder != nil {
		recErr := h.recorder.Record(ctx, req.Platform, profile.Name, res.Item)
		if recErr != nil {
			log.Errorf("failed to record recommendation stats: %v", recErr)
		}
	}

	return h.renderResult(res, sess.Answers, profile.Questionnaire), nil
}

func (h *Handler) renderResult(res recommend.Result, answers recommend.Answers, q recommend.Questionnaire) *msg.Response {
	rendering := RenderResult(res, answers, q, h.resolverFor(q.YesToken))

	op := &msg.Options{}
	op.WithFormat(msg.OutputFormatHTML)
	op.WithImage(rendering.ImageRef)
	op.WithPredefinedResponses(QuizCommand)
	op.WithIsTempPredefinedResponse()

	return msg.NewResponse(rendering.HTML, msg.Success, op)
}

func (h *Handler) back(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	sess, _, questions, err := h.loadSession(ctx, req)
	if err != nil {
		return nil, err
	}

	if sess == nil {
		return h.noActiveQuiz(), nil
	}

	if sess.Step == 0 {
		resp := msg.NewError("أنت في السؤال الأول")
		resp.Add(h.ask(sess, questions, "").Messages[0])

		return resp, nil
	}

	sess.Step--
	err = h.store.SaveSession(ctx, req.Platform, req.Sender.GetID(), sess)
	if err != nil {
		return nil, err
	}

	return h.ask(sess, questions, ""), nil
}

func (h *Handler) reset(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	sess, _, questions, err := h.loadSession(ctx, req)
	if err != nil {
		return nil, err
	}

	if sess == nil {
		return h.noActiveQuiz(), nil
	}

	delete(sess.Answers, questions[sess.Step].Key)
	err = h.store.SaveSession(ctx, req.Platform, req.Sender.GetID(), sess)
	if err != nil {
		return nil, err
	}

	return h.ask(sess, questions, "تم مسح إجابتك.\n"), nil
}

func (h *Handler) last(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	snap, err := h.store.LoadSnapshot(ctx, req.Platform, req.Sender.GetID())
	if err != nil {
		return nil, err
	}

	if snap == nil {
		op := &msg.Options{}
		op.WithPredefinedResponses(QuizCommand)

		return msg.NewResponse("لم تكمل أي اختبار بعد، أرسل "+QuizCommand+" للبدء", msg.Error, op), nil
	}

	engine := h.registry.Resolve(snap.Profile)
	if missing := MissingKeys(h.questions(engine), snap.Answers); len(missing) > 0 {
		logrus.WithContext(ctx).Warnf("snapshot of user %q misses answers %v", req.Sender.GetID(), missing)

		op := &msg.Options{}
		op.WithPredefinedResponses(QuizCommand)

		return msg.NewResponse("إجاباتك السابقة غير مكتملة، أرسل "+QuizCommand+" لإعادة الاختبار", msg.Error, op), nil
	}

	profile := engine.Profile()

	return h.renderResult(engine.Recommend(snap.Answers), snap.Answers, profile.Questionnaire), nil
}
