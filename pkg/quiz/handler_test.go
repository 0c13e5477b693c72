package quiz

import (
	"context"
	"sync"
	"testing"
	"time"

	"coffeeQuizBot/pkg/catalog"
	"coffeeQuizBot/pkg/msg"
	"coffeeQuizBot/pkg/present"
	"coffeeQuizBot/pkg/recommend"
	"coffeeQuizBot/pkg/storage"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPlatform = "telegram"
	testUser     = "42"
)

type record struct {
	platform string
	profile  string
	item     catalog.Item
}

type fakeRecorder struct {
	records []record
	err     error
}

func (fr *fakeRecorder) Record(_ context.Context, platform, profile string, item catalog.Item) error {
	fr.records = append(fr.records, record{platform: platform, profile: profile, item: item})
	return fr.err
}

func newTestHandler(t *testing.T) (*Handler, *Store, *fakeRecorder) {
	t.Helper()

	registry, err := recommend.NewRegistry(recommend.ProfileClassic, recommend.BuiltinProfiles()...)
	require.NoError(t, err)

	store := NewStore(newTestDB(t), time.Hour)
	rec := &fakeRecorder{}

	h := NewHandler(registry, store, present.NewTableResolverFactory(), rec)
	h.now = func() time.Time {
		return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	}

	return h, store, rec
}

func send(t *testing.T, h *Handler, text string) *msg.Response {
	t.Helper()

	req := &msg.Request{
		Platform: testPlatform,
		Sender:   &msg.Sender{ID: testUser},
		Message:  text,
		Meta:     map[string]interface{}{},
	}

	ok, err := h.CanHandle(context.Background(), req)
	require.NoError(t, err)
	require.True(t, ok, text)

	resp, err := h.Handle(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Messages)

	return resp
}

func lastMessage(resp *msg.Response) msg.ResponseMessage {
	return resp.Messages[len(resp.Messages)-1]
}

func buttons(m msg.ResponseMessage) []string {
	res := []string{}
	for _, r := range m.Options.GetPredefinedResponses() {
		res = append(res, r.Text)
	}

	return res
}

func TestHandler_ClassicFlow(t *testing.T) {
	h, store, rec := newTestHandler(t)
	ctx := context.Background()

	resp := send(t, h, "/quiz")
	first := lastMessage(resp)
	assert.Equal(t, msg.Prompt, first.Type)
	assert.Contains(t, first.Message, "السؤال 1 من 5")
	assert.Contains(t, first.Message, "هل تحب القهوة المحلاة؟")
	assert.Equal(t, []string{recommend.TokenYes, recommend.TokenNo}, buttons(first))

	resp = send(t, h, recommend.TokenNo)
	second := lastMessage(resp)
	assert.Contains(t, second.Message, "السؤال 2 من 5")
	assert.Equal(t, []string{recommend.TokenYes, recommend.TokenNo, BackCommand}, buttons(second))

	resp = send(t, h, "ربما")
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, msg.Error, resp.Messages[0].Type)
	assert.Contains(t, resp.Messages[1].Message, "السؤال 2 من 5")

	resp = send(t, h, recommend.TokenYes)
	assert.Contains(t, lastMessage(resp).Message, "السؤال 3 من 5")

	resp = send(t, h, BackCommand)
	assert.Contains(t, lastMessage(resp).Message, "السؤال 2 من 5")
	assert.Contains(t, lastMessage(resp).Message, "إجابتك الحالية: "+recommend.TokenYes)

	resp = send(t, h, recommend.TokenYes)
	assert.Contains(t, lastMessage(resp).Message, "السؤال 3 من 5")

	resp = send(t, h, recommend.TokenYes)
	specialty := lastMessage(resp)
	assert.Contains(t, specialty.Message, "السؤال 4 من 5")
	assert.Equal(t, []string{
		recommend.TokenRegular,
		recommend.TokenYemeni,
		recommend.TokenColombian,
		recommend.TokenEthiopian,
		BackCommand,
	}, buttons(specialty))

	resp = send(t, h, recommend.TokenEthiopian)
	assert.Contains(t, lastMessage(resp).Message, "السؤال 5 من 5")

	resp = send(t, h, recommend.TokenNo)
	result := lastMessage(resp)
	assert.Equal(t, msg.Success, result.Type)
	assert.Equal(t, msg.OutputFormatHTML, result.Options.GetFormat())
	assert.Contains(t, result.Message, "☕ ننصحك بـ: <b>ميكاتو ساخن</b>\n")
	assert.Contains(t, result.Message, "نسبة التطابق: 40%")
	assert.Contains(t, result.Message, "1. قهوة v60 إثيوبي ساخن")
	assert.Contains(t, result.Message, "2. قهوة v60 إثيوبي بارد")
	assert.NotContains(t, result.Message, "5.")
	assert.Equal(t, "images/hot/Mikato.png", result.Options.GetImage())

	require.Len(t, rec.records, 1)
	assert.Equal(t, testPlatform, rec.records[0].platform)
	assert.Equal(t, recommend.ProfileClassic, rec.records[0].profile)
	assert.Equal(t, "Mikato", rec.records[0].item.Name)

	sess, err := store.LoadSession(ctx, testPlatform, testUser)
	require.NoError(t, err)
	assert.Nil(t, sess)

	snap, err := store.LoadSnapshot(ctx, testPlatform, testUser)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, recommend.ProfileClassic, snap.Profile)
	assert.Equal(t, recommend.Answers{
		recommend.KeySweetness:      recommend.TokenNo,
		recommend.KeyMilkAmount:     recommend.TokenYes,
		recommend.KeyCoffeeStrength: recommend.TokenYes,
		recommend.KeySpecialty:      recommend.TokenEthiopian,
		recommend.KeyTemperature:    recommend.TokenNo,
	}, snap.Answers)

	resp = send(t, h, LastCommand)
	assert.Equal(t, result.Message, lastMessage(resp).Message)
	assert.Len(t, rec.records, 1)
}

func TestHandler_AnswerWithoutQuiz(t *testing.T) {
	h, _, _ := newTestHandler(t)

	resp := send(t, h, recommend.TokenYes)
	assert.Equal(t, msg.Error, lastMessage(resp).Type)
	assert.Equal(t, []string{QuizCommand}, buttons(lastMessage(resp)))

	for _, cmd := range []string{BackCommand, ResetCommand, LastCommand} {
		resp = send(t, h, cmd)
		assert.Equal(t, msg.Error, lastMessage(resp).Type, cmd)
	}
}

func TestHandler_BackOnFirstQuestion(t *testing.T) {
	h, _, _ := newTestHandler(t)

	send(t, h, StartCommand)
	resp := send(t, h, BackCommand)
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, msg.Error, resp.Messages[0].Type)
	assert.Contains(t, resp.Messages[1].Message, "السؤال 1 من 5")
}

func TestHandler_ResetClearsCurrentAnswer(t *testing.T) {
	h, store, _ := newTestHandler(t)
	ctx := context.Background()

	send(t, h, QuizCommand)
	send(t, h, recommend.TokenYes)
	send(t, h, BackCommand)

	resp := send(t, h, ResetCommand)
	assert.Contains(t, lastMessage(resp).Message, "تم مسح إجابتك.")
	assert.NotContains(t, lastMessage(resp).Message, "إجابتك الحالية")

	sess, err := store.LoadSession(ctx, testPlatform, testUser)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, 0, sess.Step)
	assert.Empty(t, sess.Answers)
}

func TestHandler_StartGreets(t *testing.T) {
	h, _, _ := newTestHandler(t)

	resp := send(t, h, StartCommand)
	assert.Contains(t, lastMessage(resp).Message, "أهلًا بك")
	assert.Contains(t, lastMessage(resp).Message, "السؤال 1 من 5")
}

func TestHandler_UsesChosenProfile(t *testing.T) {
	h, store, rec := newTestHandler(t)
	require.NoError(t, store.SaveProfile(context.Background(), testPlatform, testUser, recommend.ProfileMinimal))

	resp := send(t, h, QuizCommand)
	assert.Contains(t, lastMessage(resp).Message, "السؤال 1 من 4")

	send(t, h, recommend.TokenYes)
	resp = send(t, h, recommend.TokenYes)
	assert.Contains(t, lastMessage(resp).Message, "هل تريد مشروبًا يحتوي على القهوة؟")

	send(t, h, recommend.TokenNo)
	resp = send(t, h, recommend.TokenNo)

	result := lastMessage(resp)
	assert.Contains(t, result.Message, "مشروب شوكولاتة ساخن")
	assert.Contains(t, result.Message, "نسبة التطابق: 100%")
	assert.Equal(t, "images/hot/hot chocolate.png", result.Options.GetImage())
	require.Len(t, rec.records, 1)
	assert.Equal(t, recommend.ProfileMinimal, rec.records[0].profile)
}

func TestHandler_RecorderErrorDoesNotFailQuiz(t *testing.T) {
	h, _, rec := newTestHandler(t)
	rec.err = errors.New("stats are down")

	send(t, h, QuizCommand)
	var resp *msg.Response
	for _, answer := range []string{recommend.TokenNo, recommend.TokenNo, recommend.TokenNo, recommend.TokenRegular, recommend.TokenYes} {
		resp = send(t, h, answer)
	}

	assert.Equal(t, msg.Success, lastMessage(resp).Type)
	assert.Contains(t, lastMessage(resp).Message, "قهوة اليوم بارد")
	assert.Equal(t, "images/cold/coffee day.png", lastMessage(resp).Options.GetImage())
}

func TestHandler_CanHandle(t *testing.T) {
	h, _, _ := newTestHandler(t)

	for _, tc := range []struct {
		text string
		ok   bool
	}{
		{text: "/quiz", ok: true},
		{text: "/last", ok: true},
		{text: "نعم", ok: true},
		{text: "/help", ok: false},
		{text: "/quizzes", ok: false},
		{text: "  ", ok: false},
	} {
		ok, err := h.CanHandle(context.Background(), &msg.Request{Message: tc.text})
		require.NoError(t, err)
		assert.Equal(t, tc.ok, ok, tc.text)
	}
}

func TestHandler_UnknownSender(t *testing.T) {
	h, _, _ := newTestHandler(t)

	_, err := h.Handle(context.Background(), &msg.Request{Platform: testPlatform, Message: QuizCommand})
	assert.Error(t, err)
}

func TestHandler_ProfileTokensDriveTemperature(t *testing.T) {
	english := recommend.BuiltinProfiles()[0].Clone()
	english.Name = "english"
	english.Questionnaire.YesToken = "yes"
	english.Questionnaire.NoToken = "no"

	registry, err := recommend.NewRegistry(recommend.ProfileClassic, append(recommend.BuiltinProfiles(), english)...)
	require.NoError(t, err)

	store := NewStore(newTestDB(t), time.Hour)
	h := NewHandler(registry, store, present.NewTableResolverFactory(), nil)
	require.NoError(t, store.SaveProfile(context.Background(), testPlatform, testUser, english.Name))

	resp := send(t, h, QuizCommand)
	assert.Equal(t, []string{"yes", "no"}, buttons(lastMessage(resp)))

	for _, answer := range []string{"no", "no", "no", recommend.TokenRegular, "yes"} {
		resp = send(t, h, answer)
	}

	englishResult := lastMessage(resp)
	assert.Equal(t, msg.Success, englishResult.Type)
	assert.Contains(t, englishResult.Message, "قهوة اليوم بارد")
	assert.Equal(t, "images/cold/coffee day.png", englishResult.Options.GetImage())

	classic, _, _ := newTestHandler(t)
	send(t, classic, QuizCommand)
	for _, answer := range []string{recommend.TokenNo, recommend.TokenNo, recommend.TokenNo, recommend.TokenRegular, recommend.TokenYes} {
		resp = send(t, classic, answer)
	}

	assert.Equal(t, lastMessage(resp).Message, englishResult.Message)
}

func newTestDB(t *testing.T) *storage.RedisClient {
	t.Helper()

	db, err := storage.NewEmbeddedClient()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func TestHandler_ConcurrentAnswersAreKept(t *testing.T) {
	h, store, _ := newTestHandler(t)
	send(t, h, QuizCommand)

	const answers = 3
	errs := make(chan error, answers)

	var wg sync.WaitGroup
	for i := 0; i < answers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := h.Handle(context.Background(), &msg.Request{
				Platform: testPlatform,
				Sender:   &msg.Sender{ID: testUser},
				Message:  recommend.TokenNo,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	sess, err := store.LoadSession(context.Background(), testPlatform, testUser)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, 3, sess.Step)
	assert.Len(t, sess.Answers, answers)
	assert.Equal(t, 0, h.locks.size())
}
