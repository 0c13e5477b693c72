package telegram

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"coffeeQuizBot/pkg/errs"
	"coffeeQuizBot/pkg/logging"
	"coffeeQuizBot/pkg/msg"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const (
	platformName  = "telegram"
	buttonsPerRow = 2
)

type Bot struct {
	conf       *Config
	baseBot    *telebot.Bot
	msgHandler *msg.Router
}

func NewBot(c *Config, r *msg.Router) (*Bot, error) {
	validationErr := c.Validate()
	if validationErr.HasErrors() {
		return nil, validationErr
	}

	botApi, err := telebot.NewBot(telebot.Settings{
		Token:  c.APIToken,
		Poller: &telebot.LongPoller{Timeout: c.PollTimeout},
		OnError: func(err error, c telebot.Context) {
			errs.Handle(err, false)
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create telegram bot")
	}

	return &Bot{conf: c, baseBot: botApi, msgHandler: r}, nil
}

func (b *Bot) botMsgToRequest(telegramMsg telebot.Context) *msg.Request {
	sender := new(msg.Sender)
	telegramSender := telegramMsg.Sender()
	if telegramSender != nil {
		id := telegramSender.Username
		if id == "" {
			id = fmt.Sprint(telegramSender.ID)
		}

		sender.ID = id
		sender.LastName = telegramSender.LastName
		sender.FirstName = telegramSender.FirstName
	}

	var conversationID int64
	chat := telegramMsg.Chat()
	if chat != nil {
		conversationID = chat.ID
	}

	req := &msg.Request{
		Platform: platformName,
		Sender:   sender,
		Message:  telegramMsg.Text(),
		Meta: map[string]interface{}{
			"conversation_id": conversationID,
		},
	}

	if m := telegramMsg.Message(); m != nil {
		req.ID = fmt.Sprint(m.ID)
		req.Meta["timestamp"] = m.Unixtime
	}

	return req
}

func guessParseMode(op *msg.Options) telebot.ParseMode {
	if op.GetFormat() == msg.OutputFormatHTML {
		return telebot.ModeHTML
	}

	return telebot.ModeDefault
}

// buildReplyMarkup returns nil when the current keyboard should stay as it is.
func buildReplyMarkup(op *msg.Options) *telebot.ReplyMarkup {
	if op.ShouldRemovePredefinedResponses() {
		return &telebot.ReplyMarkup{RemoveKeyboard: true}
	}

	responses := op.GetPredefinedResponses()
	if len(responses) == 0 {
		return nil
	}

	markup := &telebot.ReplyMarkup{
		ResizeKeyboard:  true,
		OneTimeKeyboard: op.IsTempPredefinedResponse(),
	}

	btns := make([]telebot.Btn, 0, len(responses))
	for _, r := range responses {
		btns = append(btns, markup.Text(r.Text))
	}
	markup.Reply(markup.Split(buttonsPerRow, btns)...)

	return markup
}

func formatText(m msg.ResponseMessage) string {
	if m.Type == msg.Error {
		return `❗` + m.Message + `❗`
	}

	return m.Message
}

// resolveImage finds the image under the images dir, a missing file is not an error.
func resolveImage(imagesDir, ref string) (string, bool) {
	if ref == "" {
		return "", false
	}

	fullPath := filepath.Join(imagesDir, filepath.FromSlash(ref))
	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() {
		return "", false
	}

	return fullPath, true
}

func (b *Bot) sendMessage(ctx context.Context, recipient telebot.Recipient, m msg.ResponseMessage) error {
	log := logrus.WithContext(ctx)

	senderOpts := &telebot.SendOptions{
		ParseMode:   guessParseMode(m.Options),
		ReplyMarkup: buildReplyMarkup(m.Options),
	}

	text := formatText(m)

	if imagePath, ok := resolveImage(b.conf.ImagesDir, m.Options.GetImage()); ok {
		log.Debugf("will send image %q", imagePath)
		photo := &telebot.Photo{File: telebot.FromDisk(imagePath), Caption: text}
		_, err := b.baseBot.Send(recipient, photo, senderOpts)
		if err == nil {
			return nil
		}
		log.Errorf("failed to send image %q, will send text only: %v", imagePath, err)
	} else if m.Options.GetImage() != "" {
		log.Debugf("image %q not found in %q", m.Options.GetImage(), b.conf.ImagesDir)
	}

	if text == "" {
		return nil
	}

	_, err := b.baseBot.Send(recipient, text, senderOpts)
	if err != nil {
		return errors.Wrapf(err, "failed to send message:\n%s", text)
	}

	return nil
}

func (b *Bot) processResponse(
	ctx context.Context,
	telegramMsg telebot.Context,
	resp *msg.Response,
) error {
	log := logrus.WithContext(ctx)

	if resp.IsEmpty() {
		log.Info("response message is empty, will send nothing to the sender")
		return nil
	}

	isHidden := false
	for _, m := range resp.Messages {
		log.Debugf("telegram message:\n%q", m.Message)

		err := b.sendMessage(ctx, telegramMsg.Recipient(), m)
		if err != nil {
			return err
		}

		if m.Options.IsResponseToHiddenMessage() {
			isHidden = true
		}
	}

	if isHidden {
		originalMsg := telegramMsg.Message()
		deleteErr := b.baseBot.Delete(originalMsg)
		if deleteErr != nil {
			log.Errorf("failed to delete user message %d: %v", originalMsg.ID, deleteErr)
		} else {
			log.Infof("deleted user message %d as it contained a sensitive data", originalMsg.ID)
		}
	}

	return nil
}

func (b *Bot) handle(ctx context.Context, c telebot.Context) error {
	log := logrus.WithContext(ctx)

	req := b.botMsgToRequest(c)
	log.Debugf("got telegram message from %q", req.Sender.GetID())

	resp, err := b.msgHandler.Route(ctx, req)
	if err != nil {
		_, sendErr := b.baseBot.Send(c.Recipient(), "Unexpected error", &telebot.SendOptions{})
		if sendErr != nil {
			log.Errorf("failed to send error message to the sender: %v", sendErr)
		}

		return err
	}

	return b.processResponse(ctx, c, resp)
}

func (b *Bot) Start() {
	b.baseBot.Handle(telebot.OnText, func(c telebot.Context) error {
		ctx, cancel := context.WithCancel(logging.WithTrackingId(context.Background()))
		defer cancel()

		return b.handle(ctx, c)
	})

	b.baseBot.Start()
}

func (b *Bot) Stop() {
	logrus.Info("will stop telegram bot")
	b.baseBot.Stop()
	logrus.Info("stopped telegram bot")
}
