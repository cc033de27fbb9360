// Package dogbot is a small Telegram bot framework: a polling or webhook
// update source, an ordered command registry, and a task tracker that owns
// every goroutine spawned for a command.
package dogbot

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/redis/rueidis"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/panics"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/TonnyWong1052/Message-Bot-dogv/pkg/i18n"
	"github.com/TonnyWong1052/Message-Bot-dogv/pkg/locales"
	"github.com/TonnyWong1052/Message-Bot-dogv/pkg/redis"
	"github.com/TonnyWong1052/Message-Bot-dogv/pkg/storage/queue"
	"github.com/TonnyWong1052/Message-Bot-dogv/pkg/storage/ttlcache"
	"github.com/nekomeowww/fo"
	"github.com/nekomeowww/xo"
	"github.com/nekomeowww/xo/exp/channelx"
	"github.com/nekomeowww/xo/logger"
)

type botOptions struct {
	webhookURL  string
	webhookPort string
	token       string
	apiEndpoint string
	dispatcher  *Dispatcher
	tracker     *TaskTracker
	logger      *logger.Logger
	queue       queue.Queue
	ttlcache    ttlcache.TTLCache
	i18n        *i18n.I18n
}

type CallOption func(*botOptions)

func WithWebhookURL(url string) CallOption {
	return func(o *botOptions) {
		o.webhookURL = url
	}
}

func WithWebhookPort(port string) CallOption {
	return func(o *botOptions) {
		o.webhookPort = port
	}
}

func WithToken(token string) CallOption {
	return func(o *botOptions) {
		o.token = token
	}
}

func WithAPIEndpoint(endpoint string) CallOption {
	return func(o *botOptions) {
		o.apiEndpoint = endpoint
	}
}

func WithDispatcher(dispatcher *Dispatcher) CallOption {
	return func(o *botOptions) {
		o.dispatcher = dispatcher
	}
}

func WithTaskTracker(tracker *TaskTracker) CallOption {
	return func(o *botOptions) {
		o.tracker = tracker
	}
}

func WithLogger(logger *logger.Logger) CallOption {
	return func(o *botOptions) {
		o.logger = logger
	}
}

func WithQueue(queue queue.Queue) CallOption {
	return func(o *botOptions) {
		o.queue = queue
	}
}

func WithTTLCache(ttlcache ttlcache.TTLCache) CallOption {
	return func(o *botOptions) {
		o.ttlcache = ttlcache
	}
}

func WithRueidis(rueidis rueidis.Client) CallOption {
	return func(o *botOptions) {
		o.queue = queue.NewRueidisQueue(rueidis)
		o.ttlcache = ttlcache.NewRueidisTTLCache(rueidis)
	}
}

func WithI18n(i18n *i18n.I18n) CallOption {
	return func(o *botOptions) {
		o.i18n = i18n
	}
}

type Bot struct {
	*tgbotapi.BotAPI

	opts       *botOptions
	logger     *logger.Logger
	dispatcher *Dispatcher
	tracker    *TaskTracker
	i18n       *i18n.I18n

	webhookServer     *http.Server
	webhookUpdateChan chan tgbotapi.Update
	updateChan        tgbotapi.UpdatesChannel
	webhookStarted    bool

	alreadyStopped bool

	puller *channelx.Puller[tgbotapi.Update]
}

func NewBot(callOpts ...CallOption) (*Bot, error) {
	opts := &botOptions{
		queue:    queue.NewInMemoryQueue(),
		ttlcache: ttlcache.NewInMemoryTTLCache(),
	}

	for _, callOpt := range callOpts {
		callOpt(opts)
	}

	if opts.token == "" {
		return nil, errors.New("must supply a valid telegram bot token in configs or environment variable")
	}

	if opts.logger == nil {
		defaultLogger, err := logger.NewLogger(logger.WithLevel(zapcore.InfoLevel), logger.WithAppName("dogbot"), logger.WithNamespace("message-bot-dogv"))
		if err != nil {
			return nil, err
		}

		opts.logger = defaultLogger
	}
	if opts.i18n == nil {
		defaultI18n, err := locales.NewI18n()
		if err != nil {
			return nil, err
		}

		opts.i18n = defaultI18n
	}
	if opts.tracker == nil {
		if opts.dispatcher != nil {
			opts.tracker = opts.dispatcher.tracker
		} else {
			opts.tracker = NewTaskTracker(opts.logger)
		}
	}
	if opts.dispatcher == nil {
		opts.dispatcher = NewDispatcher(opts.logger, opts.tracker)
	}

	var err error
	var b *tgbotapi.BotAPI

	if opts.apiEndpoint != "" {
		b, err = tgbotapi.NewBotAPIWithAPIEndpoint(opts.token, opts.apiEndpoint+"/bot%s/%s")
	} else {
		b, err = tgbotapi.NewBotAPI(opts.token)
	}
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		BotAPI:     b,
		opts:       opts,
		logger:     opts.logger,
		dispatcher: opts.dispatcher,
		tracker:    opts.tracker,
		i18n:       opts.i18n,
	}

	bot.puller = channelx.NewPuller[tgbotapi.Update]().
		WithHandler(func(update tgbotapi.Update) {
			bot.dispatcher.Dispatch(bot.Bot(), bot.i18n, update)
		}).
		WithPanicHandler(func(panicValues *panics.Recovered) {
			bot.logger.Error("panic occurred", zap.Any("panic", panicValues))
		})

	// init webhook server and set webhook
	if bot.opts.webhookURL != "" {
		parsed, err := url.Parse(bot.opts.webhookURL)
		if err != nil {
			return nil, err
		}

		bot.webhookUpdateChan = make(chan tgbotapi.Update, b.Buffer)
		bot.webhookServer = newWebhookServer(parsed.Path, bot.opts.webhookPort, bot.webhookUpdateChan)
		bot.puller = bot.puller.WithNotifyChannel(bot.webhookUpdateChan)

		err = setWebhook(bot.opts.webhookURL, bot.BotAPI)
		if err != nil {
			return nil, err
		}
	} else {
		u := tgbotapi.NewUpdate(0)
		u.Timeout = 60
		bot.updateChan = b.GetUpdatesChan(u)
		bot.puller = bot.puller.WithNotifyChannel(bot.updateChan)
	}

	// obtain webhook info
	webhookInfo, err := bot.GetWebhookInfo()
	if err != nil {
		return nil, err
	}
	if bot.opts.webhookURL != "" && webhookInfo.IsSet() && webhookInfo.LastErrorDate != 0 {
		bot.logger.Error("webhook callback failed", zap.String("last_message", webhookInfo.LastErrorMessage))
	}

	// cancel the previous set webhook
	if bot.opts.webhookURL == "" && webhookInfo.IsSet() {
		_, err := bot.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true})
		if err != nil {
			return nil, err
		}
	}

	return bot, nil
}

// Stop shuts the update source down, cancels every in-flight task, and
// waits for them to settle within ctx.
func (b *Bot) Stop(ctx context.Context) error {
	if b.alreadyStopped {
		return nil
	}

	b.alreadyStopped = true

	if b.opts.webhookURL != "" {
		closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := b.webhookServer.Shutdown(closeCtx); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to shutdown webhook server: %w", err)
		}

		close(b.webhookUpdateChan)
	} else {
		b.StopReceivingUpdates()
	}

	_ = b.puller.StopPull(ctx)

	if b.tracker != nil {
		cancelled := b.tracker.CancelAll()
		if cancelled > 0 {
			b.logger.Info("cancelled in-flight tasks for shutdown", zap.Int("count", cancelled))
		}

		if err := b.tracker.Wait(ctx); err != nil {
			return fmt.Errorf("failed to wait for in-flight tasks to settle: %w", err)
		}
	}

	return nil
}

func (b *Bot) startPullUpdates() {
	b.puller.StartPull(context.Background())
}

func (b *Bot) Start(ctx context.Context) error {
	return fo.Invoke0(ctx, func() error {
		if b.opts.webhookURL != "" && b.webhookServer != nil {
			l, err := net.Listen("tcp", b.webhookServer.Addr)
			if err != nil {
				return err
			}

			go func() {
				err := b.webhookServer.Serve(l)
				if err != nil && err != http.ErrServerClosed {
					b.logger.Fatal("", zap.Error(err))
				}
			}()

			b.logger.Info("Telegram Bot webhook server is listening", zap.String("addr", b.webhookServer.Addr))
		}

		b.startPullUpdates()
		b.webhookStarted = true

		return nil
	})
}

// OnCommand delegates to the dispatcher, kept as a convenience for small
// bots that never touch the dispatcher directly.
func (b *Bot) OnCommand(cmd string, commandHelp func(c *Context) string, h Handler) {
	b.dispatcher.OnCommand(cmd, commandHelp, h)
}

func (b *Bot) OnCommandGroup(groupName func(*Context) string, group []Command) {
	b.dispatcher.OnCommandGroup(groupName, group)
}

func (b *Bot) Dispatcher() *Dispatcher {
	return b.dispatcher
}

func (b *Bot) TaskTracker() *TaskTracker {
	return b.tracker
}

// Bootstrap starts the bot and blocks until SIGINT or SIGTERM, then shuts
// down with a grace period for in-flight tasks.
func (b *Bot) Bootstrap(ctx context.Context) error {
	err := b.Start(ctx)
	if err != nil {
		return err
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	<-signalChan

	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return b.Stop(stopCtx)
}

func (b *Bot) Bot() *BotAPI {
	return &BotAPI{
		BotAPI:   b.BotAPI,
		logger:   b.logger,
		queue:    b.opts.queue,
		ttlcache: b.opts.ttlcache,
	}
}

type BotAPI struct {
	*tgbotapi.BotAPI

	logger   *logger.Logger
	queue    queue.Queue
	ttlcache ttlcache.TTLCache
}

func (b *BotAPI) MaySend(chattable tgbotapi.Chattable) *tgbotapi.Message {
	may := fo.NewMay[tgbotapi.Message]().Use(func(err error, messageArgs ...any) {
		b.logger.Error("failed to send message to telegram", zap.String("message", xo.SprintJSON(chattable)), zap.Error(err))
	})

	return lo.ToPtr(may.Invoke(b.Send(chattable)))
}

func (b *BotAPI) MayRequest(chattable tgbotapi.Chattable) *tgbotapi.APIResponse {
	may := fo.NewMay[*tgbotapi.APIResponse]().Use(func(err error, messageArgs ...any) {
		b.logger.Error("failed to send request to telegram", zap.String("request", xo.SprintJSON(chattable)), zap.Error(err))
	})

	return may.Invoke(b.Request(chattable))
}

// maxMessageLength is Telegram's hard cap on message text.
const maxMessageLength = 4096

// SplitMessage breaks text into chunks Telegram will accept, preferring to
// split on line boundaries.
func SplitMessage(text string) []string {
	runes := []rune(text)
	if len(runes) <= maxMessageLength {
		return []string{text}
	}

	chunks := make([]string, 0, len(runes)/maxMessageLength+1)

	for len(runes) > 0 {
		if len(runes) <= maxMessageLength {
			chunks = append(chunks, string(runes))
			break
		}

		cut := maxMessageLength

		for i := maxMessageLength - 1; i > maxMessageLength/2; i-- {
			if runes[i] == '\n' {
				cut = i + 1
				break
			}
		}

		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut:]
	}

	return chunks
}

// SendLongMessage sends text to chatID, chunking when it exceeds Telegram's
// message length cap. Retry-after responses from Telegram are honored once
// per chunk.
func (b *BotAPI) SendLongMessage(chatID int64, text string) {
	for _, chunk := range SplitMessage(text) {
		_, err := b.Send(tgbotapi.NewMessage(chatID, chunk))
		if err == nil {
			continue
		}

		if seconds, ok := b.IsRetryAfterErr(err); ok {
			b.logger.Warn("hit telegram flood control, backing off",
				zap.Int64("chat_id", chatID),
				zap.Int("retry_after_seconds", seconds),
			)
			time.Sleep(time.Duration(seconds) * time.Second)

			b.MaySend(tgbotapi.NewMessage(chatID, chunk))

			continue
		}

		b.logger.Error("failed to send message chunk to telegram", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// IsRetryAfterErr reports whether err is Telegram flood control, and if so,
// how many seconds Telegram asked us to wait.
func (b *BotAPI) IsRetryAfterErr(err error) (int, bool) {
	if err == nil {
		return 0, false
	}

	var tgbotapiErr *tgbotapi.Error
	if !errors.As(err, &tgbotapiErr) {
		return 0, false
	}
	if tgbotapiErr.ResponseParameters.RetryAfter > 0 {
		return tgbotapiErr.ResponseParameters.RetryAfter, true
	}

	return 0, false
}

func (b *BotAPI) IsCannotInitiateChatWithUserErr(err error) bool {
	if err == nil {
		return false
	}

	tgbotapiErr, ok := err.(*tgbotapi.Error)
	if !ok {
		return false
	}

	return tgbotapiErr.Code == 403 && tgbotapiErr.Message == "Forbidden: bot can't initiate conversation with a user"
}

func (b *BotAPI) IsBotWasBlockedByTheUserErr(err error) bool {
	if err == nil {
		return false
	}

	tgbotapiErr, ok := err.(*tgbotapi.Error)
	if !ok {
		return false
	}

	return tgbotapiErr.Code == 403 && tgbotapiErr.Message == "Forbidden: bot was blocked by the user"
}

func (b *BotAPI) IsBotAdministrator(chatID int64) (bool, error) {
	botMember, err := b.GetChatMember(tgbotapi.GetChatMemberConfig{ChatConfigWithUser: tgbotapi.ChatConfigWithUser{ChatID: chatID, UserID: b.Self.ID}})
	if err != nil {
		return false, err
	}
	if botMember.Status == string(MemberStatusAdministrator) {
		return true, err
	}

	return false, err
}

func (b *BotAPI) IsUserMemberStatus(chatID int64, userID int64, status []MemberStatus) (bool, error) {
	member, err := b.GetChatMember(tgbotapi.GetChatMemberConfig{ChatConfigWithUser: tgbotapi.ChatConfigWithUser{ChatID: chatID, UserID: userID}})
	if err != nil {
		return false, err
	}
	if lo.Contains(status, MemberStatus(member.Status)) {
		return true, nil
	}

	return false, nil
}

func (b *BotAPI) IsGroupAnonymousBot(user *tgbotapi.User) bool {
	if user == nil {
		return false
	}

	return user.ID == 1087968824 && user.IsBot && user.UserName == "GroupAnonymousBot" && user.FirstName == "Group"
}

func (b *BotAPI) PushOneDeleteLaterMessage(forUserID int64, chatID int64, messageID int) error {
	if forUserID == 0 || chatID == 0 || messageID == 0 {
		return nil
	}

	err := b.queue.Push(context.Background(), redis.SessionDeleteLaterMessagesForActor1.Format(forUserID), fmt.Sprintf("%d;%d", chatID, messageID))
	if err != nil {
		b.logger.Error("failed to push one delete later message for user",
			zap.Error(err),
			zap.Int64("from_id", forUserID),
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", messageID),
		)

		return err
	}

	b.logger.Debug("pushed one delete later message for user",
		zap.Int64("from_id", forUserID),
		zap.Int64("chat_id", chatID),
		zap.Int("message_id", messageID),
	)

	return nil
}

func (b *BotAPI) DeleteAllDeleteLaterMessages(forUserID int64) error {
	if forUserID == 0 {
		return nil
	}

	elems, err := b.queue.PopAll(context.Background(), redis.SessionDeleteLaterMessagesForActor1.Format(forUserID))
	if err != nil {
		return err
	}

	for _, v := range elems {
		pairs := strings.Split(v, ";")
		if len(pairs) != 2 {
			continue
		}

		chatID, err := strconv.ParseInt(pairs[0], 10, 64)
		if err != nil {
			continue
		}

		messageID, err := strconv.Atoi(pairs[1])
		if err != nil {
			continue
		}
		if chatID == 0 || messageID == 0 {
			continue
		}

		b.MayRequest(tgbotapi.NewDeleteMessage(chatID, messageID))
		b.logger.Debug("deleted one delete later message for user",
			zap.Int64("from_id", forUserID),
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", messageID),
		)
	}

	return nil
}
