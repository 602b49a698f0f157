package chat_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gashapp/gash-backend/internal/app"
	"github.com/gashapp/gash-backend/internal/cache"
	"github.com/gashapp/gash-backend/internal/config"
	"github.com/gashapp/gash-backend/internal/db"
	"github.com/gashapp/gash-backend/internal/events"
	pb "github.com/gashapp/gash-backend/internal/proto/chat"
	"github.com/gashapp/gash-backend/internal/service/chat"
	"github.com/gashapp/gash-backend/internal/textservice"
)

// fakeTextService is an httptest stand-in for the moderation/translation
// API: content containing "badword" is unsafe, translations are prefixed
// with the target language.
func fakeTextService(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/moderate":
			var req struct {
				Text string `json:"text"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			json.NewEncoder(w).Encode(map[string]bool{"unsafe": strings.Contains(req.Text, "badword")})
		case "/v1/translate":
			var req struct {
				Text           string `json:"text"`
				TargetLanguage string `json:"target_language"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			json.NewEncoder(w).Encode(map[string]string{
				"translated_text": fmt.Sprintf("[%s] %s", req.TargetLanguage, req.Text),
			})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

type testEnv struct {
	svc     *chat.Service
	db      *gorm.DB
	mr      *miniredis.Miniredis
	matchID string
}

// setupService wires an in-memory SQLite DB, miniredis, the fake text
// service, and the minimal fixture into a Chat service instance. The
// returned matchID is the fixture's elena ↔ marcus conversation.
func setupService(t *testing.T, textURL string) testEnv {
	t.Helper()

	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	dbase, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{
		NowFunc:                func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	sqlDB, err := dbase.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(dbase))
	require.NoError(t, db.SeedMinimalTestData(dbase))

	var match db.Match
	require.NoError(t, dbase.First(&match).Error)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	cfg.TextService.BaseURL = textURL
	cfg.TextService.Timeout = 2 * time.Second

	redisCache := cache.NewRedisCache(cfg)
	bus := events.NewRedisBus(redisCache.Client)
	text := textservice.New(cfg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	appCtx := app.New(dbase, redisCache, bus, text, logger)
	return testEnv{
		svc:     chat.NewChatService(appCtx),
		db:      dbase,
		mr:      mr,
		matchID: match.ID,
	}
}

// fakeStream implements grpc.ServerStreamingServer[pb.ChatMessage] for
// driving Subscribe without a live gRPC connection.
type fakeStream struct {
	grpc.ServerStream
	ctx context.Context
	out chan *pb.ChatMessage
}

func (f *fakeStream) Context() context.Context { return f.ctx }

func (f *fakeStream) Send(m *pb.ChatMessage) error {
	f.out <- m
	return nil
}

// TestSendMessageAndList sends a message and reads it back via the history
// listing.
func TestSendMessageAndList(t *testing.T) {
	ctx := context.Background()
	env := setupService(t, fakeTextService(t).URL)

	sent, err := env.svc.SendMessage(ctx, &pb.SendMessageRequest{
		MatchId:  env.matchID,
		SenderId: "elena",
		Content:  "Hi Marcus!",
	})
	require.NoError(t, err)
	require.NotNil(t, sent.Message)
	assert.NotEmpty(t, sent.Message.Id)
	assert.NotZero(t, sent.Message.Seq)
	assert.Equal(t, "text", sent.Message.Kind) // default kind

	list, err := env.svc.ListMessages(ctx, &pb.ListMessagesRequest{MatchId: env.matchID})
	require.NoError(t, err)
	require.Len(t, list.Messages, 1)
	assert.Equal(t, sent.Message.Id, list.Messages[0].Id)
	assert.Equal(t, "Hi Marcus!", list.Messages[0].Content)
}

// TestSendMessageModerationRejects verifies unsafe content is rejected and
// nothing is persisted.
func TestSendMessageModerationRejects(t *testing.T) {
	ctx := context.Background()
	env := setupService(t, fakeTextService(t).URL)

	_, err := env.svc.SendMessage(ctx, &pb.SendMessageRequest{
		MatchId:  env.matchID,
		SenderId: "elena",
		Content:  "this contains a badword",
	})
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	var count int64
	require.NoError(t, env.db.Model(&db.Message{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

// TestSendMessageModerationOutage verifies the fail-closed policy: if the
// moderation adapter cannot answer, the send is rejected.
func TestSendMessageModerationOutage(t *testing.T) {
	ctx := context.Background()
	env := setupService(t, "http://127.0.0.1:1")

	_, err := env.svc.SendMessage(ctx, &pb.SendMessageRequest{
		MatchId:  env.matchID,
		SenderId: "elena",
		Content:  "perfectly fine text",
	})
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	var count int64
	require.NoError(t, env.db.Model(&db.Message{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

// TestSendMessageValidation covers participant and content checks.
func TestSendMessageValidation(t *testing.T) {
	ctx := context.Background()
	env := setupService(t, fakeTextService(t).URL)

	// priya is not part of the elena ↔ marcus match
	_, err := env.svc.SendMessage(ctx, &pb.SendMessageRequest{
		MatchId:  env.matchID,
		SenderId: "priya",
		Content:  "let me in",
	})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	// blank content
	_, err = env.svc.SendMessage(ctx, &pb.SendMessageRequest{
		MatchId:  env.matchID,
		SenderId: "elena",
		Content:  "   ",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	// unknown kind
	_, err = env.svc.SendMessage(ctx, &pb.SendMessageRequest{
		MatchId:  env.matchID,
		SenderId: "elena",
		Content:  "hello",
		Kind:     "hologram",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	// unknown match
	_, err = env.svc.SendMessage(ctx, &pb.SendMessageRequest{
		MatchId:  "missing",
		SenderId: "elena",
		Content:  "hello",
	})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

// TestListMessagesOrder sends several messages and checks ascending order
// plus pagination.
func TestListMessagesOrder(t *testing.T) {
	ctx := context.Background()
	env := setupService(t, fakeTextService(t).URL)

	for i := 1; i <= 4; i++ {
		_, err := env.svc.SendMessage(ctx, &pb.SendMessageRequest{
			MatchId:  env.matchID,
			SenderId: "elena",
			Content:  fmt.Sprintf("msg %d", i),
		})
		require.NoError(t, err)
	}

	first, err := env.svc.ListMessages(ctx, &pb.ListMessagesRequest{MatchId: env.matchID, PageSize: 3})
	require.NoError(t, err)
	require.Len(t, first.Messages, 3)
	assert.NotEmpty(t, first.NextPaginationToken)
	assert.Equal(t, "msg 1", first.Messages[0].Content)

	rest, err := env.svc.ListMessages(ctx, &pb.ListMessagesRequest{
		MatchId:         env.matchID,
		PageSize:        3,
		PaginationToken: first.NextPaginationToken,
	})
	require.NoError(t, err)
	require.Len(t, rest.Messages, 1)
	assert.Empty(t, rest.NextPaginationToken)
	assert.Equal(t, "msg 4", rest.Messages[0].Content)
}

// TestSubscribeReceivesSentMessage runs a live subscription and checks a
// sent message arrives on the stream.
func TestSubscribeReceivesSentMessage(t *testing.T) {
	env := setupService(t, fakeTextService(t).URL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream := &fakeStream{ctx: ctx, out: make(chan *pb.ChatMessage, 8)}
	done := make(chan error, 1)
	go func() {
		done <- env.svc.Subscribe(&pb.SubscribeRequest{MatchId: env.matchID}, stream)
	}()

	// give the subscription a moment to register
	time.Sleep(200 * time.Millisecond)

	sent, err := env.svc.SendMessage(context.Background(), &pb.SendMessageRequest{
		MatchId:  env.matchID,
		SenderId: "marcus",
		Content:  "are you there?",
	})
	require.NoError(t, err)

	select {
	case got := <-stream.out:
		assert.Equal(t, sent.Message.Id, got.Id)
		assert.Equal(t, "are you there?", got.Content)
		assert.Equal(t, sent.Message.Seq, got.Seq)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for streamed message")
	}

	// a plain disconnect ends the stream without an error
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Subscribe did not return after cancel")
	}
}

// TestSubscribeUnknownMatch rejects subscriptions to conversations that do
// not exist.
func TestSubscribeUnknownMatch(t *testing.T) {
	env := setupService(t, fakeTextService(t).URL)

	stream := &fakeStream{ctx: context.Background(), out: make(chan *pb.ChatMessage, 1)}
	err := env.svc.Subscribe(&pb.SubscribeRequest{MatchId: "missing"}, stream)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

// TestTranslateMessage translates a stored message on demand and serves
// repeats from the cache.
func TestTranslateMessage(t *testing.T) {
	ctx := context.Background()
	srv := fakeTextService(t)
	env := setupService(t, srv.URL)

	sent, err := env.svc.SendMessage(ctx, &pb.SendMessageRequest{
		MatchId:  env.matchID,
		SenderId: "elena",
		Content:  "good morning",
	})
	require.NoError(t, err)

	out, err := env.svc.TranslateMessage(ctx, &pb.TranslateMessageRequest{
		MessageId:      sent.Message.Id,
		TargetLanguage: "es",
	})
	require.NoError(t, err)
	assert.Equal(t, "[es] good morning", out.TranslatedText)

	// second call is served from Redis even with the adapter gone
	srv.Close()
	out, err = env.svc.TranslateMessage(ctx, &pb.TranslateMessageRequest{
		MessageId:      sent.Message.Id,
		TargetLanguage: "es",
	})
	require.NoError(t, err)
	assert.Equal(t, "[es] good morning", out.TranslatedText)
}

// TestTranslateMessageFailOpen falls back to the original content when the
// adapter is unreachable.
func TestTranslateMessageFailOpen(t *testing.T) {
	ctx := context.Background()
	srv := fakeTextService(t)
	env := setupService(t, srv.URL)

	sent, err := env.svc.SendMessage(ctx, &pb.SendMessageRequest{
		MatchId:  env.matchID,
		SenderId: "elena",
		Content:  "good morning",
	})
	require.NoError(t, err)

	srv.Close()

	out, err := env.svc.TranslateMessage(ctx, &pb.TranslateMessageRequest{
		MessageId:      sent.Message.Id,
		TargetLanguage: "fr",
	})
	require.NoError(t, err)
	assert.Equal(t, "good morning", out.TranslatedText)
}

// TestModerateContent exercises the standalone moderation endpoint,
// including the fail-closed answer during an outage.
func TestModerateContent(t *testing.T) {
	ctx := context.Background()
	env := setupService(t, fakeTextService(t).URL)

	resp, err := env.svc.ModerateContent(ctx, &pb.ModerateContentRequest{Content: "hello"})
	require.NoError(t, err)
	assert.False(t, resp.Unsafe)

	resp, err = env.svc.ModerateContent(ctx, &pb.ModerateContentRequest{Content: "a badword here"})
	require.NoError(t, err)
	assert.True(t, resp.Unsafe)

	down := setupService(t, "http://127.0.0.1:1")
	resp, err = down.svc.ModerateContent(ctx, &pb.ModerateContentRequest{Content: "hello"})
	require.NoError(t, err)
	assert.True(t, resp.Unsafe)
}
