package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"google.golang.org/grpc"

	"github.com/gashapp/gash-backend/internal/app"
	"github.com/gashapp/gash-backend/internal/db"
	svcErr "github.com/gashapp/gash-backend/internal/errors"
	"github.com/gashapp/gash-backend/internal/events"
	pb "github.com/gashapp/gash-backend/internal/proto/chat"
	"github.com/gashapp/gash-backend/internal/repository"
)

const (
	historyPageSize = 50
	translationTTL  = 15 * time.Minute
)

// Service implements the Chat gRPC API: the conversation store scoped to
// matches, with moderation before persistence and live fan-out through the
// event bus.
type Service struct {
	appCtx      *app.AppContext
	matchRepo   *repository.MatchRepository
	messageRepo *repository.MessageRepository

	pb.UnimplementedChatServiceServer
}

// NewChatService creates a new Chat service with dependencies from AppContext.
func NewChatService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:      appCtx,
		matchRepo:   repository.NewMatchRepository(appCtx.DB),
		messageRepo: repository.NewMessageRepository(appCtx.DB),
	}
}

// SendMessage appends one message to a match's conversation.
//
// Behavior:
//   - The sender must be one of the match's two users.
//   - Content runs through the moderation adapter before anything is
//     written; unsafe content — or an adapter failure, by policy — rejects
//     the send with FailedPrecondition and persists nothing.
//   - The stored message (server-assigned seq and timestamp) is published to
//     the match topic after the write, so subscribers see it exactly as
//     ListMessages will return it.
//
// Example:
//
//	svc.SendMessage(ctx, &pb.SendMessageRequest{MatchId: id, SenderId: "elena", Content: "Hello!", Kind: "text"})
func (s *Service) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	s.appCtx.Logger.Debug(
		"SendMessage called",
		"match", req.GetMatchId(),
		"sender", req.GetSenderId(),
		"kind", req.GetKind(),
	)

	content := strings.TrimSpace(req.GetContent())
	if content == "" {
		return nil, svcErr.Map(svcErr.ErrEmptyContent)
	}

	kind := req.GetKind()
	if kind == "" {
		kind = repository.MessageKindText
	}
	switch kind {
	case repository.MessageKindText, repository.MessageKindVoice, repository.MessageKindImage:
	default:
		return nil, svcErr.Map(svcErr.ErrInvalidMessageKind)
	}

	match, err := s.matchRepo.GetByID(ctx, req.GetMatchId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if req.GetSenderId() != match.UserA && req.GetSenderId() != match.UserB {
		return nil, svcErr.Map(svcErr.ErrNotAParticipant)
	}

	// Moderation gate, fail-closed: an unreachable or misbehaving adapter
	// blocks the send rather than letting unmoderated content through.
	unsafe, err := s.appCtx.Text.Moderate(ctx, content)
	if err != nil {
		s.appCtx.Logger.Warn("moderation adapter failed, rejecting send", "match", match.ID, "err", err)
		return nil, svcErr.Map(fmt.Errorf("%w: %v", svcErr.ErrContentRejected, err))
	}
	if unsafe {
		return nil, svcErr.Map(svcErr.ErrContentRejected)
	}

	msg := db.Message{
		ID:       ulid.Make().String(),
		MatchID:  match.ID,
		SenderID: req.GetSenderId(),
		Kind:     kind,
		Content:  content,
	}
	if err := s.messageRepo.Append(ctx, &msg); err != nil {
		return nil, svcErr.Map(err)
	}

	s.fanOut(ctx, msg)

	return &pb.SendMessageResponse{Message: toProto(msg)}, nil
}

// fanOut publishes the stored message to the match topic. The message is
// already durable at this point; a publish failure only degrades liveness
// (subscribers catch up via ListMessages), so it is logged, not returned.
func (s *Service) fanOut(ctx context.Context, msg db.Message) {
	payload, err := events.EncodeInsert(events.MessagePayload{
		ID:        msg.ID,
		MatchID:   msg.MatchID,
		SenderID:  msg.SenderID,
		Kind:      msg.Kind,
		Content:   msg.Content,
		Seq:       msg.Seq,
		CreatedAt: msg.CreatedAt,
	})
	if err != nil {
		s.appCtx.Logger.Error("failed to encode message event", "message_id", msg.ID, "err", err)
		return
	}
	if err := s.appCtx.Bus.Publish(ctx, events.MatchTopic(msg.MatchID), payload); err != nil {
		s.appCtx.Logger.Error("failed to publish message event", "message_id", msg.ID, "err", err)
	}
}

// ListMessages returns the conversation history in ascending creation
// order, cursor-paged. The order is the server-assigned sequence and is
// stable across repeated calls.
func (s *Service) ListMessages(ctx context.Context, req *pb.ListMessagesRequest) (*pb.ListMessagesResponse, error) {
	s.appCtx.Logger.Debug("ListMessages called", "match", req.GetMatchId(), "token", req.GetPaginationToken())

	if _, err := s.matchRepo.GetByID(ctx, req.GetMatchId()); err != nil {
		return nil, svcErr.Map(err)
	}

	limit := int(req.GetPageSize())
	if limit <= 0 || limit > historyPageSize {
		limit = historyPageSize
	}

	msgs, nextToken, err := s.messageRepo.List(ctx, req.GetMatchId(), req.GetPaginationToken(), limit)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListMessagesResponse{NextPaginationToken: nextToken}
	for _, m := range msgs {
		resp.Messages = append(resp.Messages, toProto(m))
	}
	return resp, nil
}

// Subscribe streams newly appended messages for one match until the client
// goes away.
//
// Behavior:
//   - Delivery is at-least-once in creation order with no historical
//     backlog: clients call ListMessages first, then de-duplicate by
//     message id across the seam.
//   - The bus subscription is scoped to the stream context and released on
//     every exit path, including abrupt client disconnect.
func (s *Service) Subscribe(req *pb.SubscribeRequest, stream grpc.ServerStreamingServer[pb.ChatMessage]) error {
	ctx := stream.Context()

	s.appCtx.Logger.Debug("Subscribe called", "match", req.GetMatchId())

	if _, err := s.matchRepo.GetByID(ctx, req.GetMatchId()); err != nil {
		return svcErr.Map(err)
	}

	sub, err := s.appCtx.Bus.Subscribe(ctx, events.MatchTopic(req.GetMatchId()))
	if err != nil {
		return svcErr.Map(err)
	}
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			// a client going away is the normal end of a subscription,
			// not a server error
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return svcErr.Map(ctx.Err())
		case payload, ok := <-sub.C():
			if !ok {
				return nil
			}
			msg, err := events.DecodeMessage(payload)
			if err != nil {
				s.appCtx.Logger.Warn("dropping undecodable message event", "match", req.GetMatchId(), "err", err)
				continue
			}
			out := &pb.ChatMessage{
				Id:          msg.ID,
				MatchId:     msg.MatchID,
				SenderId:    msg.SenderID,
				Kind:        msg.Kind,
				Content:     msg.Content,
				Seq:         msg.Seq,
				CreatedAtMs: msg.CreatedAt.UnixMilli(),
			}
			if err := stream.Send(out); err != nil {
				return err
			}
		}
	}
}

// TranslateMessage renders one stored message in the target language.
//
// Behavior:
//   - Durable storage is never touched; the result is a view-layer value
//     cached in Redis for the session (15m TTL).
//   - Translation is best-effort: adapter failure falls back to the
//     original content rather than failing the call.
func (s *Service) TranslateMessage(ctx context.Context, req *pb.TranslateMessageRequest) (*pb.TranslateMessageResponse, error) {
	s.appCtx.Logger.Debug("TranslateMessage called", "message", req.GetMessageId(), "lang", req.GetTargetLanguage())

	if req.GetTargetLanguage() == "" {
		return nil, svcErr.InvalidArgument("target_language is required")
	}

	msg, err := s.messageRepo.GetByID(ctx, req.GetMessageId())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	key := s.appCtx.RedisCache.KeyForTranslation(msg.ID, req.GetTargetLanguage())
	if cached, _ := s.appCtx.RedisCache.Get(ctx, key); cached != "" {
		return &pb.TranslateMessageResponse{TranslatedText: cached}, nil
	}

	translated, err := s.appCtx.Text.Translate(ctx, msg.Content, req.GetTargetLanguage())
	if err != nil {
		// fail-open: translation is a convenience, not a safety gate
		s.appCtx.Logger.Warn("translation adapter failed, returning original", "message", msg.ID, "err", err)
		return &pb.TranslateMessageResponse{TranslatedText: msg.Content}, nil
	}

	_ = s.appCtx.RedisCache.Set(ctx, key, translated, translationTTL)

	return &pb.TranslateMessageResponse{TranslatedText: translated}, nil
}

// ModerateContent exposes the moderation check for client-side pre-checks.
// The same fail-closed policy applies: if the adapter cannot answer, the
// content is reported unsafe.
func (s *Service) ModerateContent(ctx context.Context, req *pb.ModerateContentRequest) (*pb.ModerateContentResponse, error) {
	unsafe, err := s.appCtx.Text.Moderate(ctx, req.GetContent())
	if err != nil {
		s.appCtx.Logger.Warn("moderation adapter failed, reporting unsafe", "err", err)
		return &pb.ModerateContentResponse{Unsafe: true}, nil
	}
	return &pb.ModerateContentResponse{Unsafe: unsafe}, nil
}

func toProto(m db.Message) *pb.ChatMessage {
	return &pb.ChatMessage{
		Id:          m.ID,
		MatchId:     m.MatchID,
		SenderId:    m.SenderID,
		Kind:        m.Kind,
		Content:     m.Content,
		Seq:         m.Seq,
		CreatedAtMs: m.CreatedAt.UnixMilli(),
	}
}
