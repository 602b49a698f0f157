package matching

import (
	"context"
	"strconv"
	"time"

	"github.com/gashapp/gash-backend/internal/app"
	"github.com/gashapp/gash-backend/internal/db"
	svcErr "github.com/gashapp/gash-backend/internal/errors"
	"github.com/gashapp/gash-backend/internal/events"
	pb "github.com/gashapp/gash-backend/internal/proto/matching"
	"github.com/gashapp/gash-backend/internal/repository"
)

const likersPageSize = 20

// Service implements the Matching gRPC API: the interest ledger plus the
// match engine. Each method corresponds to an endpoint in matching.proto.
type Service struct {
	appCtx           *app.AppContext
	likeRepo         *repository.LikeRepository
	matchRepo        *repository.MatchRepository
	notificationRepo *repository.NotificationRepository

	pb.UnimplementedMatchingServiceServer
}

// NewMatchingService creates a new Matching service with dependencies from
// AppContext.
func NewMatchingService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:           appCtx,
		likeRepo:         repository.NewLikeRepository(appCtx.DB),
		matchRepo:        repository.NewMatchRepository(appCtx.DB),
		notificationRepo: repository.NewNotificationRepository(appCtx.DB),
	}
}

// RecordInterest records one directed like and reports whether it completed
// a mutual pair.
//
// Behavior:
//   - Validates the pair (no self-likes) and the kind (like | super_like).
//   - Inserts the like; a repeat like for the same ordered pair fails with
//     AlreadyExists and writes nothing.
//   - Bumps the recipient's liked-you counter in Redis (1h TTL).
//   - If the reverse edge exists, materializes the match idempotently and
//     returns it; losing a race against the reciprocal call still returns
//     the single winning match row.
//
// Example:
//
//	svc.RecordInterest(ctx, &pb.RecordInterestRequest{ActorUserId: "elena", RecipientUserId: "marcus", Kind: "like"})
func (s *Service) RecordInterest(ctx context.Context, req *pb.RecordInterestRequest) (*pb.RecordInterestResponse, error) {
	s.appCtx.Logger.Debug(
		"RecordInterest called",
		"actor", req.GetActorUserId(),
		"recipient", req.GetRecipientUserId(),
		"kind", req.GetKind(),
	)

	actorID := req.GetActorUserId()
	recipientID := req.GetRecipientUserId()
	if actorID == "" || recipientID == "" {
		return nil, svcErr.InvalidArgument("actor_user_id and recipient_user_id are required")
	}
	if actorID == recipientID {
		return nil, svcErr.Map(svcErr.ErrSelfInterest)
	}

	kind := req.GetKind()
	if kind == "" {
		kind = repository.KindLike
	}
	if kind != repository.KindLike && kind != repository.KindSuperLike {
		return nil, svcErr.Map(svcErr.ErrInvalidKind)
	}

	if err := s.likeRepo.Create(ctx, actorID, recipientID, kind); err != nil {
		return nil, svcErr.Map(err)
	}

	// update cache: liked-you count +1 with TTL refresh. Only a warm
	// counter is bumped; creating the key here would seed it at 1 and
	// under-report recipients whose older likes are only in the DB.
	key := s.appCtx.RedisCache.KeyForLikeCount(recipientID)
	if n, err := s.appCtx.RedisCache.Client.Exists(ctx, key).Result(); err == nil && n > 0 {
		if _, err := s.appCtx.RedisCache.Incr(ctx, key); err == nil {
			_ = s.appCtx.RedisCache.Client.Expire(ctx, key, time.Hour).Err()
		}
	}

	reciprocal, err := s.likeRepo.Exists(ctx, recipientID, actorID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if !reciprocal {
		return &pb.RecordInterestResponse{IsNewMatch: false}, nil
	}

	match, created, err := s.matchRepo.CreateIfAbsent(ctx, actorID, recipientID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if created {
		s.announceMatch(ctx, match)
	}

	return &pb.RecordInterestResponse{
		IsNewMatch: created,
		Match:      toProto(match),
	}, nil
}

// announceMatch fans out the "new match" event to both participants and
// writes their notification rows. Delivery is at-least-once; the rows are
// deduplicated by match id downstream, so failures here are logged and the
// RPC still succeeds — the match itself is already durable.
func (s *Service) announceMatch(ctx context.Context, match db.Match) {
	if err := s.notificationRepo.CreateMatchNotifications(ctx, match); err != nil {
		s.appCtx.Logger.Error("failed to write match notifications", "match_id", match.ID, "err", err)
	}

	payload, err := events.EncodeInsert(events.MatchPayload{
		ID:        match.ID,
		UserA:     match.UserA,
		UserB:     match.UserB,
		CreatedAt: match.CreatedAt,
	})
	if err != nil {
		s.appCtx.Logger.Error("failed to encode match event", "match_id", match.ID, "err", err)
		return
	}
	for _, user := range []string{match.UserA, match.UserB} {
		if err := s.appCtx.Bus.Publish(ctx, events.UserMatchesTopic(user), payload); err != nil {
			s.appCtx.Logger.Error("failed to publish match event", "match_id", match.ID, "user", user, "err", err)
		}
	}
}

// ListMatches returns every match the user belongs to, newest first.
func (s *Service) ListMatches(ctx context.Context, req *pb.ListMatchesRequest) (*pb.ListMatchesResponse, error) {
	s.appCtx.Logger.Debug("ListMatches called", "user", req.GetUserId())

	if req.GetUserId() == "" {
		return nil, svcErr.InvalidArgument("user_id is required")
	}

	matches, err := s.matchRepo.ListForUser(ctx, req.GetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListMatchesResponse{}
	for _, m := range matches {
		resp.Matches = append(resp.Matches, toProto(m))
	}
	return resp, nil
}

// ListLikedYou returns users who liked the given recipient.
//
// Behavior:
//   - Newest likes first, cursor-paged via pagination_token.
//   - Returns actor id + kind + timestamp triples.
//
// Example:
//
//	svc.ListLikedYou(ctx, &pb.ListLikedYouRequest{RecipientUserId: "marcus"})
func (s *Service) ListLikedYou(ctx context.Context, req *pb.ListLikedYouRequest) (*pb.ListLikedYouResponse, error) {
	s.appCtx.Logger.Debug("ListLikedYou called", "recipient", req.GetRecipientUserId(), "token", req.GetPaginationToken())

	if req.GetRecipientUserId() == "" {
		return nil, svcErr.InvalidArgument("recipient_user_id is required")
	}

	likes, nextToken, err := s.likeRepo.GetLikers(ctx, req.GetRecipientUserId(), req.GetPaginationToken(), likersPageSize)
	if err != nil {
		s.appCtx.Logger.Error("GetLikers failed", "err", err)
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListLikedYouResponse{NextPaginationToken: nextToken}
	for _, l := range likes {
		resp.Likers = append(resp.Likers, &pb.Liker{
			ActorUserId: l.FromUser,
			Kind:        l.Kind,
			LikedAtMs:   l.CreatedAt.UnixMilli(),
		})
	}

	s.appCtx.Logger.Debug("ListLikedYou result", "liker_count", len(resp.Likers), "next_token", resp.GetNextPaginationToken())

	return resp, nil
}

// CountLikedYou returns how many users liked the recipient.
// Cache-first strategy:
//  1. Attempts to read from Redis (likes:count:userID).
//  2. If cache miss or parse error, falls back to DB.
//  3. On DB fetch, updates Redis with a 1h TTL.
func (s *Service) CountLikedYou(ctx context.Context, req *pb.CountLikedYouRequest) (*pb.CountLikedYouResponse, error) {
	s.appCtx.Logger.Debug("CountLikedYou called", "recipient", req.GetRecipientUserId())

	if req.GetRecipientUserId() == "" {
		return nil, svcErr.InvalidArgument("recipient_user_id is required")
	}

	key := s.appCtx.RedisCache.KeyForLikeCount(req.GetRecipientUserId())

	// try cache first
	if cached, _ := s.appCtx.RedisCache.Get(ctx, key); cached != "" {
		if n, err := strconv.ParseUint(cached, 10, 64); err == nil {
			// refresh TTL since this user is active
			_ = s.appCtx.RedisCache.Client.Expire(ctx, key, time.Hour).Err()
			return &pb.CountLikedYouResponse{Count: n}, nil
		}
	}

	// fallback: DB
	count, err := s.likeRepo.CountLikers(ctx, req.GetRecipientUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	// set + TTL refresh
	_ = s.appCtx.RedisCache.Set(ctx, key, strconv.FormatInt(count, 10), time.Hour)

	return &pb.CountLikedYouResponse{Count: uint64(count)}, nil
}

func toProto(m db.Match) *pb.Match {
	return &pb.Match{
		Id:          m.ID,
		UserA:       m.UserA,
		UserB:       m.UserB,
		CreatedAtMs: m.CreatedAt.UnixMilli(),
	}
}
