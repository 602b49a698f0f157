package account

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gashapp/gash-backend/internal/app"
	"github.com/gashapp/gash-backend/internal/db"
	svcErr "github.com/gashapp/gash-backend/internal/errors"
	pb "github.com/gashapp/gash-backend/internal/proto/account"
	"github.com/gashapp/gash-backend/internal/repository"
)

const siteConfigTTL = 5 * time.Minute

// Service implements the Account gRPC API: profile reads and writes,
// premium upgrades, site configuration, and the notification inbox.
type Service struct {
	appCtx           *app.AppContext
	profileRepo      *repository.ProfileRepository
	notificationRepo *repository.NotificationRepository
	siteConfigRepo   *repository.SiteConfigRepository

	pb.UnimplementedAccountServiceServer
}

// NewAccountService creates a new Account service with dependencies from AppContext.
func NewAccountService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:           appCtx,
		profileRepo:      repository.NewProfileRepository(appCtx.DB),
		notificationRepo: repository.NewNotificationRepository(appCtx.DB),
		siteConfigRepo:   repository.NewSiteConfigRepository(appCtx.DB),
	}
}

// GetProfile returns one profile by user id.
func (s *Service) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {
	if req.GetUserId() == "" {
		return nil, svcErr.InvalidArgument("user_id is required")
	}

	p, err := s.profileRepo.Get(ctx, req.GetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.GetProfileResponse{Profile: toProto(p)}, nil
}

// UpdateProfile upserts the caller's profile row.
//
// Behavior:
//   - Server-owned flags (verified, premium) in the request are ignored;
//     they survive from the stored row.
//   - profile_completion only ever rises. A request carrying a lower value
//     than the stored one is rejected so a stale client cannot walk back
//     onboarding progress.
func (s *Service) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.UpdateProfileResponse, error) {
	in := req.GetProfile()
	if in.GetId() == "" {
		return nil, svcErr.InvalidArgument("profile.id is required")
	}
	if in.GetUsername() == "" {
		return nil, svcErr.InvalidArgument("profile.username is required")
	}
	if in.GetProfileCompletion() > 100 {
		return nil, svcErr.InvalidArgument("profile.profile_completion must be 0-100")
	}

	s.appCtx.Logger.Debug("UpdateProfile called", "user", in.GetId())

	row := db.Profile{
		ID:                in.GetId(),
		FirstName:         in.GetFirstName(),
		LastName:          in.GetLastName(),
		Username:          in.GetUsername(),
		BirthDate:         in.GetBirthDate(),
		Gender:            in.GetGender(),
		Location:          in.GetLocation(),
		Country:           in.GetCountry(),
		Occupation:        in.GetOccupation(),
		EducationLevel:    in.GetEducationLevel(),
		Bio:               in.GetBio(),
		Languages:         in.GetLanguages(),
		ProfileCompletion: in.GetProfileCompletion(),
	}
	if err := s.profileRepo.Upsert(ctx, &row); err != nil {
		return nil, svcErr.Map(err)
	}

	stored, err := s.profileRepo.Get(ctx, row.ID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.UpdateProfileResponse{Profile: toProto(stored)}, nil
}

// UpgradeToPremium flips the premium flag for one user. The operation is
// idempotent; upgrading an already-premium user is a no-op success.
func (s *Service) UpgradeToPremium(ctx context.Context, req *pb.UpgradeToPremiumRequest) (*pb.UpgradeToPremiumResponse, error) {
	if req.GetUserId() == "" {
		return nil, svcErr.InvalidArgument("user_id is required")
	}

	s.appCtx.Logger.Info("premium upgrade", "user", req.GetUserId())

	p, err := s.profileRepo.SetPremium(ctx, req.GetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.UpgradeToPremiumResponse{Profile: toProto(p)}, nil
}

// GetSiteConfig returns the CMS-managed landing configuration plus its
// active custom sections. The assembled response is cached in Redis for a
// few minutes since the row changes rarely and every client asks for it on
// startup. A missing row yields built-in defaults rather than an error.
func (s *Service) GetSiteConfig(ctx context.Context, _ *pb.GetSiteConfigRequest) (*pb.GetSiteConfigResponse, error) {
	key := s.appCtx.RedisCache.KeyForSiteConfig()
	if cached, err := s.appCtx.RedisCache.Get(ctx, key); err == nil && cached != "" {
		var cfg pb.SiteConfig
		if err := json.Unmarshal([]byte(cached), &cfg); err != nil {
			s.appCtx.Logger.Warn("discarding undecodable cached site config", "err", err)
		} else {
			return &pb.GetSiteConfigResponse{Config: &cfg}, nil
		}
	}

	row, sections, err := s.siteConfigRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, svcErr.Map(err)
		}
		row = defaultSiteConfig()
	}

	cfg := &pb.SiteConfig{
		HeroTitle:    row.HeroTitle,
		HeroSubtitle: row.HeroSubtitle,
		HeroImage:    row.HeroImage,
		ShowAds:      row.ShowAds,
		AdContent:    row.AdContent,
		AdImage:      row.AdImage,
	}
	for _, sec := range sections {
		cfg.CustomSections = append(cfg.CustomSections, &pb.CustomSection{
			Id:     sec.ID,
			Page:   sec.Page,
			Title:  sec.Title,
			Body:   sec.Body,
			Image:  sec.Image,
			Active: sec.Active,
		})
	}

	if raw, err := json.Marshal(cfg); err == nil {
		_ = s.appCtx.RedisCache.Set(ctx, key, string(raw), siteConfigTTL)
	}

	return &pb.GetSiteConfigResponse{Config: cfg}, nil
}

// ListNotifications returns the user's notifications, newest first.
func (s *Service) ListNotifications(ctx context.Context, req *pb.ListNotificationsRequest) (*pb.ListNotificationsResponse, error) {
	if req.GetUserId() == "" {
		return nil, svcErr.InvalidArgument("user_id is required")
	}

	notes, err := s.notificationRepo.ListForUser(ctx, req.GetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListNotificationsResponse{}
	for _, n := range notes {
		out := &pb.Notification{
			Id:          n.ID,
			UserId:      n.UserID,
			Type:        n.Type,
			Content:     n.Content,
			Read:        n.Read,
			CreatedAtMs: n.CreatedAt.UnixMilli(),
		}
		if n.MatchID != nil {
			out.MatchId = *n.MatchID
		}
		resp.Notifications = append(resp.Notifications, out)
	}
	return resp, nil
}

// MarkNotificationRead marks one notification as read.
func (s *Service) MarkNotificationRead(ctx context.Context, req *pb.MarkNotificationReadRequest) (*pb.MarkNotificationReadResponse, error) {
	if req.GetNotificationId() == "" {
		return nil, svcErr.InvalidArgument("notification_id is required")
	}

	if err := s.notificationRepo.MarkRead(ctx, req.GetNotificationId()); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.MarkNotificationReadResponse{}, nil
}

// defaultSiteConfig is served until an admin writes the config row.
func defaultSiteConfig() db.SiteConfig {
	return db.SiteConfig{
		HeroTitle:    "Beyond Borders, Beyond Expectations",
		HeroSubtitle: "Meet verified singles from around the world",
		ShowAds:      false,
	}
}

func toProto(p db.Profile) *pb.Profile {
	return &pb.Profile{
		Id:                p.ID,
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		Username:          p.Username,
		BirthDate:         p.BirthDate,
		Gender:            p.Gender,
		Location:          p.Location,
		Country:           p.Country,
		Occupation:        p.Occupation,
		EducationLevel:    p.EducationLevel,
		Bio:               p.Bio,
		Languages:         p.Languages,
		Verified:          p.Verified,
		IsPremium:         p.IsPremium,
		ProfileCompletion: p.ProfileCompletion,
		CreatedAtMs:       p.CreatedAt.UnixMilli(),
	}
}
