package serviceImp

import (
	"context"
	"errors"
	"net/mail"
	"regexp"
	"strings"

	"agrisense/entities"
	"agrisense/pkg/apperr"
	"agrisense/pkg/logger"
	"agrisense/pkg/profile/repository"
	"agrisense/pkg/profile/service"
)

// AnonymousAuthor labels posts from users without a profile name.
const AnonymousAuthor = "You"

var phoneRe = regexp.MustCompile(`^\+?[0-9 \-]{7,15}$`)

type profileSvc struct {
	r   repository.ProfileRepository
	log logger.Logger
}

func NewProfileService(r repository.ProfileRepository, log logger.Logger) service.ProfileService {
	return &profileSvc{r: r, log: logger.Component(log, "profile_service")}
}

func (s *profileSvc) Get(ctx context.Context, uid string) (*entities.Profile, error) {
	if uid == "" {
		return nil, apperr.New(apperr.Unauthenticated, "authentication required")
	}
	p, err := s.r.FindByUser(ctx, uid)
	if errors.Is(err, repository.ErrNotFound) {
		return &entities.Profile{UserID: uid}, nil
	}
	if err != nil {
		s.log.Errorf("load profile %s: %v", uid, err)
		return nil, apperr.Wrap(apperr.Internal, "", err)
	}
	return p, nil
}

func (s *profileSvc) Update(ctx context.Context, uid string, in service.UpdateProfileInput) (*entities.Profile, error) {
	if uid == "" {
		return nil, apperr.New(apperr.Unauthenticated, "authentication required")
	}
	p := &entities.Profile{
		UserID:        uid,
		Name:          strings.TrimSpace(in.Name),
		Phone:         strings.TrimSpace(in.Phone),
		Email:         strings.TrimSpace(in.Email),
		Location:      strings.TrimSpace(in.Location),
		FarmSizeAcres: in.FarmSizeAcres,
	}
	if p.Name == "" {
		return nil, apperr.New(apperr.InvalidArgument, "name is required")
	}
	if p.Email != "" {
		if _, err := mail.ParseAddress(p.Email); err != nil {
			return nil, apperr.New(apperr.InvalidArgument, "email is not valid")
		}
	}
	if p.Phone != "" && !phoneRe.MatchString(p.Phone) {
		return nil, apperr.New(apperr.InvalidArgument, "phone is not valid")
	}
	if p.FarmSizeAcres < 0 {
		return nil, apperr.New(apperr.InvalidArgument, "farm size must not be negative")
	}

	if err := s.r.Upsert(ctx, p); err != nil {
		s.log.Errorf("save profile %s: %v", uid, err)
		return nil, apperr.Wrap(apperr.Internal, "", err)
	}
	return s.Get(ctx, uid)
}

func (s *profileSvc) DisplayName(ctx context.Context, uid string) string {
	if uid == "" {
		return AnonymousAuthor
	}
	p, err := s.r.FindByUser(ctx, uid)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Warnf("load profile %s for display name: %v", uid, err)
		}
		return AnonymousAuthor
	}
	if p.Name == "" {
		return AnonymousAuthor
	}
	return p.Name
}
