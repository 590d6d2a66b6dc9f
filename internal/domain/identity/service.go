package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/doctorsportal/portal/internal/platform/store"
)

type Service struct {
	repo   UserRepository
	tokens TokenIssuer
}

func NewService(repo UserRepository, tokens TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// UpsertProfile stores the provided profile fields for email and issues a
// credential for it. Signing in is the same call as updating a profile.
func (s *Service) UpsertProfile(ctx context.Context, email string, p ProfileUpdate) (*UpsertResult, error) {
	res, err := s.repo.UpsertProfile(ctx, email, p)
	if err != nil {
		return nil, err
	}
	token, err := s.tokens.Issue(email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &UpsertResult{Result: res, Token: token}, nil
}

// PromoteAdmin grants the admin role. Unknown emails yield store.ErrNotFound
// rather than a silent no-op.
func (s *Service) PromoteAdmin(ctx context.Context, email string) (*store.UpdateResult, error) {
	res, err := s.repo.SetRole(ctx, email, RoleAdmin)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, store.ErrNotFound
	}
	return res, nil
}

func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, email string) (*store.DeleteResult, error) {
	return s.repo.DeleteByEmail(ctx, email)
}

// IsAdmin implements auth.AdminChecker. Unknown emails are not admins.
func (s *Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.Role == RoleAdmin, nil
}
