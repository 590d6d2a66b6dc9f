package roster

import (
	"context"
	"strings"

	"github.com/doctorsportal/portal/internal/platform/store"
)

type Service struct {
	repo DoctorRepository
}

func NewService(repo DoctorRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(ctx context.Context, d *Doctor) (*store.InsertResult, error) {
	d.ID = ""
	d.Email = strings.TrimSpace(d.Email)
	return s.repo.Insert(ctx, d)
}

func (s *Service) List(ctx context.Context) ([]*Doctor, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, email string) (*store.DeleteResult, error) {
	return s.repo.DeleteByEmail(ctx, email)
}
