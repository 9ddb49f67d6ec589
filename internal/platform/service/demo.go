package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
	"github.com/sitewatch/sitewatch/internal/platform/store"
	"github.com/sitewatch/sitewatch/pkg/idx"
	"github.com/sitewatch/sitewatch/pkg/slogx"
)

// DemoService captures marketing-site demo requests.
type DemoService struct {
	Store store.Store
}

// DemoRequestInput is the public request-a-demo form.
type DemoRequestInput struct {
	FullName       string
	Email          string
	WhatsappNumber string
	Company        string
	JobTitle       string
	Message        string
}

// Submit stores a demo request.
func (s *DemoService) Submit(ctx context.Context, in DemoRequestInput) (domain.DemoRequest, error) {
	log := slogx.FromContext(ctx)

	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.FullName == "" {
		return domain.DemoRequest{}, fmt.Errorf("%w: full name is required", ErrValidation)
	}
	if !strings.Contains(in.Email, "@") {
		return domain.DemoRequest{}, fmt.Errorf("%w: invalid email", ErrValidation)
	}

	req := domain.DemoRequest{
		ID:             idx.New().String(),
		FullName:       in.FullName,
		Email:          in.Email,
		WhatsappNumber: strings.TrimSpace(in.WhatsappNumber),
		Company:        strings.TrimSpace(in.Company),
		JobTitle:       strings.TrimSpace(in.JobTitle),
		Message:        strings.TrimSpace(in.Message),
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.Store.DemoRequests().CreateDemoRequest(ctx, req); err != nil {
		return domain.DemoRequest{}, err
	}

	log.Info("demo request received", slog.String("demo_request_id", req.ID))
	return req, nil
}

// List returns all demo requests, newest first. Superusers only.
func (s *DemoService) List(ctx context.Context, actor domain.User) ([]domain.DemoRequest, error) {
	if !actor.Superuser {
		return nil, fmt.Errorf("%w: superuser required", ErrForbidden)
	}
	return s.Store.DemoRequests().ListDemoRequests(ctx)
}
