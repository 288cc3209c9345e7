package content

import (
	"context"
	"errors"
	"strings"
	"time"

	dom "example.com/protein-store/internal/domain/content"
)

type Service struct {
	about   dom.AboutRepository
	contact dom.ContactRepository
	now     func() time.Time
}

func NewService(about dom.AboutRepository, contact dom.ContactRepository) *Service {
	return &Service{
		about:   about,
		contact: contact,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) About(ctx context.Context) (*dom.About, error) {
	return s.about.Get(ctx)
}

// UpdateAbout upserts the singleton. Empty incoming fields keep the
// stored values. Content arriving wrapped in literal double quotes is
// unwrapped before storing.
func (s *Service) UpdateAbout(ctx context.Context, in *dom.About) (*dom.About, error) {
	body := in.Content
	if strings.HasPrefix(body, `"`) && strings.HasSuffix(body, `"`) && len(body) >= 2 {
		body = body[1 : len(body)-1]
	}

	existed, err := s.about.Get(ctx)
	if err != nil {
		if !errors.Is(err, dom.ErrNotFound) {
			return nil, err
		}
		return s.about.Create(ctx, &dom.About{
			Title:       in.Title,
			Content:     body,
			LastUpdated: s.now(),
		})
	}

	if in.Title != "" {
		existed.Title = in.Title
	}
	if body != "" {
		existed.Content = body
	}
	existed.LastUpdated = s.now()

	return s.about.Update(ctx, existed)
}

func (s *Service) Contact(ctx context.Context) (*dom.Contact, error) {
	return s.contact.Get(ctx)
}

func (s *Service) UpdateContact(ctx context.Context, in *dom.Contact) (*dom.Contact, error) {
	existed, err := s.contact.Get(ctx)
	if err != nil {
		if !errors.Is(err, dom.ErrNotFound) {
			return nil, err
		}
		in.LastUpdated = s.now()
		return s.contact.Create(ctx, in)
	}

	if in.Email != "" {
		existed.Email = in.Email
	}
	if in.Phone != "" {
		existed.Phone = in.Phone
	}
	if in.Address != "" {
		existed.Address = in.Address
	}
	if in.WhatsappLink != "" {
		existed.WhatsappLink = in.WhatsappLink
	}
	existed.LastUpdated = s.now()

	return s.contact.Update(ctx, existed)
}
