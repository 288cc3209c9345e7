package content

import "context"

type AboutRepository interface {
	Get(ctx context.Context) (*About, error)
	Create(ctx context.Context, a *About) (*About, error)
	Update(ctx context.Context, a *About) (*About, error)
}

type ContactRepository interface {
	Get(ctx context.Context) (*Contact, error)
	Create(ctx context.Context, c *Contact) (*Contact, error)
	Update(ctx context.Context, c *Contact) (*Contact, error)
}
