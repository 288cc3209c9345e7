package mysql

import (
	"context"
	"database/sql"
	"errors"

	domcontent "example.com/protein-store/internal/domain/content"
)

type AboutRepository struct {
	db *sql.DB
}

func NewAboutRepository(db *sql.DB) *AboutRepository {
	return &AboutRepository{db: db}
}

func (r *AboutRepository) Get(ctx context.Context) (*domcontent.About, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, title, content, last_updated FROM about LIMIT 1
    `)

	var a domcontent.About
	if err := row.Scan(&a.ID, &a.Title, &a.Content, &a.LastUpdated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domcontent.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AboutRepository) Create(ctx context.Context, a *domcontent.About) (*domcontent.About, error) {
	res, err := r.db.ExecContext(ctx, `
        INSERT INTO about (title, content, last_updated) VALUES (?, ?, ?)
    `, a.Title, a.Content, a.LastUpdated)
	if err != nil {
		return nil, err
	}
	a.ID, _ = res.LastInsertId()
	return a, nil
}

func (r *AboutRepository) Update(ctx context.Context, a *domcontent.About) (*domcontent.About, error) {
	_, err := r.db.ExecContext(ctx, `
        UPDATE about SET title = ?, content = ?, last_updated = ? WHERE id = ?
    `, a.Title, a.Content, a.LastUpdated, a.ID)
	if err != nil {
		return nil, err
	}
	return a, nil
}

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Get(ctx context.Context) (*domcontent.Contact, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, email, phone, address, whatsapp_link, last_updated FROM contact LIMIT 1
    `)

	var c domcontent.Contact
	if err := row.Scan(&c.ID, &c.Email, &c.Phone, &c.Address, &c.WhatsappLink, &c.LastUpdated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domcontent.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ContactRepository) Create(ctx context.Context, c *domcontent.Contact) (*domcontent.Contact, error) {
	res, err := r.db.ExecContext(ctx, `
        INSERT INTO contact (email, phone, address, whatsapp_link, last_updated)
        VALUES (?, ?, ?, ?, ?)
    `, c.Email, c.Phone, c.Address, c.WhatsappLink, c.LastUpdated)
	if err != nil {
		return nil, err
	}
	c.ID, _ = res.LastInsertId()
	return c, nil
}

func (r *ContactRepository) Update(ctx context.Context, c *domcontent.Contact) (*domcontent.Contact, error) {
	_, err := r.db.ExecContext(ctx, `
        UPDATE contact SET email = ?, phone = ?, address = ?, whatsapp_link = ?, last_updated = ?
        WHERE id = ?
    `, c.Email, c.Phone, c.Address, c.WhatsappLink, c.LastUpdated, c.ID)
	if err != nil {
		return nil, err
	}
	return c, nil
}
