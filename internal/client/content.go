package client

import "context"

// The backend wraps singleton resources in an envelope keyed by the
// resource name; both values are null until an admin first saves them.
type aboutEnvelope struct {
	About *About `json:"about"`
}

type contactEnvelope struct {
	Contact *Contact `json:"contact"`
}

// About returns nil with no error while the backend holds no about
// content yet.
func (c *Client) About(ctx context.Context) (*About, error) {
	var env aboutEnvelope
	if err := c.getJSON(ctx, "fetch about", "/api/about", &env); err != nil {
		return nil, err
	}
	return env.About, nil
}

func (c *Client) UpdateAbout(ctx context.Context, in About) (*About, error) {
	payload := map[string]string{
		"title":   in.Title,
		"content": in.Content,
	}
	var env aboutEnvelope
	if err := c.putJSON(ctx, "update about", "/api/about", payload, &env); err != nil {
		return nil, err
	}
	return env.About, nil
}

func (c *Client) Contact(ctx context.Context) (*Contact, error) {
	var env contactEnvelope
	if err := c.getJSON(ctx, "fetch contact", "/api/contact", &env); err != nil {
		return nil, err
	}
	return env.Contact, nil
}

func (c *Client) UpdateContact(ctx context.Context, in Contact) (*Contact, error) {
	payload := map[string]string{
		"email":        in.Email,
		"phone":        in.Phone,
		"address":      in.Address,
		"whatsappLink": in.WhatsappLink,
	}
	var env contactEnvelope
	if err := c.putJSON(ctx, "update contact", "/api/contact", payload, &env); err != nil {
		return nil, err
	}
	return env.Contact, nil
}
