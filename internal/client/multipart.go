package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
)

// buildProductForm is the single place product multipart bodies are
// assembled. Create mode sends every field; update mode drops empties so
// the backend keeps stored values. Featured is always sent, as
// "true"/"false".
func buildProductForm(d Draft, includeEmpty bool) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := []struct {
		key   string
		value string
	}{
		{"name", d.Name},
		{"description", d.Description},
		{"price", formatPrice(d.Price)},
		{"category", d.Category},
	}
	for _, f := range fields {
		if f.value == "" && !includeEmpty {
			continue
		}
		if err := w.WriteField(f.key, f.value); err != nil {
			return nil, "", err
		}
	}

	if d.Image != nil {
		fw, err := w.CreateFormFile("image", d.Image.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(fw, d.Image.Reader); err != nil {
			return nil, "", fmt.Errorf("copy image %s: %w", d.Image.Name, err)
		}
	}

	if err := w.WriteField("featured", strconv.FormatBool(d.Featured)); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

func formatPrice(price float64) string {
	if price == 0 {
		return ""
	}
	return strconv.FormatFloat(price, 'f', -1, 64)
}
