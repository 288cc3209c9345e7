package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureMultipart records the parsed multipart fields and file of the
// last request.
type captureMultipart struct {
	values   map[string][]string
	fileName string
	fileBody string
}

func multipartServer(t *testing.T, capture *captureMultipart) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		capture.values = r.MultipartForm.Value

		if file, header, err := r.FormFile("image"); err == nil {
			defer file.Close()
			raw, err := io.ReadAll(file)
			require.NoError(t, err)
			capture.fileName = header.Filename
			capture.fileBody = string(raw)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1,"name":"Whey","price":49.99}`))
	}))
}

func TestCreateProduct_SendsAllFields(t *testing.T) {
	capture := &captureMultipart{}
	srv := multipartServer(t, capture)
	defer srv.Close()

	c := New(srv.URL, nil, staticToken("tok"))
	product, err := c.CreateProduct(context.Background(), Draft{
		Name:     "Whey",
		Price:    49.99,
		Category: "Whey Protein",
		Featured: false,
		Image:    &File{Name: "whey.png", Reader: strings.NewReader("png-bytes")},
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), product.ID)

	require.Equal(t, []string{"Whey"}, capture.values["name"])
	require.Equal(t, []string{""}, capture.values["description"], "create sends empty fields too")
	require.Equal(t, []string{"49.99"}, capture.values["price"])
	require.Equal(t, []string{"Whey Protein"}, capture.values["category"])
	require.Equal(t, []string{"false"}, capture.values["featured"], "featured is always sent as a string")
	require.Equal(t, "whey.png", capture.fileName)
	require.Equal(t, "png-bytes", capture.fileBody)
}

func TestUpdateProduct_OmitsEmptyFields(t *testing.T) {
	capture := &captureMultipart{}
	srv := multipartServer(t, capture)
	defer srv.Close()

	c := New(srv.URL, nil, staticToken("tok"))
	_, err := c.UpdateProduct(context.Background(), 1, Draft{
		Price:    59.99,
		Featured: true,
	})
	require.NoError(t, err)

	require.NotContains(t, capture.values, "name")
	require.NotContains(t, capture.values, "description")
	require.NotContains(t, capture.values, "category")
	require.Equal(t, []string{"59.99"}, capture.values["price"])
	require.Equal(t, []string{"true"}, capture.values["featured"], "featured is sent even on sparse updates")
	require.Empty(t, capture.fileName, "no image part without a pending image")
}

func TestUpdateProduct_NoImageWithoutFile(t *testing.T) {
	capture := &captureMultipart{}
	srv := multipartServer(t, capture)
	defer srv.Close()

	c := New(srv.URL, nil, staticToken("tok"))
	_, err := c.UpdateProduct(context.Background(), 1, Draft{Name: "Renamed", Featured: false})
	require.NoError(t, err)

	require.Equal(t, []string{"Renamed"}, capture.values["name"])
	require.NotContains(t, capture.values, "price", "zero price is treated as unset on update")
}
