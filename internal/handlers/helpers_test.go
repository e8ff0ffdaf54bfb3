package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kbellil/interior-design-api/internal/middlewares"
	"github.com/kbellil/interior-design-api/internal/models"
)

func testUser() *models.UserDB {
	return &models.UserDB{
		ID:       1,
		Email:    "alice@example.com",
		Username: "alice",
	}
}

// authed attaches a user to the request the way the auth middleware does.
func authed(r *http.Request, user *models.UserDB) *http.Request {
	return r.WithContext(middlewares.ContextWithUser(r.Context(), user))
}

// multipartBody builds a multipart form with file fields and plain
// string fields, returning the body and its content type.
func multipartBody(t *testing.T, files map[string][]byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for name, content := range files {
		part, err := mw.CreateFormFile(name, name+".jpg")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	for name, value := range fields {
		require.NoError(t, mw.WriteField(name, value))
	}

	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func strPtr(s string) *string {
	return &s
}
