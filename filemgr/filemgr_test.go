package filemgr

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadForm(t *testing.T, filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	r := httptest.NewRequest("POST", "/api/v1/blog/newPost", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	file, header, err := r.FormFile("image")
	require.NoError(t, err)
	return file, header
}

func TestSaveImageRejectsExtension(t *testing.T) {
	file, header := uploadForm(t, "payload.exe", []byte("MZ"))
	defer file.Close()

	_, err := SaveImage(file, header)
	assert.ErrorIs(t, err, ErrInvalidExtension)
}

func TestSaveImageRejectsSpoofedMIME(t *testing.T) {
	// .png name, plain text content
	file, header := uploadForm(t, "note.png", []byte("not an image at all"))
	defer file.Close()

	_, err := SaveImage(file, header)
	assert.ErrorIs(t, err, ErrInvalidMIME)
}

func TestDestroyEmptyAssetIsNoOp(t *testing.T) {
	assert.NoError(t, Destroy(""))
}
