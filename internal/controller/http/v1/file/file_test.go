package file

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"workforce/backend/foundation/web"
)

func multipartImage(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return body, mw.FormDataContentType()
}

// A minted link token must open the very file the upload stored under the
// media root, with no base-dir segment doubled anywhere in between.
func TestUploadLinkResolves(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	app := web.NewApp()
	controller := NewController(app, filepath.Join(dir, "statics"))
	app.Post("/upload", controller.Upload)
	app.GET("/media/*filepath", controller.File)

	content := []byte("png-bytes")
	body, contentType := multipartImage(t, "file", "shot.png", content)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	app.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("upload status = %d, body %s", w.Code, w.Body.String())
	}

	var uploaded struct {
		Data struct {
			Path string `json:"path"`
			Link string `json:"link"`
		} `json:"data"`
		Status bool `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &uploaded); err != nil {
		t.Fatalf("upload response: %v", err)
	}
	if strings.HasPrefix(uploaded.Data.Path, "statics") {
		t.Fatalf("path carries the base dir: %s", uploaded.Data.Path)
	}
	if !strings.HasPrefix(uploaded.Data.Path, "uploads/") {
		t.Fatalf("path = %s, want it under uploads/", uploaded.Data.Path)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/media/"+uploaded.Data.Link, nil)
	app.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("link status = %d, body %s", w.Code, w.Body.String())
	}
	if !bytes.Equal(w.Body.Bytes(), content) {
		t.Fatalf("served %q, want %q", w.Body.Bytes(), content)
	}
}
