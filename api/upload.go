package api

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vasavi-eco-club/club-site-backend/errs"
)

// maxUploadSize caps the uploaded file at 5MB. The request body gets extra
// headroom so multipart framing and the metadata fields don't eat into the
// file's allowance.
const (
	maxUploadSize     = 5 << 20
	multipartOverhead = 1 << 20
)

var allowedImageTypes = map[string]string{
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

// saveUploadedImage reads the named multipart file field, checks size and
// image type by both extension and declared content type, and writes the
// file into dir under a collision-resistant generated name. Returns the
// stored filename.
func saveUploadedImage(w http.ResponseWriter, r *http.Request, field, dir string) (string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+multipartOverhead)
	if err := r.ParseMultipartForm(maxUploadSize + multipartOverhead); err != nil {
		return "", errs.NewBadRequestError("Image exceeds the 5MB size limit").WithCause(err)
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return "", errs.NewBadRequestError("No image file provided")
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		return "", errs.NewBadRequestError("Image exceeds the 5MB size limit")
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	wantMIME, ok := allowedImageTypes[ext]
	if !ok {
		return "", errs.NewBadRequestError("Only image files are allowed!")
	}
	if declared := header.Header.Get("Content-Type"); declared != "" && declared != wantMIME {
		return "", errs.NewBadRequestError("Only image files are allowed!")
	}

	filename := generateUploadName(field, ext)
	if err := writeFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}

// generateUploadName mirrors the upload naming the frontend already links
// against: <field>-<unix ms>-<random><ext>.
func generateUploadName(field, ext string) string {
	return fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
}

func writeFile(src multipart.File, path string) error {
	dst, err := os.Create(path)
	if err != nil {
		return errs.NewInternalError("Failed to store image").WithCause(err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return errs.NewInternalError("Failed to store image").WithCause(err)
	}
	return nil
}
