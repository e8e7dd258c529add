package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"frotavistoria-api/utils"
)

// PhotoUpload is one uploaded image, already read off the wire.
type PhotoUpload struct {
	Data         []byte
	OriginalName string
}

// PhotoService persists inspection photos on the local file system under
// <baseDir>/inspections/<plate>/ and hands back the public URL paths the
// frontend can fetch. Callers never learn the storage medium.
type PhotoService struct {
	baseDir string
}

func NewPhotoService(baseDir string) *PhotoService {
	return &PhotoService{baseDir: baseDir}
}

// Save writes every upload and returns the stored public paths in order.
// plateHint namespaces the directory so photos of one vehicle stay together.
func (s *PhotoService) Save(requestID string, uploads []PhotoUpload, plateHint string) ([]string, error) {
	if plateHint == "" {
		plateHint = requestID
	}

	dir := filepath.Join(s.baseDir, "inspections", plateHint)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, utils.NewStorageError("falha ao criar diretório de fotos", err)
	}

	paths := make([]string, 0, len(uploads))
	for i, upload := range uploads {
		filename := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), i, safeExt(upload.OriginalName))
		if err := os.WriteFile(filepath.Join(dir, filename), upload.Data, 0o644); err != nil {
			return nil, utils.NewStorageError("falha ao gravar foto", err)
		}
		paths = append(paths, "/api/uploads/inspections/"+plateHint+"/"+filename)
	}

	return paths, nil
}

// Delete removes the file behind a stored public path. Best effort: a
// missing file is not an error for the caller, only a log line.
func (s *PhotoService) Delete(publicPath string) {
	rel, ok := strings.CutPrefix(publicPath, "/api/uploads/")
	if !ok {
		log.Printf("Photo path outside upload tree, skipping delete: %s", publicPath)
		return
	}

	if err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(rel))); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to delete photo %s: %v", publicPath, err)
	}
}

// BaseDir exposes the storage root for the static file route and the
// cleanup job.
func (s *PhotoService) BaseDir() string {
	return s.baseDir
}

func safeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp", ".gif":
		return ext
	default:
		return ".jpg"
	}
}
