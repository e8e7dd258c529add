package jobs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/gorm"

	"frotavistoria-api/repositories"
)

// PhotoCleanupJob periodically removes photo files on disk that no
// inspection_photos row references: leftovers from failed submissions.
// Failures here are only logged, never raised.
type PhotoCleanupJob struct {
	requestRepo *repositories.InspectionRequestRepository
	uploadDir   string
	ticker      *time.Ticker
	done        chan bool
}

// NewPhotoCleanupJob creates a new photo cleanup job
func NewPhotoCleanupJob(db *gorm.DB, uploadDir string, interval time.Duration) *PhotoCleanupJob {
	return &PhotoCleanupJob{
		requestRepo: repositories.NewInspectionRequestRepository(db),
		uploadDir:   uploadDir,
		ticker:      time.NewTicker(interval),
		done:        make(chan bool),
	}
}

// Start begins the cleanup job
func (j *PhotoCleanupJob) Start() {
	fmt.Println("Photo cleanup job started")

	go func() {
		// Run immediately on start
		j.cleanup()

		// Then run on schedule
		for {
			select {
			case <-j.ticker.C:
				j.cleanup()
			case <-j.done:
				fmt.Println("Photo cleanup job stopped")
				return
			}
		}
	}()
}

// Stop stops the cleanup job
func (j *PhotoCleanupJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

// cleanup walks the inspections upload tree and removes unreferenced files.
// Files younger than an hour are skipped so an in-flight submission's photos
// are never swept between the disk write and the transaction commit.
func (j *PhotoCleanupJob) cleanup() {
	fmt.Println("Running photo cleanup...")

	paths, err := j.requestRepo.AllPhotoPaths()
	if err != nil {
		fmt.Printf("Error during photo cleanup: %v\n", err)
		return
	}

	referenced := make(map[string]bool, len(paths))
	for _, p := range paths {
		if rel, ok := strings.CutPrefix(p, "/api/uploads/"); ok {
			referenced[filepath.Join(j.uploadDir, filepath.FromSlash(rel))] = true
		}
	}

	root := filepath.Join(j.uploadDir, "inspections")
	removed := 0

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() || referenced[path] {
			return nil
		}
		if time.Since(info.ModTime()) < time.Hour {
			return nil
		}

		if err := os.Remove(path); err != nil {
			fmt.Printf("Failed to remove orphaned photo %s: %v\n", path, err)
			return nil
		}
		removed++
		return nil
	})
	if err != nil {
		fmt.Printf("Error during photo cleanup: %v\n", err)
		return
	}

	fmt.Printf("Photo cleanup completed, %d orphaned file(s) removed\n", removed)
}
