package uploads

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/folderforge/folderforge/internal/common"
)

// ObjectStore is the slice of blob storage the upload flow needs.
type ObjectStore interface {
	Put(ctx context.Context, key string, contentType string, body io.Reader) error
}

// adminFolders hold editorial assets and only accept admin uploads.
var adminFolders = map[string]bool{
	"blogs": true,
	"pages": true,
}

const defaultFolder = "uploads"

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

type Service struct {
	store         ObjectStore
	publicBaseURL string
}

func NewService(store ObjectStore, publicBaseURL string) *Service {
	return &Service{
		store:         store,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// StorageKey builds the object key for an upload. The original filename is
// kept readable but stripped to a safe character set, and a fresh uuid
// prefix makes every key unique.
func StorageKey(folder, filename string) string {
	safe := unsafeFilenameChars.ReplaceAllString(filename, "")
	return fmt.Sprintf("%s/%s-%s", folder, uuid.New(), safe)
}

// Upload stores a file and returns its public URL.
//
// Folders outside the known set are redirected to the general-purpose
// folder rather than rejected. Editorial folders require admin rights.
func (s *Service) Upload(ctx context.Context, isAdmin bool, folder, filename, contentType string, body io.Reader) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("%w: missing filename", common.ErrorValidation)
	}

	if adminFolders[folder] {
		if !isAdmin {
			return "", fmt.Errorf("%w: folder %q requires admin access", common.ErrorForbidden, folder)
		}
	} else if folder != defaultFolder {
		folder = defaultFolder
	}

	key := StorageKey(folder, filename)

	if err := s.store.Put(ctx, key, contentType, body); err != nil {
		return "", fmt.Errorf("error storing object: %w", err)
	}

	return s.publicBaseURL + "/" + key, nil
}
