package drivestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/2beens/gymplan/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// ErrNotFound means the dataset exists neither locally nor in the
// remote document store. Callers decide whether that is fatal.
var ErrNotFound = errors.New("dataset not found")

// RemoteFile is the metadata of a file found in the remote document store.
type RemoteFile struct {
	ID       string
	Name     string
	MimeType string
}

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=drivestore_test

type remoteStore interface {
	FindFile(ctx context.Context, folderID, name string) (*RemoteFile, error)
	Download(ctx context.Context, fileID string) ([]byte, error)
	ExportCSV(ctx context.Context, fileID string) ([]byte, error)
}

// Resolver resolves a named dataset to its bytes: the local data dir is
// checked first, then the configured Google Drive folder. Remote downloads
// are not cached back to the local dir.
type Resolver struct {
	localDir string
	folderID string
	remote   remoteStore
}

func NewResolver(localDir, folderID string, remote remoteStore) *Resolver {
	return &Resolver{
		localDir: localDir,
		folderID: folderID,
		remote:   remote,
	}
}

func (r *Resolver) Resolve(ctx context.Context, name string) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "drivestore.resolve")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("dataset", name))

	localPath := filepath.Join(r.localDir, name)
	data, err := os.ReadFile(localPath)
	if err == nil {
		log.Debugf("found %q locally", name)
		return data, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read local file %s: %w", localPath, err)
	}

	log.Debugf("searching for %q in google drive ...", name)

	file, err := r.remote.FindFile(ctx, r.folderID, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warnf("could not find %q locally or in google drive", name)
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find file %q: %w", name, err)
	}

	if file.MimeType == MimeTypeGoogleSheet {
		data, err = r.remote.ExportCSV(ctx, file.ID)
	} else {
		data, err = r.remote.Download(ctx, file.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("download %q (%s): %w", name, file.ID, err)
	}

	log.Debugf("downloaded %q from google drive", name)

	return data, nil
}

// SaveLocal writes a dataset into the local data dir, so subsequent runs
// resolve it without network calls.
func (r *Resolver) SaveLocal(name string, data []byte) error {
	if err := os.MkdirAll(r.localDir, 0o755); err != nil {
		return fmt.Errorf("create local data dir: %w", err)
	}
	localPath := filepath.Join(r.localDir, name)
	if err := os.WriteFile(localPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", localPath, err)
	}
	return nil
}
