package drivestore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const MimeTypeGoogleSheet = "application/vnd.google-apps.spreadsheet"

// DriveStore is the Google Drive backed remote document store.
type DriveStore struct {
	service *drive.Service
}

func NewDriveStore(ctx context.Context, credentialsJSON []byte) (*DriveStore, error) {
	driveService, err := drive.NewService(ctx, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve drive client: %w", err)
	}
	return &DriveStore{
		service: driveService,
	}, nil
}

func (d *DriveStore) FindFile(ctx context.Context, folderID, name string) (*RemoteFile, error) {
	// single quotes in the name would break the drive query
	escapedName := strings.ReplaceAll(name, `'`, `\'`)
	query := fmt.Sprintf("'%s' in parents and name = '%s' and trashed = false", folderID, escapedName)

	result, err := d.service.
		Files.List().
		Q(query).
		PageSize(1).
		Fields("files(id, name, mimeType)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to list files: %w", err)
	}

	if len(result.Files) == 0 {
		return nil, ErrNotFound
	}

	file := result.Files[0]
	return &RemoteFile{
		ID:       file.Id,
		Name:     file.Name,
		MimeType: file.MimeType,
	}, nil
}

func (d *DriveStore) Download(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := d.service.
		Files.Get(fileID).
		Context(ctx).
		Download()
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}

func (d *DriveStore) ExportCSV(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := d.service.
		Files.Export(fileID, "text/csv").
		Context(ctx).
		Download()
	if err != nil {
		return nil, fmt.Errorf("export file as csv: %w", err)
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}
