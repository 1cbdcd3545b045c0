package realmapi

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/MKhiriev/go-realms/models"
)

// Download is a signed link to a world archive on the storage backend. The
// link expires shortly after it is issued.
type Download struct {
	URL           string `json:"downloadUrl"`
	FileExtension string `json:"fileExtension"`

	// Bedrock only.
	Token string `json:"token,omitempty"`
	Size  int64  `json:"size,omitempty"`

	// Java only.
	ResourcePackURL  string `json:"resourcePackUrl,omitempty"`
	ResourcePackHash string `json:"resourcePackHash,omitempty"`

	fetcher fetcher
	fs      afero.Fs
}

func newDownload(platform models.Platform, f fetcher, fs afero.Fs, d models.DownloadResponse) *Download {
	dl := &Download{URL: d.URL(), fetcher: f, fs: fs}
	if platform == models.PlatformBedrock {
		dl.Token = d.Token
		dl.Size = d.Size
		dl.FileExtension = models.BedrockWorldExtension
	} else {
		dl.ResourcePackURL = d.ResourcePackURL
		dl.ResourcePackHash = d.ResourcePackHash
		dl.FileExtension = models.JavaWorldExtension
	}
	return dl
}

// GetBuffer downloads the archive into memory.
func (d *Download) GetBuffer(ctx context.Context) ([]byte, error) {
	return d.fetcher.Fetch(ctx, d.URL, d.Token)
}

// WriteToDirectory downloads the archive to dir/world<ext>, creating dir if
// needed, and returns the written path.
func (d *Download) WriteToDirectory(ctx context.Context, dir string) (string, error) {
	data, err := d.GetBuffer(ctx)
	if err != nil {
		return "", err
	}

	if err = d.fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create download directory: %w", err)
	}

	path := filepath.Join(dir, "world"+d.FileExtension)
	if err = afero.WriteFile(d.fs, path, data, 0o644); err != nil {
		return "", fmt.Errorf("write world archive: %w", err)
	}
	return path, nil
}
