package models

// DownloadResponse is the payload of the world download endpoints. Bedrock
// fills DownloadURL, Token and Size; java fills DownloadLink and the resource
// pack fields.
type DownloadResponse struct {
	DownloadURL      string `json:"downloadUrl,omitempty"`
	DownloadLink     string `json:"downloadLink,omitempty"`
	FileExtension    string `json:"fileExtension,omitempty"`
	Token            string `json:"token,omitempty"`
	Size             int64  `json:"size,omitempty"`
	ResourcePackURL  string `json:"resourcePackUrl,omitempty"`
	ResourcePackHash string `json:"resourcePackHash,omitempty"`
}

// URL returns whichever of DownloadLink and DownloadURL the server filled.
func (d DownloadResponse) URL() string {
	if d.DownloadLink != "" {
		return d.DownloadLink
	}
	return d.DownloadURL
}

const (
	BedrockWorldExtension = ".mcworld"
	JavaWorldExtension    = ".tar.gz"
)
