package utils

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"edura/config"
)

// MediaService is an opaque pass-through to the Cloudinary media host: it takes
// raw bytes and hands back a public URL. Nothing about the file is kept locally.
type MediaService struct {
	client    *resty.Client
	cloudName string
	apiKey    string
	apiSecret string
}

func NewMediaService(cfg *config.Config) *MediaService {
	return &MediaService{
		client:    resty.New().SetTimeout(30 * time.Second),
		cloudName: cfg.CloudinaryCloudName,
		apiKey:    cfg.CloudinaryAPIKey,
		apiSecret: cfg.CloudinaryAPISecret,
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload pushes a file to the media host and returns its public URL
func (m *MediaService) Upload(fileName string, data []byte) (string, error) {
	if m.cloudName == "" || m.apiKey == "" || m.apiSecret == "" {
		return "", fmt.Errorf("media host is not configured")
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	// Cloudinary signs the sorted parameter string followed by the API secret
	digest := sha1.Sum([]byte("timestamp=" + timestamp + m.apiSecret))
	signature := hex.EncodeToString(digest[:])

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/auto/upload", m.cloudName)

	resp, err := m.client.R().
		SetFileReader("file", fileName, bytes.NewReader(data)).
		SetFormData(map[string]string{
			"api_key":   m.apiKey,
			"timestamp": timestamp,
			"signature": signature,
		}).
		Post(endpoint)
	if err != nil {
		return "", fmt.Errorf("media upload failed: %w", err)
	}

	var result uploadResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("invalid media host response: %w", err)
	}

	if resp.StatusCode() != 200 || result.SecureURL == "" {
		return "", fmt.Errorf("media upload rejected: %s", result.Error.Message)
	}

	return result.SecureURL, nil
}
