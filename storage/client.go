package storage

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"luma/apperrors"
	"luma/config"
)

// Object paths within the certificate bucket
const (
	TemplatePath = "certificates/template/certificate-template.png"
	fontFolder   = "certificates/fonts"
)

// CertificatePath returns the object path of an issued certificate image.
// Regeneration writes a new timestamped object; old ones are kept.
func CertificatePath(userID, courseID uint, ts time.Time) string {
	return fmt.Sprintf("certificates/%d/%d/%d.png", userID, courseID, ts.UnixMilli())
}

// FontPath returns the object path of an uploaded custom font
func FontPath(fileName string) string {
	return fontFolder + "/" + fileName
}

// Client talks to the hosted object storage over its REST API
type Client struct {
	baseURL string
	bucket  string
	http    *resty.Client
}

// NewClient builds a storage client from the loaded configuration
func NewClient() *Client {
	return &Client{
		baseURL: config.AppConfig.StorageURL,
		bucket:  config.AppConfig.StorageBucket,
		http: resty.New().
			SetTimeout(30 * time.Second).
			SetAuthToken(config.AppConfig.StorageKey),
	}
}

// Upload writes an object, overwriting any existing one at the same path
func (c *Client) Upload(path, contentType string, data []byte) error {
	resp, err := c.http.R().
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "true").
		SetBody(data).
		Post(c.objectURL(path))
	if err != nil {
		return apperrors.Wrap(apperrors.KindPersistence, err, "failed to upload %s", path)
	}
	if resp.IsError() {
		return apperrors.New(apperrors.KindPersistence, "upload of %s failed with status %d: %s", path, resp.StatusCode(), resp.String())
	}
	return nil
}

// Download fetches an object's bytes. A missing object is a NotFound error;
// any other non-2xx response is an upstream failure.
func (c *Client) Download(path string) ([]byte, error) {
	resp, err := c.http.R().Get(c.objectURL(path))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindUpstream, err, "failed to fetch %s", path)
	}
	if resp.StatusCode() == 404 {
		return nil, apperrors.New(apperrors.KindNotFound, "object %s not found", path)
	}
	if resp.IsError() {
		return nil, apperrors.New(apperrors.KindUpstream, "fetch of %s failed with status %d", path, resp.StatusCode())
	}
	return resp.Body(), nil
}

// Delete removes an object. Deleting a missing object is not an error.
func (c *Client) Delete(path string) error {
	resp, err := c.http.R().Delete(c.objectURL(path))
	if err != nil {
		return apperrors.Wrap(apperrors.KindPersistence, err, "failed to delete %s", path)
	}
	if resp.IsError() && resp.StatusCode() != 404 {
		return apperrors.New(apperrors.KindPersistence, "delete of %s failed with status %d", path, resp.StatusCode())
	}
	return nil
}

// PublicURL returns the public, unauthenticated URL of an object
func (c *Client) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, escapePath(path))
}

// PathFromPublicURL recovers the object path from a public URL previously
// returned by PublicURL. Returns "" if the URL does not point at this bucket.
func (c *Client) PathFromPublicURL(publicURL string) string {
	marker := "/storage/v1/object/public/" + c.bucket + "/"
	idx := strings.Index(publicURL, marker)
	if idx < 0 {
		return ""
	}
	path, err := url.PathUnescape(publicURL[idx+len(marker):])
	if err != nil {
		return ""
	}
	return path
}

func (c *Client) objectURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, escapePath(path))
}

func escapePath(path string) string {
	return (&url.URL{Path: path}).EscapedPath()
}
