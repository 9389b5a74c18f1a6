package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testClient() *Client {
	return &Client{baseURL: "https://files.example.com", bucket: "luma-media"}
}

func TestCertificatePath(t *testing.T) {
	ts := time.UnixMilli(1750000000000)
	assert.Equal(t, "certificates/7/3/1750000000000.png", CertificatePath(7, 3, ts))
}

func TestPublicURLRoundTrip(t *testing.T) {
	c := testClient()
	path := "certificates/7/3/1750000000000.png"

	publicURL := c.PublicURL(path)
	assert.Equal(t, "https://files.example.com/storage/v1/object/public/luma-media/certificates/7/3/1750000000000.png", publicURL)

	assert.Equal(t, path, c.PathFromPublicURL(publicURL))
}

func TestPublicURLRoundTripWithSpaces(t *testing.T) {
	c := testClient()
	path := "marketing/20260830-summer sale.png"

	assert.Equal(t, path, c.PathFromPublicURL(c.PublicURL(path)))
}

func TestPathFromForeignURL(t *testing.T) {
	c := testClient()

	assert.Equal(t, "", c.PathFromPublicURL("https://files.example.com/storage/v1/object/public/other-bucket/a.png"))
	assert.Equal(t, "", c.PathFromPublicURL("https://cdn.example.com/a.png"))
}
