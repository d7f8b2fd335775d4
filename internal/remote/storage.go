package remote

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Storage bucket names. Compressed images and their thumbnails live in
// separate folders so either can be removed independently.
const (
	BucketImages     = "event-images"
	BucketThumbnails = "event-thumbnails"
)

// ImageRecord carries the stored blob references attached to an event record.
type ImageRecord struct {
	URL          string
	ThumbnailURL string
	Filename     string
}

// Upload stores a blob under bucket/name and returns its public URL.
func (c *Client) Upload(ctx context.Context, bucket, name, contentType string, data []byte) (string, error) {
	if c == nil {
		return "", ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, bucket, name)
	req, err := c.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)

	if err := c.do(req, "upload blob "+bucket+"/"+name, nil); err != nil {
		return "", err
	}
	return c.PublicURL(bucket, name), nil
}

// Remove deletes a blob by bucket and name.
func (c *Client) Remove(ctx context.Context, bucket, name string) error {
	if c == nil {
		return ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, bucket, name)
	req, err := c.newRequest(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	return c.do(req, "remove blob "+bucket+"/"+name, nil)
}

// PublicURL is the world-readable address of a stored blob.
func (c *Client) PublicURL(bucket, name string) string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, bucket, name)
}

// ObjectName extracts the bucket-relative name from a public blob URL
// produced by PublicURL. It returns false when the URL does not point at the
// given bucket on this backend.
func (c *Client) ObjectName(bucket, publicURL string) (string, bool) {
	if c == nil || publicURL == "" {
		return "", false
	}
	prefix := fmt.Sprintf("%s/storage/v1/object/public/%s/", c.baseURL, bucket)
	if !strings.HasPrefix(publicURL, prefix) {
		return "", false
	}
	name := strings.TrimPrefix(publicURL, prefix)
	if name == "" {
		return "", false
	}
	return name, true
}
