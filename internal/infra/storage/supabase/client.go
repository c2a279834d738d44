package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the Supabase Storage object API. The core only leans on
// three primitives: signed upload slot, signed download URL, delete.
type Client struct {
	baseURL    string
	serviceKey string
	bucket     string
	http       *http.Client
}

func NewClient(serviceKey, baseURL, bucket string) *Client {
	return &Client{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		bucket:     bucket,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateSignedUploadURL issues a time-boxed slot the uploader PUTs the
// binary to directly. Returns the full upload URL.
func (c *Client) CreateSignedUploadURL(ctx context.Context, objectKey string) (string, error) {
	url := fmt.Sprintf("%s/object/upload/sign/%s/%s", c.baseURL, c.bucket, objectKey)

	req, err := http.NewRequestWithContext(ctx, "POST", url, nil)
	if err != nil {
		return "", err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("storage refused signed upload (status %d): %s", resp.StatusCode, string(body))
	}

	var response signedUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("storage decode failed: %w", err)
	}

	// The API returns a path relative to the storage host.
	return c.baseURL + response.URL, nil
}

// GetSignedURL resolves an object to a time-limited download URL. A missing
// object yields ("", nil): absence is an answer, not a failure.
func (c *Client) GetSignedURL(ctx context.Context, objectKey string) (string, error) {
	url := fmt.Sprintf("%s/object/sign/%s/%s", c.baseURL, c.bucket, objectKey)

	payload := signRequest{ExpiresIn: int(signedURLTTL.Seconds())}
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusBadRequest {
		return "", nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("storage refused sign (status %d): %s", resp.StatusCode, string(body))
	}

	var response signResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("storage decode failed: %w", err)
	}

	return c.baseURL + response.SignedURL, nil
}

// Remove deletes the object. Callers on cascade paths treat a returned
// error as log-and-continue.
func (c *Client) Remove(ctx context.Context, objectKey string) error {
	url := fmt.Sprintf("%s/object/%s/%s", c.baseURL, c.bucket, objectKey)

	req, err := http.NewRequestWithContext(ctx, "DELETE", url, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("storage request failed: %w", err)
	}
	defer resp.Body.Close()

	// 404 counts as success: the object is gone either way, and the API
	// does not promise to report prior existence.
	if resp.StatusCode == http.StatusNotFound {
		return nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("storage refused delete (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", "application/json")
}
