package supabase

import "time"

// How long a signed download URL stays valid.
const signedURLTTL = 1 * time.Hour

type signRequest struct {
	ExpiresIn int `json:"expiresIn"`
}

type signResponse struct {
	SignedURL string `json:"signedURL"`
}

type signedUploadResponse struct {
	URL   string `json:"url"`
	Token string `json:"token"`
}
