package uploads

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ObjectStorage is what the upload service needs from the object store:
// a put and a public URL for the stored object.
type ObjectStorage interface {
	Upload(ctx context.Context, bucket, path, contentType string, data []byte) error
	PublicURL(bucket, path string) string
}

// SupabaseStorage talks to the Supabase storage HTTP API with the project's
// service_role key (the anon key cannot write buckets).
type SupabaseStorage struct {
	BaseURL   string
	SecretKey string
	Client    *http.Client
}

func (s *SupabaseStorage) Upload(ctx context.Context, bucket, path, contentType string, data []byte) error {
	if s.Client == nil {
		s.Client = &http.Client{Timeout: 30 * time.Second}
	}
	if s.BaseURL == "" {
		return fmt.Errorf("supabase: SUPABASE_URL is not set")
	}
	if s.SecretKey == "" {
		return fmt.Errorf("supabase: SUPABASE_SECRET_KEY is not set")
	}
	base := strings.TrimRight(s.BaseURL, "/")
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", base, bucket, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	// Match supabase-js: both apikey and Authorization Bearer carry the same key.
	req.Header.Set("apikey", s.SecretKey)
	req.Header.Set("Authorization", "Bearer "+s.SecretKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("supabase request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("supabase error: status %d body: %s", resp.StatusCode, string(body))
	}
	return nil
}

// PublicURL builds the public object URL; the bucket must be public.
func (s *SupabaseStorage) PublicURL(bucket, path string) string {
	base := strings.TrimRight(s.BaseURL, "/")
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", base, bucket, path)
}
