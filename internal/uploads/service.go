// Package uploads compresses listing photos and pushes them to object
// storage, returning the public URL stored on the listing.
package uploads

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// listingImageBucket is the public bucket holding listing photos.
const listingImageBucket = "oferty-zdjecia"

type Service struct {
	Storage ObjectStorage
}

// UploadListingImage compresses the image and stores it under a
// timestamp-random name, returning the public URL. Any failure aborts the
// caller's submission step; there is no silent skip.
func (s *Service) UploadListingImage(ctx context.Context, data []byte) (string, error) {
	compressed, err := Compress(data)
	if err != nil {
		return "", err
	}
	path := fmt.Sprintf("%d-%s.jpg", time.Now().UnixMilli(), uuid.NewString())
	if err := s.Storage.Upload(ctx, listingImageBucket, path, "image/jpeg", compressed); err != nil {
		return "", err
	}
	return s.Storage.PublicURL(listingImageBucket, path), nil
}
