// internal/application/usecase/upload_usecase_test.go
package usecase

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusink/internal/domain/asset"
	"campusink/internal/domain/common"
)

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{10, 120, 80, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func uploadReq(t *testing.T) asset.UploadRequest {
	data := jpegBytes(t, 100, 100)
	return asset.UploadRequest{
		Data:        data,
		ContentType: "image/jpeg",
		Size:        int64(len(data)),
		Folder:      "designs",
		OwnerID:     "user-123",
	}
}

func TestUploadRejectsDisallowedTypeBeforeStorage(t *testing.T) {
	storage := &fakeStorage{}
	uc := NewUploadUsecase(storage)

	req := uploadReq(t)
	req.ContentType = "text/html"

	_, err := uc.Upload(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, common.KindValidation, mustAppError(t, err).Kind)
	assert.Empty(t, storage.writes, "no storage write may happen on validation failure")
}

func TestUploadRejectsOversizeBeforeOptimization(t *testing.T) {
	storage := &fakeStorage{}
	uc := NewUploadUsecase(storage)

	req := uploadReq(t)
	req.Size = asset.MaxUploadBytes + 1

	_, err := uc.Upload(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, mustAppError(t, err).Message, "too large")
	assert.Empty(t, storage.writes)
}

func TestUploadRequiresOwnerIdentity(t *testing.T) {
	uc := NewUploadUsecase(&fakeStorage{})

	req := uploadReq(t)
	req.OwnerID = ""

	_, err := uc.Upload(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, common.KindAuth, mustAppError(t, err).Kind)
}

func TestUploadOptimizedStoresReencodedJPEG(t *testing.T) {
	storage := &fakeStorage{bucket: "campusink-assets"}
	uc := NewUploadUsecase(storage)

	req := uploadReq(t)
	req.Optimize = true

	stored, err := uc.Upload(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "image/jpeg", stored.ContentType)
	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]{16}\.jpg$`), stored.FileName)
	assert.Equal(t, "designs/user-123/"+stored.FileName, stored.Path)
	assert.Equal(t, "https://storage.googleapis.com/campusink-assets/"+stored.Path, stored.URL)

	require.Len(t, storage.writes, 1)
	assert.Equal(t, stored.Path, storage.writes[0].path)
	assert.Equal(t, []string{stored.Path}, storage.published)
	assert.EqualValues(t, len(storage.writes[0].data), stored.Size)
}

func TestUploadPassThroughKeepsOriginalBytesAndType(t *testing.T) {
	storage := &fakeStorage{}
	uc := NewUploadUsecase(storage)

	req := uploadReq(t)
	req.ContentType = "image/png"
	req.Optimize = false

	stored, err := uc.Upload(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "image/png", stored.ContentType)
	assert.True(t, strings.HasSuffix(stored.FileName, ".png"))
	require.Len(t, storage.writes, 1)
	assert.Equal(t, req.Data, storage.writes[0].data, "bytes pass through unchanged")
}

func TestUploadSurfacesStorageFailureAsProcessing(t *testing.T) {
	storage := &fakeStorage{writeErr: assert.AnError}
	uc := NewUploadUsecase(storage)

	_, err := uc.Upload(context.Background(), uploadReq(t))
	require.Error(t, err)
	assert.Equal(t, common.KindProcessing, mustAppError(t, err).Kind)
}

func TestUploadSurfacesPublishFailureAsProcessing(t *testing.T) {
	storage := &fakeStorage{publishErr: assert.AnError}
	uc := NewUploadUsecase(storage)

	_, err := uc.Upload(context.Background(), uploadReq(t))
	require.Error(t, err)
	assert.Equal(t, common.KindProcessing, mustAppError(t, err).Kind)
}

func mustAppError(t *testing.T, err error) *common.AppError {
	t.Helper()
	ae, ok := common.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	return ae
}
