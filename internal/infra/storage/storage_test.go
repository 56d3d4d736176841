package storage

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/delivery-marketplace/internal/config"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 7 {
		img.Set(x, x%h, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestToWebP_ShrinksLongEdge(t *testing.T) {
	out, err := ToWebP(bytes.NewReader(pngBytes(t, 2048, 512)))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, MaxEdge, cfg.Width)
	assert.Equal(t, 256, cfg.Height)
}

func TestToWebP_KeepsSmallImages(t *testing.T) {
	out, err := ToWebP(bytes.NewReader(pngBytes(t, 40, 30)))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 30, cfg.Height)
}

func TestToWebP_RejectsGarbage(t *testing.T) {
	_, err := ToWebP(strings.NewReader("not an image"))
	assert.ErrorIs(t, err, ErrInvalidImage)
}

// pngHeader is a PNG that stops after its IHDR chunk. Only the header is
// needed for the declared dimensions.
func pngHeader(w, h uint32) []byte {
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], w)
	binary.BigEndian.PutUint32(ihdr[4:], h)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 0 // greyscale

	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))
	chunk := append([]byte("IHDR"), ihdr...)
	buf.Write(chunk)
	_ = binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func TestToWebP_RejectsOversizedDimensions(t *testing.T) {
	_, err := ToWebP(bytes.NewReader(pngHeader(12000, 12000)))
	require.ErrorIs(t, err, ErrInvalidImage)
	assert.Contains(t, err.Error(), "12000x12000")
}

func TestToWebP_AllowsExactPixelLimit(t *testing.T) {
	_, err := ToWebP(bytes.NewReader(pngHeader(MaxPixels/1000, 1000)))
	require.ErrorIs(t, err, ErrInvalidImage)
	assert.NotContains(t, err.Error(), "pixel limit")
}

type fakePutter struct {
	in  *s3.PutObjectInput
	err error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	return &s3.PutObjectOutput{}, f.err
}

func TestProfileImages_UploadsWebP(t *testing.T) {
	fp := &fakePutter{}
	up := &S3Uploader{client: fp, bucket: "media", baseURL: "http://minio:9000/media"}

	url, err := NewProfileImages(up).SaveProfileImage(context.Background(), 42, bytes.NewReader(pngBytes(t, 64, 64)))
	require.NoError(t, err)

	require.NotNil(t, fp.in)
	assert.Equal(t, "media", *fp.in.Bucket)
	assert.Equal(t, "image/webp", *fp.in.ContentType)
	assert.True(t, strings.HasPrefix(*fp.in.Key, "profiles/42/"))
	assert.True(t, strings.HasSuffix(*fp.in.Key, ".webp"))
	assert.Equal(t, "http://minio:9000/media/"+*fp.in.Key, url)

	body, err := io.ReadAll(fp.in.Body)
	require.NoError(t, err)
	assert.Equal(t, int64(len(body)), *fp.in.ContentLength)
}

func TestProfileImages_PropagatesUploadError(t *testing.T) {
	up := &S3Uploader{client: &fakePutter{err: errors.New("boom")}, bucket: "media"}

	_, err := NewProfileImages(up).SaveProfileImage(context.Background(), 1, bytes.NewReader(pngBytes(t, 8, 8)))
	assert.Error(t, err)
}

func TestPublicBaseURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com",
		publicBaseURL(&config.Config{S3PublicBaseURL: "https://cdn.example.com/"}))
	assert.Equal(t, "http://localhost:9000/bucket",
		publicBaseURL(&config.Config{S3Endpoint: "http://localhost:9000", S3Bucket: "bucket"}))
	assert.Equal(t, "https://b.s3.eu-west-1.amazonaws.com",
		publicBaseURL(&config.Config{S3Bucket: "b", S3Region: "eu-west-1"}))
}
