package services

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/catalog-service/internal/config"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type mockS3 struct {
	s3iface.S3API
	mock.Mock
}

func (m *mockS3) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	args := m.Called(aws.StringValue(input.Key), aws.StringValue(input.ContentType))
	if err := args.Error(0); err != nil {
		return nil, err
	}
	return &s3.PutObjectOutput{}, nil
}

type upload struct {
	name string
	data []byte
}

func pictureHeaders(t *testing.T, uploads ...upload) []*multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, u := range uploads {
		part, err := w.CreateFormFile("pictures", u.name)
		require.NoError(t, err)
		_, err = part.Write(u.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["pictures"]
}

func TestUploadProductPictures_S3(t *testing.T) {
	client := new(mockS3)
	client.On("PutObjectWithContext", mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "products/") && strings.HasSuffix(key, ".png")
	}), "image/png").Return(nil).Twice()

	svc := NewStorageServiceWithClient(client, config.AWSConfig{
		Region:        "us-east-1",
		S3Bucket:      "catalog",
		MaxUploadSize: 1 << 20,
	})
	require.True(t, svc.UsesS3())

	headers := pictureHeaders(t,
		upload{name: "a.png", data: pngHeader},
		upload{name: "copy-of-a.png", data: pngHeader},
	)
	results, err := svc.UploadProductPictures(context.Background(), headers)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, results[0].Key, results[1].Key, "identical content shares a key")
	assert.Equal(t, "https://catalog.s3.us-east-1.amazonaws.com/"+results[0].Key, results[0].URL)
	assert.Equal(t, "image/png", results[0].MimeType)
	client.AssertExpectations(t)
}

func TestUploadProductPictures_CloudFrontURL(t *testing.T) {
	client := new(mockS3)
	client.On("PutObjectWithContext", mock.Anything, "image/png").Return(nil).Once()

	svc := NewStorageServiceWithClient(client, config.AWSConfig{CloudFrontURL: "https://cdn.example.com/"})
	results, err := svc.UploadProductPictures(context.Background(), pictureHeaders(t, upload{name: "a.png", data: pngHeader}))

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/"+results[0].Key, results[0].URL)
}

func TestUploadProductPictures_S3Failure(t *testing.T) {
	client := new(mockS3)
	client.On("PutObjectWithContext", mock.Anything, mock.Anything).Return(errors.New("access denied"))

	svc := NewStorageServiceWithClient(client, config.AWSConfig{S3Bucket: "catalog"})
	_, err := svc.UploadProductPictures(context.Background(), pictureHeaders(t, upload{name: "a.png", data: pngHeader}))

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidation)
}

func TestUploadProductPictures_Local(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewStorageService(config.AWSConfig{
		LocalUploadDir: dir,
		PublicBaseURL:  "http://localhost:8080/",
	})
	require.NoError(t, err)
	require.False(t, svc.UsesS3())

	results, err := svc.UploadProductPictures(context.Background(), pictureHeaders(t, upload{name: "a.png", data: pngHeader}))
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "http://localhost:8080/uploads/"+results[0].Key, results[0].URL)

	stored, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(results[0].Key)))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, stored)
}

func TestUploadProductPictures_Rejected(t *testing.T) {
	svc, err := NewStorageService(config.AWSConfig{LocalUploadDir: t.TempDir(), MaxUploadSize: 8})
	require.NoError(t, err)

	tests := []struct {
		name   string
		upload upload
	}{
		{name: "not an image", upload: upload{name: "notes.png", data: []byte("hello")}},
		{name: "too large", upload: upload{name: "big.png", data: pngHeader}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UploadProductPictures(context.Background(), pictureHeaders(t, tt.upload))
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	_, err = svc.UploadProductPictures(context.Background(), nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUploadProductPictures_TypeFromContent(t *testing.T) {
	svc, err := NewStorageService(config.AWSConfig{LocalUploadDir: t.TempDir()})
	require.NoError(t, err)

	tests := []struct {
		name     string
		upload   upload
		mimeType string
		ext      string
	}{
		{name: "jpeg named png", upload: upload{name: "photo.png", data: []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00")}, mimeType: "image/jpeg", ext: ".jpg"},
		{name: "webp", upload: upload{name: "photo", data: []byte("RIFF\x24\x00\x00\x00WEBPVP8 ")}, mimeType: "image/webp", ext: ".webp"},
		{name: "gif", upload: upload{name: "anim.gif", data: []byte("GIF89a\x01\x00\x01\x00")}, mimeType: "image/gif", ext: ".gif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := svc.UploadProductPictures(context.Background(), pictureHeaders(t, tt.upload))
			require.NoError(t, err)

			assert.Equal(t, tt.mimeType, results[0].MimeType)
			assert.True(t, strings.HasSuffix(results[0].Key, tt.ext), results[0].Key)
		})
	}
}
