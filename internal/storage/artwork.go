package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"

	"github.com/centurialsign/sgpg-api/internal/config"
)

const maxPreviewWidth = 1600

// ArtworkStorage guarda as provas de arte das OS em um bucket
// S3-compatível, sempre como webp reduzido.
type ArtworkStorage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewArtworkStorage(cfg *config.Config) *ArtworkStorage {
	if cfg.S3Bucket == "" || cfg.S3AccessKey == "" {
		return nil
	}

	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
		UsePathStyle: true,
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
	}

	publicURL := strings.TrimSuffix(cfg.S3PublicURL, "/")
	if publicURL == "" {
		publicURL = strings.TrimSuffix(cfg.S3Endpoint, "/")
	}

	return &ArtworkStorage{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		publicURL: publicURL,
	}
}

func (s *ArtworkStorage) Enabled() bool {
	return s != nil
}

// UploadPreview reduz a imagem, converte para webp e envia ao bucket.
// Retorna a URL pública do objeto.
func (s *ArtworkStorage) UploadPreview(
	ctx context.Context,
	key string,
	img image.Image,
) (string, error) {

	img = downscale(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key), nil
}

func downscale(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxPreviewWidth {
		return img
	}

	h := b.Dy() * maxPreviewWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxPreviewWidth, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
