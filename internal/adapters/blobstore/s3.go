package blobstore

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Store sube adjuntos del expediente a un bucket y devuelve la URL pública.
type S3Store struct {
	client *s3.Client
	bucket string
	region string
}

// NewS3Store resuelve credenciales con la cadena estándar del SDK (env,
// perfil, rol de instancia).
func NewS3Store(ctx context.Context, bucket, region string) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("cargando config de AWS: %w", err)
	}

	client := s3.New(s3.Options{
		Region:       cfg.Region,
		Credentials:  cfg.Credentials,
		HTTPClient:   cfg.HTTPClient,
		BaseEndpoint: cfg.BaseEndpoint,
	})

	return &S3Store{client: client, bucket: bucket, region: region}, nil
}

// Upload guarda el archivo bajo records/<uuid><ext> para evitar colisiones
// de nombre entre subidas.
func (s *S3Store) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	key := "records/" + uuid.NewString() + strings.ToLower(path.Ext(filename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        r,
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("subiendo %s: %w", key, err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
