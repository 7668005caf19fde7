package probes

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hazz-dev/svccheck/internal/checker"
	"github.com/hazz-dev/svccheck/internal/config"
)

const (
	minioService = "MinIO"
	minioClient  = "go-minio"
	minioRegion  = "us-east-1"
)

// MinIO checks an S3-compatible object store: it makes a bucket, uploads an
// object and downloads it again.
func MinIO(env config.Env) checker.Check {
	host := config.String(env, "MINIO_HOST", "minio")
	port := config.Port(env, "MINIO_PORT", 9000)
	accessKey := config.String(env, "MINIO_ACCESS_KEY", "minio")
	secretKey := config.String(env, "MINIO_SECRET_KEY", "minio12345")

	return checker.Check{
		Service: minioService,
		Client:  minioClient,
		Gate: checker.Gate{
			Flag:           "ENABLE_MINIO",
			DefaultEnabled: true,
			Host:           host,
			Port:           port,
		},
		Probe: func(ctx context.Context) (string, error) {
			client, err := minio.New(hostPort(host, port), &minio.Options{
				Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
				Secure: false,
				Region: minioRegion,
			})
			if err != nil {
				return "", fmt.Errorf("creating client: %w", err)
			}

			bucket := healthName(uuid.New())
			if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: minioRegion}); err != nil {
				return "", fmt.Errorf("making bucket %s: %w", bucket, err)
			}

			object := fmt.Sprintf("test-%s.txt", uuid.New())
			content := []byte(fmt.Sprintf("%s %s", minioClient, uuid.New()))
			_, err = client.PutObject(ctx, bucket, object, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
				ContentType: "text/plain",
			})
			if err != nil {
				return "", fmt.Errorf("uploading %s: %w", object, err)
			}

			obj, err := client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
			if err != nil {
				return "", fmt.Errorf("fetching %s: %w", object, err)
			}
			defer obj.Close()

			got, err := io.ReadAll(obj)
			if err != nil {
				return "", fmt.Errorf("reading %s: %w", object, err)
			}
			if !bytes.Equal(got, content) {
				return "", fmt.Errorf("unexpected content: got %q, want %q", got, content)
			}

			return fmt.Sprintf("Uploaded and retrieved object %s in bucket %s", object, bucket), nil
		},
	}
}
