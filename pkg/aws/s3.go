package aws

import (
	"context"
	"io"

	awssdk "github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// csvContentType is the content type of uploaded exports.
const csvContentType = "text/csv; charset=utf-8"

// S3 stores exports in S3. It implements inventory.Uploader.
type S3 struct {
	client s3iface.S3API
}

func NewS3(sess *session.Session) *S3 {
	return &S3{
		client: s3.New(sess),
	}
}

// Upload puts body into the specified bucket under key, replacing any existing object.
func (s *S3) Upload(ctx context.Context, bucket, key string, body io.ReadSeeker) error {
	req := s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        body,
		ContentType: awssdk.String(csvContentType),
	}
	_, err := s.client.PutObjectWithContext(ctx, &req)
	return err
}
