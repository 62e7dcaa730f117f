package aws

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/aws/aws-sdk-go/service/secretsmanager/secretsmanageriface"
	"github.com/google/go-cmp/cmp"
)

// fakeS3 records the objects put into it.
type fakeS3 struct {
	s3iface.S3API
	puts map[string]string
}

func (f *fakeS3) PutObjectWithContext(ctx context.Context, in *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.puts[*in.Bucket+"/"+*in.Key] = *in.ContentType + ":" + string(b)
	return &s3.PutObjectOutput{}, nil
}

// fakeSecretsManager returns fixed secrets.
type fakeSecretsManager struct {
	secretsmanageriface.SecretsManagerAPI
	secrets map[string]*string
}

func (f *fakeSecretsManager) GetSecretValueWithContext(ctx context.Context, in *secretsmanager.GetSecretValueInput, opts ...request.Option) (*secretsmanager.GetSecretValueOutput, error) {
	return &secretsmanager.GetSecretValueOutput{SecretString: f.secrets[*in.SecretId]}, nil
}

func TestS3Upload(t *testing.T) {
	client := &fakeS3{puts: map[string]string{}}
	s := &S3{client: client}

	if err := s.Upload(context.Background(), "bucket", "SEEK-Jobs/out.csv", strings.NewReader("name\nrepo\n")); err != nil {
		t.Fatal(err)
	}

	want := map[string]string{"bucket/SEEK-Jobs/out.csv": "text/csv; charset=utf-8:name\nrepo\n"}
	if diff := cmp.Diff(want, client.puts); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestSecretValue(t *testing.T) {
	token := "secret-token"
	s := &SecretsManager{client: &fakeSecretsManager{secrets: map[string]*string{"repoinv/token": &token}}}

	got, err := s.SecretValue(context.Background(), "repoinv/token")
	if err != nil {
		t.Fatal(err)
	}
	if got != token {
		t.Errorf("expected %s, got %s", token, got)
	}

	if _, err := s.SecretValue(context.Background(), "binary"); err == nil {
		t.Error("expected an error for a secret without a string value")
	}
}
