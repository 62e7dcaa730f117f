package aws

import (
	"context"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/aws/aws-sdk-go/service/secretsmanager/secretsmanageriface"
	"github.com/pkg/errors"
)

type SecretsManager struct {
	client secretsmanageriface.SecretsManagerAPI
}

func NewSecretsManager(sess *session.Session) *SecretsManager {
	return &SecretsManager{
		client: secretsmanager.New(sess),
	}
}

// SecretValue returns the string value of the secret with the specified ID.
func (s *SecretsManager) SecretValue(ctx context.Context, id string) (string, error) {
	req := secretsmanager.GetSecretValueInput{SecretId: &id}
	res, err := s.client.GetSecretValueWithContext(ctx, &req)
	if err != nil {
		return "", err
	}

	if res.SecretString == nil {
		return "", errors.Errorf("secret '%s' has no string value", id)
	}

	return *res.SecretString, nil
}
