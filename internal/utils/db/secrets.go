package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func initSecretsConfig(ctx context.Context) (*secretsmanager.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	return secretsmanager.NewFromConfig(cfg), nil
}

// retrieveCredentials usa DB_USERNAME/DB_PASSWORD quando definidos;
// senão busca o segredo DB_SECRET_ID no Secrets Manager.
func retrieveCredentials(ctx context.Context, p Parametros) (string, string, error) {
	if p.Username != "" && p.Password != "" {
		return p.Username, p.Password, nil
	}
	if p.SecretID == "" {
		return "", "", fmt.Errorf("credenciais do banco ausentes: defina DB_USERNAME/DB_PASSWORD ou DB_SECRET_ID")
	}

	secrets, err := initSecretsConfig(ctx)
	if err != nil {
		return "", "", fmt.Errorf("configuração AWS: %w", err)
	}
	input := &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(p.SecretID),
		VersionStage: aws.String("AWSCURRENT"),
	}

	result, err := secrets.GetSecretValue(ctx, input)
	if err != nil {
		return "", "", fmt.Errorf("ler segredo %s: %w", p.SecretID, err)
	}

	return parseCredentials(aws.ToString(result.SecretString))
}

func parseCredentials(secretString string) (string, string, error) {
	var secret Credentials
	if err := json.Unmarshal([]byte(secretString), &secret); err != nil {
		return "", "", fmt.Errorf("segredo do banco malformado: %w", err)
	}
	return secret.Username, secret.Password, nil
}
