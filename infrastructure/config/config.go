package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion string

	// DynamoDB table layout
	TodoTable        string
	RelationTable    string
	CounterTable     string
	UserCreatedIndex string

	// Local development store (SAM local / dynamodb-local). When
	// DynamoDBEndpoint is set the client binds to it with the static
	// credentials below instead of the ambient chain.
	DynamoDBEndpoint  string
	DynamoDBAccessID  string
	DynamoDBAccessKey string

	// Cognito token verification
	CognitoIssuer   string
	CognitoAudience string

	// Logging
	LogLevel string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "ap-northeast-1"),

		TodoTable:        getEnv("TODO_TABLE", "Todos"),
		RelationTable:    getEnv("RELATION_TABLE", "FollowRelation"),
		CounterTable:     getEnv("COUNTER_TABLE", "SequenceCounters"),
		UserCreatedIndex: getEnv("USER_CREATED_INDEX", "user_name-created_at-index"),

		DynamoDBEndpoint:  getEnv("DYNAMODB_ENDPOINT", ""),
		DynamoDBAccessID:  getEnv("DYNAMODB_ACCESS_ID", ""),
		DynamoDBAccessKey: getEnv("DYNAMODB_ACCESS_KEY", ""),

		CognitoIssuer:   getEnv("COGNITO_ISSUER", ""),
		CognitoAudience: getEnv("COGNITO_AUDIENCE", ""),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.IsProduction() {
		if c.CognitoIssuer == "" {
			return fmt.Errorf("COGNITO_ISSUER is required in production")
		}
		if c.CognitoAudience == "" {
			return fmt.Errorf("COGNITO_AUDIENCE is required in production")
		}
		if c.DynamoDBEndpoint != "" {
			return fmt.Errorf("DYNAMODB_ENDPOINT must not be set in production")
		}
	}
	if c.DynamoDBEndpoint != "" && (c.DynamoDBAccessID == "" || c.DynamoDBAccessKey == "") {
		return fmt.Errorf("DYNAMODB_ACCESS_ID and DYNAMODB_ACCESS_KEY are required with DYNAMODB_ENDPOINT")
	}
	return nil
}

// IsProduction reports whether the process runs against the managed store
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// IsLocalStore reports whether a local development endpoint is configured
func (c *Config) IsLocalStore() bool {
	return c.DynamoDBEndpoint != ""
}

// getEnv gets an environment variable with a fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvBool gets a boolean environment variable with a fallback
func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
