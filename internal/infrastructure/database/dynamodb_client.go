package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// Options configures the DynamoDB connection.
//
// When Endpoint is set (DynamoDB Local, e.g. http://dynamodb:8000) static dummy
// credentials are used; otherwise the default AWS credential chain applies.
type Options struct {
	Region   string
	Endpoint string
}

// ConnectDynamoDB creates a DynamoDB client.
func ConnectDynamoDB(ctx context.Context, opts Options) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	}), nil
}

func NewDynamoDBConfig(ctx context.Context, opts Options) (aws.Config, error) {
	region := opts.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	if opts.Endpoint != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// TableSpec describes a table keyed by "id" with optional single-key GSIs.
type TableSpec struct {
	Name string
	// GSIs maps index name to its string partition key attribute.
	GSIs map[string]string
}

// EnsureTables creates the missing tables (on-demand billing). Existing tables
// are left untouched.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client, specs []TableSpec, log *zap.Logger) error {
	for _, spec := range specs {
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.Name)})
		if err == nil {
			continue
		}
		var nf *types.ResourceNotFoundException
		if !errors.As(err, &nf) {
			return fmt.Errorf("describe table %s: %w", spec.Name, err)
		}

		if _, err := ddb.CreateTable(ctx, createTableInput(spec)); err != nil {
			return fmt.Errorf("create table %s: %w", spec.Name, err)
		}
		log.Info("[database] table created", zap.String("table", spec.Name), zap.Int("gsis", len(spec.GSIs)))
	}
	return nil
}

func createTableInput(spec TableSpec) *dynamodb.CreateTableInput {
	attrs := []types.AttributeDefinition{
		{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
	}
	var gsis []types.GlobalSecondaryIndex
	for index, key := range spec.GSIs {
		attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(key), AttributeType: types.ScalarAttributeTypeS})
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName:  aws.String(index),
			KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String(key), KeyType: types.KeyTypeHash}},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	return &dynamodb.CreateTableInput{
		TableName:              aws.String(spec.Name),
		AttributeDefinitions:   attrs,
		KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash}},
		GlobalSecondaryIndexes: gsis,
		BillingMode:            types.BillingModePayPerRequest,
	}
}
