package repository

import (
	"context"
	"errors"
	"time"

	"fukuro_studio/internal/domain/entities"
	"fukuro_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const QuotesProjectIDIndex = "project_id-index"

type quoteItem struct {
	ID          string                  `dynamodbav:"id"`
	ProjectID   string                  `dynamodbav:"project_id"`
	Request     entities.QuoteRequest   `dynamodbav:"request"`
	Breakdown   entities.QuoteBreakdown `dynamodbav:"breakdown"`
	Total       float64                 `dynamodbav:"total"`
	Status      string                  `dynamodbav:"status"`
	Source      string                  `dynamodbav:"source"`
	SubmittedAt string                  `dynamodbav:"submitted_at"`
	UpdatedAt   string                  `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists submitted quotes in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//
// The request and its breakdown are stored as nested maps; total is duplicated
// at the top level for console filtering.

type QuoteDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoAPI, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})

	var quotes []entities.Quote
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items, err := unmarshalQuotes(page.Items)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, items...)
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Quote, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(QuotesProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})

	quotes := make([]entities.Quote, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items, err := unmarshalQuotes(page.Items)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, items...)
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	now := formatTime(time.Now())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func unmarshalQuotes(raw []map[string]types.AttributeValue) ([]entities.Quote, error) {
	out := make([]entities.Quote, 0, len(raw))
	for _, item := range raw {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, fromQuoteItem(it))
	}
	return out, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:          q.ID,
		ProjectID:   q.ProjectID,
		Request:     q.Request,
		Breakdown:   q.Breakdown,
		Total:       q.Breakdown.Total,
		Status:      string(q.Status),
		Source:      string(q.Source),
		SubmittedAt: formatTime(q.SubmittedAt),
		UpdatedAt:   formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:          it.ID,
		ProjectID:   it.ProjectID,
		Request:     it.Request,
		Breakdown:   it.Breakdown,
		Status:      entities.QuoteStatus(it.Status),
		Source:      entities.QuoteSource(it.Source),
		SubmittedAt: parseTime(it.SubmittedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
