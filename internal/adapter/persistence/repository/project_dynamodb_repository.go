package repository

import (
	"context"

	"fukuro_studio/internal/domain/entities"
	"fukuro_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const ProjectsNameKeyIndex = "name_key-index"

type projectItem struct {
	ID           string                 `dynamodbav:"id"`
	Name         string                 `dynamodbav:"name"`
	NameKey      string                 `dynamodbav:"name_key"`
	QuoteCount   int                    `dynamodbav:"quote_count"`
	Links        []entities.Link        `dynamodbav:"links,omitempty"`
	Deliverables []entities.Deliverable `dynamodbav:"deliverables,omitempty"`
	CreatedAt    string                 `dynamodbav:"created_at"`
	UpdatedAt    string                 `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists projects in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: name_key-index (PK: name_key)

type ProjectDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb DynamoAPI, tableName string) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	return r.put(ctx, p, aws.String("attribute_not_exists(#id)"))
}

// Save replaces the whole item.
func (r *ProjectDynamoRepository) Save(ctx context.Context, p entities.Project) (entities.Project, error) {
	return r.put(ctx, p, nil)
}

func (r *ProjectDynamoRepository) put(ctx context.Context, p entities.Project, condition *string) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
	}

	in := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}
	if condition != nil {
		in.ConditionExpression = condition
		in.ExpressionAttributeNames = map[string]string{"#id": "id"}
	}
	if _, err := r.ddb.PutItem(ctx, in); err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

// GetByName matches names ignoring case and surrounding blanks.
func (r *ProjectDynamoRepository) GetByName(ctx context.Context, name string) (entities.Project, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ProjectsNameKeyIndex),
		KeyConditionExpression: aws.String("name_key = :nk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nk": &types.AttributeValueMemberS{Value: entities.NameKey(name)},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Items) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) List(ctx context.Context) ([]entities.Project, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})

	projects := make([]entities.Project, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it projectItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			projects = append(projects, fromProjectItem(it))
		}
	}
	return projects, nil
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:           p.ID,
		Name:         p.Name,
		NameKey:      entities.NameKey(p.Name),
		QuoteCount:   p.QuoteCount,
		Links:        p.Links,
		Deliverables: p.Deliverables,
		CreatedAt:    formatTime(p.CreatedAt),
		UpdatedAt:    formatTime(p.UpdatedAt),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	return entities.Project{
		ID:           it.ID,
		Name:         it.Name,
		QuoteCount:   it.QuoteCount,
		Links:        it.Links,
		Deliverables: it.Deliverables,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
