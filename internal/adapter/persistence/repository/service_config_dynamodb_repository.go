package repository

import (
	"context"
	"encoding/json"
	"time"

	"enviromaster/internal/domain/entities"
	"enviromaster/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServiceConfigsTableName = "service_configs"

type serviceConfigItem struct {
	ServiceID string `dynamodbav:"service_id"`
	Version   int64  `dynamodbav:"version"`
	Config    string `dynamodbav:"config"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ServiceConfigDynamoRepository persists ServiceConfig entities in DynamoDB.
//
// Table requirements:
//   - PK: service_id (string)
//
// One row per service; upserts replace the whole config blob.
type ServiceConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceConfigRepository = (*ServiceConfigDynamoRepository)(nil)

func NewServiceConfigDynamoRepository(ddb *dynamodb.Client) *ServiceConfigDynamoRepository {
	return &ServiceConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_CONFIGS_TABLE", defaultServiceConfigsTableName),
	}
}

func (r *ServiceConfigDynamoRepository) GetByServiceID(ctx context.Context, serviceID string) (entities.ServiceConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"service_id": &types.AttributeValueMemberS{Value: serviceID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceConfig{}, nil
	}

	var it serviceConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceConfig{}, err
	}
	return fromServiceConfigItem(it), nil
}

func (r *ServiceConfigDynamoRepository) Upsert(ctx context.Context, c entities.ServiceConfig) (entities.ServiceConfig, error) {
	av, err := attributevalue.MarshalMap(toServiceConfigItem(c))
	if err != nil {
		return entities.ServiceConfig{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.ServiceConfig{}, err
	}
	return c, nil
}

func toServiceConfigItem(c entities.ServiceConfig) serviceConfigItem {
	return serviceConfigItem{
		ServiceID: c.ServiceID,
		Version:   c.Version,
		Config:    string(c.Config),
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromServiceConfigItem(it serviceConfigItem) entities.ServiceConfig {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ServiceConfig{
		ServiceID: it.ServiceID,
		Version:   it.Version,
		Config:    json.RawMessage(it.Config),
		UpdatedAt: updatedAt,
	}
}
