package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"enviromaster/internal/domain/entities"
	"enviromaster/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDocumentsTableName = "documents"

type documentItem struct {
	ID           string `dynamodbav:"id"`
	CustomerName string `dynamodbav:"customer_name"`
	Salesman     string `dynamodbav:"salesman,omitempty"`
	Status       string `dynamodbav:"status"`
	Payload      string `dynamodbav:"payload"`
	PDFKey       string `dynamodbav:"pdf_key,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// DocumentDynamoRepository persists Document entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The payload is stored as a JSON blob: it is written and read whole, never
// queried by inner field.

type DocumentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDocumentRepository = (*DocumentDynamoRepository)(nil)

func NewDocumentDynamoRepository(ddb *dynamodb.Client) *DocumentDynamoRepository {
	return &DocumentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOCUMENTS_TABLE", defaultDocumentsTableName),
	}
}

func (r *DocumentDynamoRepository) Create(ctx context.Context, d entities.Document) (entities.Document, error) {
	it, err := toDocumentItem(d)
	if err != nil {
		return entities.Document{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Document{}, err
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
		return entities.Document{}, err
	}
	return d, nil
}

func (r *DocumentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Document, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Document{}, err
	}
	if len(out.Item) == 0 {
		return entities.Document{}, nil
	}

	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Document{}, err
	}
	return fromDocumentItem(it)
}

func (r *DocumentDynamoRepository) List(ctx context.Context) ([]entities.Document, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	docs := make([]entities.Document, 0, len(out.Items))
	for _, item := range out.Items {
		var it documentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		d, err := fromDocumentItem(it)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, nil
}

func (r *DocumentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.DocumentStatus) (entities.Document, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *DocumentDynamoRepository) SetPDFKey(ctx context.Context, id, pdfKey string) (entities.Document, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #pdf_key = :pdf_key, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":pdf_key":    &types.AttributeValueMemberS{Value: pdfKey},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#pdf_key":    "pdf_key",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *DocumentDynamoRepository) UpdatePayload(ctx context.Context, id string, payload entities.DocumentPayload) (entities.Document, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return entities.Document{}, err
	}
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #payload = :payload, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":payload":    &types.AttributeValueMemberS{Value: string(raw)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#payload":    "payload",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *DocumentDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Document, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Document{}, nil
		}
		return entities.Document{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Document{}, nil
	}
	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Document{}, err
	}
	return fromDocumentItem(it)
}

func toDocumentItem(d entities.Document) (documentItem, error) {
	raw, err := json.Marshal(d.Payload)
	if err != nil {
		return documentItem{}, err
	}
	return documentItem{
		ID:           d.ID,
		CustomerName: d.CustomerName,
		Salesman:     d.Salesman,
		Status:       string(d.Status),
		Payload:      string(raw),
		PDFKey:       d.PDFKey,
		CreatedAt:    d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromDocumentItem(it documentItem) (entities.Document, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	var payload entities.DocumentPayload
	if it.Payload != "" {
		if err := json.Unmarshal([]byte(it.Payload), &payload); err != nil {
			return entities.Document{}, err
		}
	}

	return entities.Document{
		ID:           it.ID,
		CustomerName: it.CustomerName,
		Salesman:     it.Salesman,
		Status:       entities.DocumentStatus(it.Status),
		Payload:      payload,
		PDFKey:       it.PDFKey,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}
