package lkdynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cockroachdb/errors"
	"github.com/stackmill/lambdakit/lkerr"
)

// Client is the subset of the DynamoDB API the store uses.
// *dynamodb.Client satisfies it.
type Client interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Store reads and writes typed values in a single-table layout. Reads
// strip key attributes before unmarshaling so storage keys never leak
// into domain values or API responses.
type Store struct {
	client Client
	table  string
}

// NewStore creates a Store for the given table.
func NewStore(client Client, table string) *Store {
	return &Store{client: client, table: table}
}

// Put marshals v and writes it under the given keys, overwriting any
// existing item.
func (s *Store) Put(ctx context.Context, pk, sk string, v any) error {
	item, err := s.marshal(pk, sk, v)
	if err != nil {
		return err
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	return errors.Wrap(err, "put item")
}

// Create writes v under the given keys and fails with a Conflict error
// when an item already exists there.
func (s *Store) Create(ctx context.Context, pk, sk string, v any) error {
	item, err := s.marshal(pk, sk, v)
	if err != nil {
		return err
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(pk)"),
	})
	var cond *types.ConditionalCheckFailedException
	if errors.As(err, &cond) {
		return lkerr.Wrap(err, lkerr.KindConflict, "item already exists")
	}
	return errors.Wrap(err, "create item")
}

// Get loads the item under the given keys into out. A missing item
// yields a NotFound error.
func (s *Store) Get(ctx context.Context, pk, sk string, out any) error {
	res, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			AttrPK: &types.AttributeValueMemberS{Value: pk},
			AttrSK: &types.AttributeValueMemberS{Value: sk},
		},
	})
	if err != nil {
		return errors.Wrap(err, "get item")
	}
	if len(res.Item) == 0 {
		return lkerr.NotFound("item not found")
	}
	return errors.Wrap(attributevalue.UnmarshalMap(StripKeys(res.Item), out), "unmarshal item")
}

// List loads all items under a partition key into out, which must be a
// pointer to a slice.
func (s *Store) List(ctx context.Context, pk string, out any) error {
	res, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.table),
		KeyConditionExpression: aws.String("pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: pk},
		},
	})
	if err != nil {
		return errors.Wrap(err, "query items")
	}
	return errors.Wrap(
		attributevalue.UnmarshalListOfMaps(StripKeysAll(res.Items), out),
		"unmarshal items")
}

func (s *Store) marshal(pk, sk string, v any) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshal item")
	}
	item[AttrPK] = &types.AttributeValueMemberS{Value: pk}
	item[AttrSK] = &types.AttributeValueMemberS{Value: sk}
	return item, nil
}
