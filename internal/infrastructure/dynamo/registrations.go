package dynamo

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/wibes/draw-api/internal/domain"
)

// RegistrationRepo maps a (name, phone) pair to its participant handle.
// The table's partition key is the pair itself, so a conditional put gives
// the uniqueness guarantee DynamoDB secondary indexes cannot.
type RegistrationRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewRegistrationRepo(client *dynamodb.Client, tableName string) *RegistrationRepo {
	return &RegistrationRepo{client: client, tableName: tableName}
}

// pairKey joins name and phone into the partition key value. Both parts are
// escaped first, so a "#" inside either field can never collide with the
// delimiter and distinct pairs always derive distinct keys.
func pairKey(name, phone string) string {
	return url.QueryEscape(name) + "#" + url.QueryEscape(phone)
}

// Get returns the participant handle registered for the pair, or ErrNotFound.
func (r *RegistrationRepo) Get(ctx context.Context, name, phone string) (string, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("name_phone", pairKey(name, phone)),
	})
	if err != nil {
		return "", err
	}
	if out.Item == nil {
		return "", fmt.Errorf("registration %q: %w", pairKey(name, phone), domain.ErrNotFound)
	}
	id, ok := out.Item["participant_id"].(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("registration %q has no participant_id", pairKey(name, phone))
	}
	return id.Value, nil
}

// Claim records the pair→handle mapping, failing with ErrConflict when the
// pair is already claimed. Callers treat the conflict as "lost the race" and
// re-read rather than as a failure.
func (r *RegistrationRepo) Claim(ctx context.Context, name, phone, participantID string) error {
	_, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"name_phone":     &types.AttributeValueMemberS{Value: pairKey(name, phone)},
			"participant_id": &types.AttributeValueMemberS{Value: participantID},
		},
		ConditionExpression: aws.String("attribute_not_exists(name_phone)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return fmt.Errorf("pair already registered: %w", domain.ErrConflict)
		}
		return err
	}
	return nil
}
