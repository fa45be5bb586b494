package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/wibes/draw-api/internal/domain"
)

// ParticipantRepo provides typed DynamoDB operations for the participants table.
type ParticipantRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewParticipantRepo(client *dynamodb.Client, tableName string) *ParticipantRepo {
	return &ParticipantRepo{client: client, tableName: tableName}
}

func (r *ParticipantRepo) Put(ctx context.Context, p *domain.Participant) error {
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal participant: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *ParticipantRepo) Get(ctx context.Context, participantID string) (*domain.Participant, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("participant_id", participantID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("participant %s: %w", participantID, domain.ErrNotFound)
	}
	var p domain.Participant
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update applies a partial update. It fails with ErrNotFound when the handle
// no longer references a stored participant, so a stale token cannot
// resurrect a deleted record.
func (r *ParticipantRepo) Update(ctx context.Context, participantID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("participant_id", participantID),
		UpdateExpression:          aws.String(ue.Expr),
		ConditionExpression:       aws.String("attribute_exists(participant_id)"),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return fmt.Errorf("participant %s: %w", participantID, domain.ErrNotFound)
		}
		return err
	}
	return nil
}

// Delete removes a participant record. Used only to clean up a provisional
// record after losing the registration race.
func (r *ParticipantRepo) Delete(ctx context.Context, participantID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("participant_id", participantID),
	})
	return err
}

// Scan returns every participant record. The campaign audience is small
// enough that paging is not worth the complexity here.
func (r *ParticipantRepo) Scan(ctx context.Context) ([]domain.Participant, error) {
	var participants []domain.Participant
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var page []domain.Participant
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		participants = append(participants, page...)
		if len(out.LastEvaluatedKey) == 0 {
			return participants, nil
		}
		startKey = out.LastEvaluatedKey
	}
}
