package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/lotline/auctioneer/pkg/models"
	"github.com/lotline/auctioneer/pkg/storage"
)

// ApplySettlement commits the outcome of a successful charge in one atomic
// write: the winner's remaining pre-approved balance drops by amount (in minor
// units, version-checked against the profile read before the charge) and the
// item flips SETTLING -> SETTLED. If either condition fails nothing is
// written, so a settlement can never half-apply.
func (s *Store) ApplySettlement(ctx context.Context, itemID string, profile *models.Profile, amount int64) error {
	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Debit the winner's pre-approved balance.
				Update: &types.Update{
					TableName: aws.String(s.Tables.Profiles),
					Key: map[string]types.AttributeValue{
						"user_id": &types.AttributeValueMemberS{Value: profile.UserID},
					},
					UpdateExpression:    aws.String("SET preapproval_amount = preapproval_amount - :amount, version = version + :inc"),
					ConditionExpression: aws.String("version = :version"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", amount)},
						":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", profile.Version)},
						":inc":     &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
			{
				// Operation 2: Mark the item settled, guarded by the lease.
				Update: &types.Update{
					TableName: aws.String(s.Tables.Items),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: itemID},
					},
					UpdateExpression:    aws.String("SET #status = :settled"),
					ConditionExpression: aws.String("#status = :settling"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":settled":  &types.AttributeValueMemberS{Value: string(models.ItemSettled)},
						":settling": &types.AttributeValueMemberS{Value: string(models.ItemSettling)},
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		var txc *types.TransactionCanceledException
		if errors.As(err, &txc) {
			for _, reason := range txc.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return storage.ErrProfileConflict
				}
			}
		}
		return fmt.Errorf("failed to execute settlement write: %w", err)
	}

	return nil
}
