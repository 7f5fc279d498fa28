// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package counter

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

// EnsureTable creates the counter table, with the same shape the stack provisions, when
// it does not exist yet.  It waits until a created table is active.  The returned bool
// reports whether a table was created.
func EnsureTable(ctx context.Context, svc dynamodbiface.DynamoDBAPI, table string) (bool, error) {
	_, err := svc.DescribeTableWithContext(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(table),
	})

	if err == nil {
		return false, nil
	}

	var awsErr awserr.Error
	if !errors.As(err, &awsErr) || awsErr.Code() != dynamodb.ErrCodeResourceNotFoundException {
		return false, fmt.Errorf("unable to describe table %s: %w", table, err)
	}

	_, err = svc.CreateTableWithContext(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(table),
		AttributeDefinitions: []*dynamodb.AttributeDefinition{
			{
				AttributeName: aws.String(PartitionKeyAttribute),
				AttributeType: aws.String(dynamodb.ScalarAttributeTypeS),
			},
		},
		KeySchema: []*dynamodb.KeySchemaElement{
			{
				AttributeName: aws.String(PartitionKeyAttribute),
				KeyType:       aws.String(dynamodb.KeyTypeHash),
			},
		},
		BillingMode: aws.String(dynamodb.BillingModePayPerRequest),
	})

	if err != nil {
		return false, fmt.Errorf("unable to create table %s: %w", table, err)
	}

	err = svc.WaitUntilTableExistsWithContext(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(table),
	})

	if err != nil {
		return true, fmt.Errorf("table %s did not become active: %w", table, err)
	}

	return true, nil
}
