// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package counter

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/spf13/cast"
)

const (
	// incrementExpression creates the attribute at :start_value if absent and adds :incr
	incrementExpression = "SET #att = if_not_exists(#att, :start_value) + :incr"
)

// DynamoStore is a Store backed by a DynamoDB table with a string partition key
// named PartitionKeyAttribute.  Counters live in the CountAttribute of each item.
type DynamoStore struct {
	svc   dynamodbiface.DynamoDBAPI
	table string
}

// NewDynamoStore returns a DynamoStore for the given table.  An empty table name means DefaultTableName.
func NewDynamoStore(svc dynamodbiface.DynamoDBAPI, table string) *DynamoStore {
	if len(table) == 0 {
		table = DefaultTableName
	}

	return &DynamoStore{
		svc:   svc,
		table: table,
	}
}

// Table is the name of the backing table
func (ds *DynamoStore) Table() string {
	return ds.table
}

// Increment is one UpdateItem call.  DynamoDB applies it atomically to the item, so
// concurrent increments are never lost.
func (ds *DynamoStore) Increment(ctx context.Context, key string) (int64, error) {
	output, err := ds.svc.UpdateItemWithContext(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(ds.table),
		Key: map[string]*dynamodb.AttributeValue{
			PartitionKeyAttribute: {S: aws.String(key)},
		},
		UpdateExpression: aws.String(incrementExpression),
		ExpressionAttributeNames: map[string]*string{
			"#att": aws.String(CountAttribute),
		},
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":start_value": {N: aws.String("0")},
			":incr":        {N: aws.String("1")},
		},
		ReturnValues: aws.String(dynamodb.ReturnValueUpdatedNew),
	})

	if err != nil {
		return 0, fmt.Errorf("unable to increment counter %s in table %s: %w", key, ds.table, err)
	}

	if output == nil {
		return 0, ErrNoCount
	}

	value, ok := output.Attributes[CountAttribute]
	if !ok || value == nil || value.N == nil {
		return 0, ErrNoCount
	}

	count, err := cast.ToInt64E(aws.StringValue(value.N))
	if err != nil {
		return 0, fmt.Errorf("invalid count %q for counter %s: %w", aws.StringValue(value.N), key, err)
	}

	return count, nil
}
