// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package counter

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/stretchr/testify/mock"
)

type mockDynamoDB struct {
	dynamodbiface.DynamoDBAPI
	mock.Mock
}

func (m *mockDynamoDB) UpdateItemWithContext(ctx aws.Context, input *dynamodb.UpdateItemInput, _ ...request.Option) (*dynamodb.UpdateItemOutput, error) {
	arguments := m.Called(ctx, input)
	output, _ := arguments.Get(0).(*dynamodb.UpdateItemOutput)
	return output, arguments.Error(1)
}

func (m *mockDynamoDB) DescribeTableWithContext(ctx aws.Context, input *dynamodb.DescribeTableInput, _ ...request.Option) (*dynamodb.DescribeTableOutput, error) {
	arguments := m.Called(ctx, input)
	output, _ := arguments.Get(0).(*dynamodb.DescribeTableOutput)
	return output, arguments.Error(1)
}

func (m *mockDynamoDB) CreateTableWithContext(ctx aws.Context, input *dynamodb.CreateTableInput, _ ...request.Option) (*dynamodb.CreateTableOutput, error) {
	arguments := m.Called(ctx, input)
	output, _ := arguments.Get(0).(*dynamodb.CreateTableOutput)
	return output, arguments.Error(1)
}

func (m *mockDynamoDB) WaitUntilTableExistsWithContext(ctx aws.Context, input *dynamodb.DescribeTableInput, _ ...request.WaiterOption) error {
	return m.Called(ctx, input).Error(0)
}
