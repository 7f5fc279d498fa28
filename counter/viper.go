// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package counter

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/spf13/viper"
)

const (
	// CounterKey is the viper subkey holding the counter Options
	CounterKey = "counter"

	// TableNameEnv is the environment variable a deployed function finds its table in
	TableNameEnv = "TABLE_NAME"
)

var errMixedCredentials = errors.New("accessKey and secretKey must be supplied together")

// Options configures where the counter lives
type Options struct {
	// Table is the DynamoDB table name.  Defaults to DefaultTableName.
	Table string

	// Key is the partition key value of the counter item.  Defaults to DefaultKey.
	Key string

	// Region is the AWS region.  If unset, the SDK's usual resolution applies.
	Region string

	// Endpoint overrides the DynamoDB endpoint, e.g. for DynamoDB Local
	Endpoint string

	// AccessKey and SecretKey are optional static credentials
	AccessKey string
	SecretKey string

	// CreateTable creates the table at startup if it is missing
	CreateTable bool

	// InMemory replaces DynamoDB with a MemoryStore
	InMemory bool
}

// TableName returns the configured table or DefaultTableName
func (o *Options) TableName() string {
	if o != nil && len(o.Table) > 0 {
		return o.Table
	}

	return DefaultTableName
}

// CounterKeyValue returns the configured counter key or DefaultKey
func (o *Options) CounterKeyValue() string {
	if o != nil && len(o.Key) > 0 {
		return o.Key
	}

	return DefaultKey
}

// NewOptions reads Options from a Viper instance.  A nil Viper yields the defaults.
func NewOptions(v *viper.Viper) (o *Options, err error) {
	o = new(Options)
	if v != nil {
		err = v.Unmarshal(o)
	}

	if err != nil {
		return nil, err
	}

	if (len(o.AccessKey) == 0) != (len(o.SecretKey) == 0) {
		return nil, errMixedCredentials
	}

	return o, nil
}

// BindEnv binds the Table option to TableNameEnv, which is how deployed functions
// are told about their table
func BindEnv(v *viper.Viper) error {
	return v.BindEnv("table", TableNameEnv)
}

// NewSession creates an AWS session from the options
func NewSession(o *Options) (*session.Session, error) {
	config := aws.NewConfig()
	if o != nil {
		if len(o.Region) > 0 {
			config = config.WithRegion(o.Region)
		}

		if len(o.Endpoint) > 0 {
			config = config.WithEndpoint(o.Endpoint)
		}

		if len(o.AccessKey) > 0 {
			config = config.WithCredentials(credentials.NewStaticCredentials(o.AccessKey, o.SecretKey, ""))
		}
	}

	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("unable to create AWS session: %w", err)
	}

	return sess, nil
}

// NewDynamoDB creates a DynamoDB client.  Each instrument function, typically a tracing
// hook, is applied to the underlying SDK client.
func NewDynamoDB(o *Options, instrument ...func(*client.Client)) (*dynamodb.DynamoDB, error) {
	sess, err := NewSession(o)
	if err != nil {
		return nil, err
	}

	svc := dynamodb.New(sess)
	for _, f := range instrument {
		if f != nil {
			f(svc.Client)
		}
	}

	return svc, nil
}
