// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package stack

import (
	"path/filepath"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsdynamodb"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/xmidt-org/xraydemo/counter"
	"github.com/xmidt-org/xraydemo/gateway"
)

const (
	// DefaultStackID is the CloudFormation stack id
	DefaultStackID = "XrayDemoStack"

	// DefaultAssetDir holds one bootstrap binary directory per handler
	DefaultAssetDir = "dist"

	// HandlerOneAsset and HandlerTwoAsset are the handler directories under the asset dir
	HandlerOneAsset = "handler-one"
	HandlerTwoAsset = "handler-two"

	// RestAPIName is the name of the REST API
	RestAPIName = "XRayDemoAPI"

	// RestAPIDescription is the description of the REST API
	RestAPIDescription = "API for the X-ray demo"

	// IntegrationTemplate is the request template of both Lambda integrations
	IntegrationTemplate = `{ "statusCode": "200" }`
)

// XrayDemoStackProps configures NewXrayDemoStack
type XrayDemoStackProps struct {
	awscdk.StackProps

	// AssetDir is where the built handlers live.  Defaults to DefaultAssetDir.
	AssetDir string

	// TableName defaults to counter.DefaultTableName
	TableName string
}

func (p *XrayDemoStackProps) assetDir() string {
	if p != nil && len(p.AssetDir) > 0 {
		return p.AssetDir
	}

	return DefaultAssetDir
}

func (p *XrayDemoStackProps) tableName() string {
	if p != nil && len(p.TableName) > 0 {
		return p.TableName
	}

	return counter.DefaultTableName
}

// XrayDemoStack exposes the constructs of the stack
type XrayDemoStack struct {
	awscdk.Stack

	Table      awsdynamodb.Table
	Role       awsiam.Role
	HandlerOne awslambda.Function
	HandlerTwo awslambda.Function
	API        awsapigateway.RestApi
}

// NewXrayDemoStack builds the demo infrastructure under scope
func NewXrayDemoStack(scope constructs.Construct, id string, props *XrayDemoStackProps) *XrayDemoStack {
	var sprops awscdk.StackProps
	if props != nil {
		sprops = props.StackProps
	}

	s := &XrayDemoStack{
		Stack: awscdk.NewStack(scope, &id, &sprops),
	}

	s.Table = awsdynamodb.NewTable(s.Stack, jsii.String("xray-demo-table"), &awsdynamodb.TableProps{
		TableName: jsii.String(props.tableName()),
		PartitionKey: &awsdynamodb.Attribute{
			Name: jsii.String(counter.PartitionKeyAttribute),
			Type: awsdynamodb.AttributeType_STRING,
		},
		BillingMode: awsdynamodb.BillingMode_PAY_PER_REQUEST,
	})

	s.Role = awsiam.NewRole(s.Stack, jsii.String("LambdaRole"), &awsiam.RoleProps{
		AssumedBy: awsiam.NewServicePrincipal(jsii.String("lambda.amazonaws.com"), nil),
		ManagedPolicies: &[]awsiam.IManagedPolicy{
			awsiam.ManagedPolicy_FromAwsManagedPolicyName(jsii.String("service-role/AWSLambdaBasicExecutionRole")),
		},
	})

	s.Role.AddToPolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Actions:   jsii.Strings("dynamodb:*"),
		Resources: &[]*string{s.Table.TableArn()},
	}))

	s.HandlerOne = s.newHandler("xray-demo-handler-one", filepath.Join(props.assetDir(), HandlerOneAsset))
	s.HandlerTwo = s.newHandler("xray-demo-handler-two", filepath.Join(props.assetDir(), HandlerTwoAsset))

	s.API = awsapigateway.NewRestApi(s.Stack, jsii.String("xray-demo-api"), &awsapigateway.RestApiProps{
		RestApiName: jsii.String(RestAPIName),
		Description: jsii.String(RestAPIDescription),
		DeployOptions: &awsapigateway.StageOptions{
			TracingEnabled: jsii.Bool(true),
		},
	})

	s.addRoute(gateway.RouteOne, s.HandlerOne)
	s.addRoute(gateway.RouteTwo, s.HandlerTwo)
	return s
}

func (s *XrayDemoStack) newHandler(id, asset string) awslambda.Function {
	return awslambda.NewFunction(s.Stack, jsii.String(id), &awslambda.FunctionProps{
		Runtime: awslambda.Runtime_PROVIDED_AL2(),
		Handler: jsii.String("bootstrap"),
		Code:    awslambda.Code_FromAsset(jsii.String(asset), nil),
		Role:    s.Role,
		Tracing: awslambda.Tracing_ACTIVE,
		Timeout: awscdk.Duration_Seconds(jsii.Number(gateway.DefaultTimeout.Seconds())),
		Environment: &map[string]*string{
			counter.TableNameEnv: s.Table.TableName(),
		},
	})
}

// addRoute exposes a function as a GET method on a top-level resource.  route is a
// gateway path such as "/ykkonen".
func (s *XrayDemoStack) addRoute(route string, f awslambda.Function) {
	integration := awsapigateway.NewLambdaIntegration(f, &awsapigateway.LambdaIntegrationOptions{
		RequestTemplates: &map[string]*string{
			"application/json": jsii.String(IntegrationTemplate),
		},
	})

	s.API.Root().
		AddResource(jsii.String(route[1:]), nil).
		AddMethod(jsii.String("GET"), integration, nil)
}
