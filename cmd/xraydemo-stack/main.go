// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/xmidt-org/xraydemo/stack"
)

func main() {
	defer jsii.Close()

	app := awscdk.NewApp(nil)
	stack.NewXrayDemoStack(app, stack.DefaultStackID, &stack.XrayDemoStackProps{
		StackProps: awscdk.StackProps{
			Env: env(),
		},
		AssetDir: os.Getenv("XRAYDEMO_ASSET_DIR"),
	})

	app.Synth(nil)
}

// env picks up the account and region the CDK CLI resolved, if any
func env() *awscdk.Environment {
	account, region := os.Getenv("CDK_DEFAULT_ACCOUNT"), os.Getenv("CDK_DEFAULT_REGION")
	if len(account) == 0 && len(region) == 0 {
		return nil
	}

	return &awscdk.Environment{
		Account: jsii.String(account),
		Region:  jsii.String(region),
	}
}
