package cdk_test

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/stackmill/lambdakit/infra/cdk"
)

func TestNewDeployment(t *testing.T) {
	defer jsii.Close()

	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), &awscdk.StackProps{
		Env: &awscdk.Environment{
			Region: jsii.String("us-east-1"),
		},
	})

	dep := cdk.NewDeployment(stack, "dev")

	if dep.Table() == nil {
		t.Error("Table() should not be nil")
	}
	if dep.Function() == nil {
		t.Error("Function() should not be nil")
	}
}
