package main

import (
	"os"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/stackmill/lambdakit/infra/cdk"
	"github.com/stackmill/lambdakit/lknames"
)

func main() {
	defer jsii.Close()
	app := awscdk.NewApp(nil)

	deploymentIdent := os.Getenv("DEPLOYMENT_IDENT")
	if deploymentIdent == "" {
		deploymentIdent = "dev"
	}

	stackName := lknames.ResourceName(cdk.Qualifier, deploymentIdent, "items", lknames.CasingCamel)
	stack := awscdk.NewStack(app, jsii.String(stackName), &awscdk.StackProps{})
	cdk.NewDeployment(stack, deploymentIdent)

	app.Synth(nil)
}
