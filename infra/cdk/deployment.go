// Package cdk defines the deployment stack for the items service: a
// single-table DynamoDB table and the proxy-mode Lambda that serves the
// /items resource.
package cdk

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsdynamodb"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/aws-cdk-go/awscdklambdagoalpha/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/stackmill/lambdakit/lknames"
)

// Qualifier prefixes every resource name so deployments from different
// projects can share an account.
const Qualifier = "lambdakit"

// Deployment provides access to the provisioned resources.
type Deployment interface {
	// Table returns the items table.
	Table() awsdynamodb.TableV2
	// Function returns the itemsapi Lambda function.
	Function() awscdklambdagoalpha.GoFunction
}

type deployment struct {
	table    awsdynamodb.TableV2
	function awscdklambdagoalpha.GoFunction
}

// NewDeployment provisions the items table and the itemsapi function in
// the given stack and grants the function access to the table.
func NewDeployment(stack awscdk.Stack, deploymentIdent string) Deployment {
	scope := constructs.NewConstruct(stack, jsii.String("Items"))

	con := &deployment{}
	con.table = newItemsTable(scope, deploymentIdent)
	con.function = newItemsFunction(scope, deploymentIdent, con.table)
	con.table.GrantReadWriteData(con.function)
	return con
}

func (d *deployment) Table() awsdynamodb.TableV2 {
	return d.table
}

func (d *deployment) Function() awscdklambdagoalpha.GoFunction {
	return d.function
}

// newItemsTable creates the single-table layout used by the store:
// string pk/sk keys plus two general-purpose global secondary indexes.
func newItemsTable(scope constructs.Construct, deploymentIdent string) awsdynamodb.TableV2 {
	tableName := lknames.ResourceName(Qualifier, deploymentIdent, "main-table", lknames.CasingKebab)

	return awsdynamodb.NewTableV2(scope, jsii.String("Table"), &awsdynamodb.TablePropsV2{
		TableName:     jsii.String(tableName),
		PartitionKey:  &awsdynamodb.Attribute{Name: jsii.String("pk"), Type: awsdynamodb.AttributeType_STRING},
		SortKey:       &awsdynamodb.Attribute{Name: jsii.String("sk"), Type: awsdynamodb.AttributeType_STRING},
		Billing:       awsdynamodb.Billing_OnDemand(nil),
		RemovalPolicy: awscdk.RemovalPolicy_DESTROY,
		PointInTimeRecoverySpecification: &awsdynamodb.PointInTimeRecoverySpecification{
			PointInTimeRecoveryEnabled: jsii.Bool(true),
		},
		GlobalSecondaryIndexes: &[]*awsdynamodb.GlobalSecondaryIndexPropsV2{
			{
				IndexName:    jsii.String("gsi1"),
				PartitionKey: &awsdynamodb.Attribute{Name: jsii.String("gsi1pk"), Type: awsdynamodb.AttributeType_STRING},
				SortKey:      &awsdynamodb.Attribute{Name: jsii.String("gsi1sk"), Type: awsdynamodb.AttributeType_STRING},
			},
			{
				IndexName:    jsii.String("gsi2"),
				PartitionKey: &awsdynamodb.Attribute{Name: jsii.String("gsi2pk"), Type: awsdynamodb.AttributeType_STRING},
				SortKey:      &awsdynamodb.Attribute{Name: jsii.String("gsi2sk"), Type: awsdynamodb.AttributeType_STRING},
			},
		},
	})
}

// newItemsFunction bundles the itemsapi command as an arm64 Go Lambda
// with X-Ray tracing active.
func newItemsFunction(scope constructs.Construct, deploymentIdent string, table awsdynamodb.TableV2) awscdklambdagoalpha.GoFunction {
	functionName := lknames.ResourceName(Qualifier, deploymentIdent, "items-api", lknames.CasingKebab)

	env := map[string]*string{
		"MAIN_TABLE_NAME": table.TableName(),
		"SERVICE_NAME":    jsii.String(functionName),
		"OTEL_EXPORTER":   jsii.String("xrayudp"),
	}

	return awscdklambdagoalpha.NewGoFunction(scope, jsii.String("Function"),
		&awscdklambdagoalpha.GoFunctionProps{
			FunctionName: jsii.String(functionName),
			Entry:        jsii.String("../../backend/cmd/itemsapi"),
			Architecture: awslambda.Architecture_ARM_64(),
			Runtime:      awslambda.Runtime_PROVIDED_AL2023(),
			MemorySize:   jsii.Number(128),
			Timeout:      awscdk.Duration_Seconds(jsii.Number(30)),
			Environment:  &env,
			Bundling:     reproducibleGoBundling(),
			Tracing:      awslambda.Tracing_ACTIVE,
		})
}

// reproducibleGoBundling configures go build so the same source always
// produces an identical binary, preventing unnecessary redeploys.
func reproducibleGoBundling() *awscdklambdagoalpha.BundlingOptions {
	return &awscdklambdagoalpha.BundlingOptions{
		GoBuildFlags: jsii.Strings(
			"-trimpath",
			"-ldflags=-buildid=",
			"-buildvcs=false",
		),
		Environment: &map[string]*string{
			"CGO_ENABLED": jsii.String("0"),
		},
	}
}
