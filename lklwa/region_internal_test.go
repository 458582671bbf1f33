package lklwa

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stackmill/lambdakit/lkenv"
)

func TestRegisterAWSClient_DefaultTargetsLocalRegion(t *testing.T) {
	factory := RegisterAWSClient(func(cfg aws.Config) *dynamodb.Client {
		return dynamodb.NewFromConfig(cfg)
	})

	if factory.Region == nil {
		t.Fatal("expected Region to be set (LocalRegion by default)")
	}
	if factory.Region.key() != "local" {
		t.Errorf("Region.key() = %q, want local", factory.Region.key())
	}
}

func TestRegisterAWSClient_ForPrimaryRegion(t *testing.T) {
	factory := RegisterAWSClient(func(cfg aws.Config) *s3.Client {
		return s3.NewFromConfig(cfg)
	}, ForPrimaryRegion())

	if factory.Region.key() != "primary" {
		t.Errorf("Region.key() = %q, want primary", factory.Region.key())
	}
}

func TestRegisterAWSClient_ForFixedRegion(t *testing.T) {
	factory := RegisterAWSClient(func(cfg aws.Config) *sqs.Client {
		return sqs.NewFromConfig(cfg)
	}, ForRegion("ap-northeast-1"))

	if factory.Region.key() != "fixed:ap-northeast-1" {
		t.Errorf("Region.key() = %q", factory.Region.key())
	}
}

func TestRegionResolve(t *testing.T) {
	env := lkenv.BaseEnvironment{PrimaryDeployRegion: "eu-central-1"}

	tests := []struct {
		name   string
		region Region
		want   string
	}{
		{"local keeps sdk default", LocalRegion(), ""},
		{"primary uses env", PrimaryRegion(), "eu-central-1"},
		{"fixed is verbatim", FixedRegion("us-east-1"), "us-east-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.region.resolve(env); got != tt.want {
				t.Errorf("resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

// The lookup key computed at registration must match the key the AWS
// accessor derives from its type parameter.
func TestClientKey_MatchesAccessorKey(t *testing.T) {
	client := dynamodb.NewFromConfig(aws.Config{})

	registered := clientKey(client, LocalRegion())
	accessor := typeKey[dynamodb.Client]() + "#" + LocalRegion().key()

	if registered != accessor {
		t.Errorf("clientKey = %q, accessor key = %q", registered, accessor)
	}
}
