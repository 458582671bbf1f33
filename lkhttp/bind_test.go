package lkhttp_test

import (
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stackmill/lambdakit/lkerr"
	"github.com/stackmill/lambdakit/lkhttp"
)

type createItemRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"  validate:"required"`
}

func TestBindJSON(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		req := events.APIGatewayProxyRequest{Body: `{"email":"a@b.co","name":"widget"}`}

		v, err := lkhttp.BindJSON[createItemRequest](req)
		if err != nil {
			t.Fatalf("BindJSON error: %v", err)
		}
		if v.Email != "a@b.co" || v.Name != "widget" {
			t.Errorf("bound value = %+v", v)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		_, err := lkhttp.BindJSON[createItemRequest](events.APIGatewayProxyRequest{})
		if lkerr.KindOf(err) != lkerr.KindValidation {
			t.Errorf("KindOf() = %v, want KindValidation", lkerr.KindOf(err))
		}
	})

	t.Run("malformed JSON", func(t *testing.T) {
		req := events.APIGatewayProxyRequest{Body: `{"email":`}

		_, err := lkhttp.BindJSON[createItemRequest](req)
		if lkerr.KindOf(err) != lkerr.KindValidation {
			t.Errorf("KindOf() = %v, want KindValidation", lkerr.KindOf(err))
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		req := events.APIGatewayProxyRequest{Body: `{"name":"widget"}`}

		_, err := lkhttp.BindJSON[createItemRequest](req)
		if err == nil {
			t.Fatal("expected validation error")
		}
		if lkerr.KindOf(err) != lkerr.KindValidation {
			t.Errorf("KindOf() = %v, want KindValidation", lkerr.KindOf(err))
		}
		if !strings.Contains(err.Error(), "Email is required") {
			t.Errorf("message = %q, want it to name the missing field", err.Error())
		}
	})

	t.Run("rule failure names the rule", func(t *testing.T) {
		req := events.APIGatewayProxyRequest{Body: `{"email":"not-an-email","name":"widget"}`}

		_, err := lkhttp.BindJSON[createItemRequest](req)
		if err == nil {
			t.Fatal("expected validation error")
		}
		if !strings.Contains(err.Error(), "email rule") {
			t.Errorf("message = %q, want it to name the failed rule", err.Error())
		}
	})
}
