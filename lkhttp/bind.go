package lkhttp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/stackmill/lambdakit/lkerr"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// BindJSON decodes the request body into T and validates it with the
// struct's `validate` tags. Decode and validation failures both surface
// as Validation-kind errors, so handlers can return them directly.
func BindJSON[T any](req events.APIGatewayProxyRequest) (T, error) {
	var v T
	if strings.TrimSpace(req.Body) == "" {
		return v, lkerr.Validation("request body is required")
	}
	if err := json.Unmarshal([]byte(req.Body), &v); err != nil {
		return v, lkerr.Wrap(err, lkerr.KindValidation, "request body is not valid JSON")
	}
	if err := validate.Struct(&v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return v, lkerr.Wrap(err, lkerr.KindValidation, validationMessage(verrs))
		}
		return v, lkerr.Wrap(err, lkerr.KindValidation, "request body is invalid")
	}
	return v, nil
}

func validationMessage(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			parts = append(parts, fmt.Sprintf("%s is required", fe.Field()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed the %s rule", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
