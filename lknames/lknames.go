// Package lknames provides string formatting helpers for resource
// identifiers and DNS names. All functions are pure and deterministic.
package lknames

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/iancoleman/strcase"
)

// Casing specifies how to format an identifier string.
type Casing int

const (
	// CasingCamel formats as CamelCase (e.g., "LambdakitStagItemsApi").
	CasingCamel Casing = iota
	// CasingLowerCamel formats as lowerCamelCase (e.g., "lambdakitStagItemsApi").
	CasingLowerCamel
	// CasingSnake formats as snake_case (e.g., "lambdakit_stag_items_api").
	CasingSnake
	// CasingScreamingSnake formats as SCREAMING_SNAKE_CASE (e.g., "LAMBDAKIT_STAG_ITEMS_API").
	CasingScreamingSnake
	// CasingKebab formats as kebab-case (e.g., "lambdakit-stag-items-api").
	CasingKebab
	// CasingScreamingKebab formats as SCREAMING-KEBAB-CASE (e.g., "LAMBDAKIT-STAG-ITEMS-API").
	CasingScreamingKebab
)

// ApplyCasing converts s to the specified casing.
func ApplyCasing(s string, casing Casing) string {
	switch casing {
	case CasingCamel:
		return strcase.ToCamel(s)
	case CasingLowerCamel:
		return strcase.ToLowerCamel(s)
	case CasingSnake:
		return strcase.ToSnake(s)
	case CasingScreamingSnake:
		return strcase.ToScreamingSnake(s)
	case CasingKebab:
		return strcase.ToKebab(s)
	case CasingScreamingKebab:
		return strcase.ToScreamingKebab(s)
	default:
		return strcase.ToCamel(s)
	}
}

// ResourceName generates a resource identifier prefixed with the project
// qualifier and deployment identifier.
//
// The format is: "{qualifier}-{deploymentIdent}-{label}" converted to the
// specified casing. For shared resources (empty deployment identifier),
// the format is: "{qualifier}-{label}".
func ResourceName(qualifier, deploymentIdent, label string, casing Casing) string {
	var base string
	if deploymentIdent != "" {
		base = fmt.Sprintf("%s-%s-%s", qualifier, deploymentIdent, label)
	} else {
		base = fmt.Sprintf("%s-%s", qualifier, label)
	}

	return ApplyCasing(base, casing)
}

// maxLabelLen is the RFC 1035 limit for a single DNS label.
const maxLabelLen = 63

// ValidLabel reports whether s is a valid DNS label: 1-63 characters,
// lowercase letters, digits and hyphens, not starting or ending with a
// hyphen.
func ValidLabel(s string) bool {
	if len(s) == 0 || len(s) > maxLabelLen {
		return false
	}
	if s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return true
}

// Hostname joins labels into a dotted hostname, validating each label.
func Hostname(labels ...string) (string, error) {
	if len(labels) == 0 {
		return "", errors.New("hostname requires at least one label")
	}
	for _, l := range labels {
		if !ValidLabel(l) {
			return "", errors.Newf("invalid DNS label %q", l)
		}
	}
	return strings.Join(labels, "."), nil
}

// Subdomain prepends a label to an existing domain name.
func Subdomain(label, domain string) (string, error) {
	if !ValidLabel(label) {
		return "", errors.Newf("invalid DNS label %q", label)
	}
	if domain == "" {
		return "", errors.New("domain must not be empty")
	}
	return label + "." + domain, nil
}

// ServiceDomain builds the public hostname for a service in a deployment,
// e.g. ServiceDomain("items-api", "stag", "example.com") returns
// "items-api-stag.example.com". For the production deployment (empty
// deployment identifier) the service label is used alone.
func ServiceDomain(service, deploymentIdent, baseDomain string) (string, error) {
	label := strcase.ToKebab(service)
	if deploymentIdent != "" {
		label = label + "-" + strcase.ToKebab(deploymentIdent)
	}
	return Subdomain(label, baseDomain)
}
