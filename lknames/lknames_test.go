package lknames_test

import (
	"strings"
	"testing"

	"github.com/stackmill/lambdakit/lknames"
)

func TestResourceName(t *testing.T) {
	tests := []struct {
		name   string
		label  string
		casing lknames.Casing
		want   string
	}{
		{
			name:   "camel case",
			label:  "ItemsApi",
			casing: lknames.CasingCamel,
			want:   "LambdakitStagItemsApi",
		},
		{
			name:   "lower camel case",
			label:  "ItemsApi",
			casing: lknames.CasingLowerCamel,
			want:   "lambdakitStagItemsApi",
		},
		{
			name:   "snake case",
			label:  "ItemsApi",
			casing: lknames.CasingSnake,
			want:   "lambdakit_stag_items_api",
		},
		{
			name:   "screaming snake case",
			label:  "ItemsApi",
			casing: lknames.CasingScreamingSnake,
			want:   "LAMBDAKIT_STAG_ITEMS_API",
		},
		{
			name:   "kebab case",
			label:  "ItemsApi",
			casing: lknames.CasingKebab,
			want:   "lambdakit-stag-items-api",
		},
		{
			name:   "screaming kebab case",
			label:  "ItemsApi",
			casing: lknames.CasingScreamingKebab,
			want:   "LAMBDAKIT-STAG-ITEMS-API",
		},
		{
			name:   "kebab label converted to camel",
			label:  "my-lambda-function",
			casing: lknames.CasingCamel,
			want:   "LambdakitStagMyLambdaFunction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lknames.ResourceName("lambdakit", "Stag", tt.label, tt.casing)
			if got != tt.want {
				t.Errorf("ResourceName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResourceName_SharedResource(t *testing.T) {
	got := lknames.ResourceName("lambdakit", "", "MainTable", lknames.CasingKebab)
	if got != "lambdakit-main-table" {
		t.Errorf("ResourceName() = %q, want %q", got, "lambdakit-main-table")
	}
}

func TestValidLabel(t *testing.T) {
	tests := []struct {
		label string
		want  bool
	}{
		{"api", true},
		{"items-api", true},
		{"a1-b2", true},
		{"", false},
		{"-api", false},
		{"api-", false},
		{"Items", false},
		{"under_score", false},
		{strings.Repeat("a", 63), true},
		{strings.Repeat("a", 64), false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := lknames.ValidLabel(tt.label); got != tt.want {
				t.Errorf("ValidLabel(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestHostname(t *testing.T) {
	t.Run("joins labels", func(t *testing.T) {
		got, err := lknames.Hostname("items-api", "stag", "example", "com")
		if err != nil {
			t.Fatalf("Hostname() error: %v", err)
		}
		if got != "items-api.stag.example.com" {
			t.Errorf("Hostname() = %q", got)
		}
	})

	t.Run("rejects invalid label", func(t *testing.T) {
		if _, err := lknames.Hostname("Items_API", "example", "com"); err == nil {
			t.Fatal("expected error for invalid label")
		}
	})

	t.Run("rejects empty input", func(t *testing.T) {
		if _, err := lknames.Hostname(); err == nil {
			t.Fatal("expected error for no labels")
		}
	})
}

func TestServiceDomain(t *testing.T) {
	tests := []struct {
		name       string
		service    string
		deployment string
		base       string
		want       string
	}{
		{"deployment suffix", "ItemsApi", "stag", "example.com", "items-api-stag.example.com"},
		{"production without suffix", "ItemsApi", "", "example.com", "items-api.example.com"},
		{"already kebab", "items-api", "dev1", "example.com", "items-api-dev1.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lknames.ServiceDomain(tt.service, tt.deployment, tt.base)
			if err != nil {
				t.Fatalf("ServiceDomain() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ServiceDomain() = %q, want %q", got, tt.want)
			}
		})
	}
}
