package validation

import (
	"testing"

	"github.com/benvon/zen-planner/internal/models"
)

func TestStructValidationWithCustomTags(t *testing.T) {
	t.Parallel()

	type payload struct {
		Priority  string `validate:"omitempty,priority"`
		Frequency string `validate:"omitempty,frequency"`
		Role      string `validate:"omitempty,chat_role"`
		Tier      string `validate:"omitempty,subscription_tier"`
	}

	tests := []struct {
		name    string
		in      payload
		wantErr bool
	}{
		{"all valid", payload{Priority: "high", Frequency: "weekly", Role: "assistant", Tier: "pro"}, false},
		{"all empty", payload{}, false},
		{"bad priority", payload{Priority: "urgent"}, true},
		{"bad frequency", payload{Frequency: "hourly"}, true},
		{"bad role", payload{Role: "system"}, true},
		{"bad tier", payload{Tier: "platinum"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate.Struct(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTaskInputValidation(t *testing.T) {
	t.Parallel()

	valid := models.TaskInput{Title: "write report", Priority: models.PriorityMedium}
	if err := Validate.Struct(valid); err != nil {
		t.Errorf("valid input rejected: %v", err)
	}

	missing := models.TaskInput{Priority: models.PriorityMedium}
	if err := Validate.Struct(missing); err == nil {
		t.Error("empty title should be rejected")
	}

	badPriority := models.TaskInput{Title: "x", Priority: models.Priority("asap")}
	if err := Validate.Struct(badPriority); err == nil {
		t.Error("unknown priority should be rejected")
	}
}

func TestValidatePriority(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"low", "medium", "high"} {
		if err := ValidatePriority(v); err != nil {
			t.Errorf("ValidatePriority(%q) = %v", v, err)
		}
	}
	if err := ValidatePriority("critical"); err == nil {
		t.Error("ValidatePriority should reject unknown values")
	}
}

func TestValidateFrequency(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"daily", "weekly", "monthly"} {
		if err := ValidateFrequency(v); err != nil {
			t.Errorf("ValidateFrequency(%q) = %v", v, err)
		}
	}
	if err := ValidateFrequency("yearly"); err == nil {
		t.Error("ValidateFrequency should reject unknown values")
	}
}

func TestValidateSubscriptionTier(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"free", "starter", "pro", "business", "enterprise"} {
		if err := ValidateSubscriptionTier(v); err != nil {
			t.Errorf("ValidateSubscriptionTier(%q) = %v", v, err)
		}
	}
	if err := ValidateSubscriptionTier("gold"); err == nil {
		t.Error("ValidateSubscriptionTier should reject unknown values")
	}
}

func TestSanitizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims whitespace", "  hello  ", "hello"},
		{"keeps newlines and tabs", "a\n\tb", "a\n\tb"},
		{"strips control characters", "a\x00b\x1bc", "abc"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SanitizeText(tt.input); got != tt.want {
				t.Errorf("SanitizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
