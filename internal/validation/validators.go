package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/benvon/zen-planner/internal/models"
	"github.com/go-playground/validator/v10"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()

	// Register custom validators for enums
	if err := Validate.RegisterValidation("priority", validatePriority); err != nil {
		panic(fmt.Sprintf("failed to register priority validator: %v", err))
	}
	if err := Validate.RegisterValidation("frequency", validateFrequency); err != nil {
		panic(fmt.Sprintf("failed to register frequency validator: %v", err))
	}
	if err := Validate.RegisterValidation("chat_role", validateChatRole); err != nil {
		panic(fmt.Sprintf("failed to register chat_role validator: %v", err))
	}
	if err := Validate.RegisterValidation("subscription_tier", validateSubscriptionTier); err != nil {
		panic(fmt.Sprintf("failed to register subscription_tier validator: %v", err))
	}
}

// validatePriority validates that a string is a valid Priority enum value
func validatePriority(fl validator.FieldLevel) bool {
	switch models.Priority(fl.Field().String()) {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return true
	default:
		return false
	}
}

// validateFrequency validates that a string is a valid Frequency enum value
func validateFrequency(fl validator.FieldLevel) bool {
	switch models.Frequency(fl.Field().String()) {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly:
		return true
	default:
		return false
	}
}

// validateChatRole validates that a string is a valid ChatRole enum value
func validateChatRole(fl validator.FieldLevel) bool {
	switch models.ChatRole(fl.Field().String()) {
	case models.ChatRoleUser, models.ChatRoleAssistant:
		return true
	default:
		return false
	}
}

// validateSubscriptionTier validates that a string is a valid SubscriptionTier enum value
func validateSubscriptionTier(fl validator.FieldLevel) bool {
	switch models.SubscriptionTier(fl.Field().String()) {
	case models.TierFree, models.TierStarter, models.TierPro, models.TierBusiness, models.TierEnterprise:
		return true
	default:
		return false
	}
}

// SanitizeText sanitizes text input by trimming whitespace and removing control characters
func SanitizeText(text string) string {
	text = strings.TrimSpace(text)

	var sanitized strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sanitized.WriteRune(r)
	}

	return sanitized.String()
}

// ValidatePriority validates a Priority string value
func ValidatePriority(value string) error {
	switch models.Priority(value) {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return nil
	default:
		return fmt.Errorf("invalid priority: %s (must be 'low', 'medium', or 'high')", value)
	}
}

// ValidateFrequency validates a Frequency string value
func ValidateFrequency(value string) error {
	switch models.Frequency(value) {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly:
		return nil
	default:
		return fmt.Errorf("invalid frequency: %s (must be 'daily', 'weekly', or 'monthly')", value)
	}
}

// ValidateSubscriptionTier validates a SubscriptionTier string value
func ValidateSubscriptionTier(value string) error {
	switch models.SubscriptionTier(value) {
	case models.TierFree, models.TierStarter, models.TierPro, models.TierBusiness, models.TierEnterprise:
		return nil
	default:
		return fmt.Errorf("invalid tier: %s (must be 'free', 'starter', 'pro', 'business', or 'enterprise')", value)
	}
}
