package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/AtelierGuildRank_Go/internal/domain"
)

// StructValidator checks decoded master data records against their validate tags
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator creates a validator with the domain enum tags registered
func NewStructValidator() *StructValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails for an empty tag or nil func
	_ = v.RegisterValidation("quality", validateQuality)
	_ = v.RegisterValidation("item_category", validateItemCategory)
	_ = v.RegisterValidation("effect_type", validateEffectType)
	_ = v.RegisterValidation("attribute", validateAttribute)
	_ = v.RegisterValidation("guild_rank", validateGuildRank)

	return &StructValidator{validate: v}
}

// ValidateStruct validates a struct using tags
func (v *StructValidator) ValidateStruct(s any) error {
	if err := v.validate.Struct(s); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// FormatValidationError flattens validator errors into one message per field
func FormatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validation error: %w", err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s: %s", e.Namespace(), describeTag(e)))
	}
	return fmt.Errorf("invalid record: %s", strings.Join(messages, "; "))
}

func describeTag(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "quality":
		return fmt.Sprintf("invalid quality %q", e.Value())
	case "item_category":
		return fmt.Sprintf("invalid category %q", e.Value())
	case "effect_type":
		return fmt.Sprintf("invalid effect type %q", e.Value())
	case "attribute":
		return fmt.Sprintf("invalid attribute %q", e.Value())
	case "guild_rank":
		return fmt.Sprintf("invalid guild rank %q", e.Value())
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	default:
		return "invalid value"
	}
}

func validateQuality(fl validator.FieldLevel) bool {
	return domain.Quality(fl.Field().String()).IsValid()
}

func validateItemCategory(fl validator.FieldLevel) bool {
	return domain.ItemCategory(fl.Field().String()).IsValid()
}

func validateEffectType(fl validator.FieldLevel) bool {
	return domain.EffectType(fl.Field().String()).IsValid()
}

func validateAttribute(fl validator.FieldLevel) bool {
	return domain.Attribute(fl.Field().String()).IsValid()
}

func validateGuildRank(fl validator.FieldLevel) bool {
	return domain.GuildRank(fl.Field().String()).IsValid()
}
