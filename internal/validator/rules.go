package validator

import (
	"log"

	"acsp_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules registers the domain enum rules. Empty values pass so
// that 'required' stays the single source of presence checks.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-event-type", validateEventType)
	mustRegister("is-moderation-action", validateModerationAction)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.UserRole(value).Valid()
}

func validateEventType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.EventType(value) {
	case models.EventTypePhysical, models.EventTypeVirtual, models.EventTypeHybrid:
		return true
	default:
		return false
	}
}

func validateModerationAction(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return value == "approve" || value == "reject"
}
