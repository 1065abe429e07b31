package deck

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"pitchdeck/internal/domain"
	models "pitchdeck/internal/domain/models/deck"
)

// validateIndex checks 0 <= index < count
func validateIndex(index, count int) error {
	if index < 0 || index >= count {
		return &domain.OutOfRangeError{Index: index, Count: count}
	}
	return nil
}

// validateTheme resolves name against the five valid themes
func validateTheme(name string) (models.Theme, error) {
	allowed := make([]interface{}, 0, len(models.ThemeNames()))
	for _, n := range models.ThemeNames() {
		allowed = append(allowed, n)
	}

	if err := validation.Validate(name, validation.Required, validation.In(allowed...)); err != nil {
		return "", &domain.InvalidArgumentError{
			Field:   "theme",
			Message: fmt.Sprintf("Invalid theme %q. Choose: %s", name, models.ThemeList()),
		}
	}

	theme, _ := models.ParseTheme(name)
	return theme, nil
}
