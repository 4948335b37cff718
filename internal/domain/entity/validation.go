package entity

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Length bounds, counted in runes and inclusive on both ends.
const (
	MinTitleLength        = 5
	MaxTitleLength        = 50
	MinMagazineNameLength = 2
	MaxMagazineNameLength = 16
)

// ValidateTitle checks an article title against the title length bounds.
func ValidateTitle(title string) error {
	return checkValue("title", title,
		validation.Required.Error("title is required"),
		validation.RuneLength(MinTitleLength, MaxTitleLength).
			Error(fmt.Sprintf("title must be between %d and %d characters, inclusive", MinTitleLength, MaxTitleLength)),
	)
}

// ValidateAuthorName checks that an author name is not empty.
func ValidateAuthorName(name string) error {
	return checkValue("name", name,
		validation.Required.Error("name must be longer than 0 characters"),
	)
}

// ValidateMagazineName checks a magazine name against the name length bounds.
func ValidateMagazineName(name string) error {
	return checkValue("name", name,
		validation.Required.Error("name is required"),
		validation.RuneLength(MinMagazineNameLength, MaxMagazineNameLength).
			Error(fmt.Sprintf("name must be between %d and %d characters, inclusive", MinMagazineNameLength, MaxMagazineNameLength)),
	)
}

// ValidateCategory checks that a magazine category is not empty.
func ValidateCategory(category string) error {
	return checkValue("category", category,
		validation.Required.Error("category must be longer than 0 characters"),
	)
}

// checkValue runs the ozzo rules and reports any failure as a value error on field.
func checkValue(field, value string, rules ...validation.Rule) error {
	if err := validation.Validate(value, rules...); err != nil {
		return &ValidationError{Field: field, Message: err.Error(), Kind: KindValue}
	}
	return nil
}
