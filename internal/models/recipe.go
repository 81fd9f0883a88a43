package models

import (
	"errors"
	"strings"
)

var (
	ErrEmptyRecipeName  = errors.New("recipe name cannot be empty")
	ErrEmptyIngredients = errors.New("ingredients list cannot be empty")
)

// IngredientSeparator joins ingredients inside a single stored field.
const IngredientSeparator = ";"

type Recipe struct {
	Name        string
	Ingredients []string
	Steps       string
}

// Validate checks that the recipe can be stored.
func (r Recipe) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyRecipeName
	}
	if len(r.Ingredients) == 0 {
		return ErrEmptyIngredients
	}
	return nil
}

// ParseIngredients splits user input on commas (or the storage separator),
// trims each item and drops empty ones.
func ParseIngredients(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
