package catalog

import "errors"

var (
	ErrEmptyCatalog        = errors.New("catalog has no recipes")
	ErrDuplicateRecipe     = errors.New("duplicate recipe id")
	ErrInvalidRecipe       = errors.New("invalid recipe")
	ErrDuplicateChannel    = errors.New("duplicate pump channel")
	ErrDuplicateIngredient = errors.New("ingredient bound to more than one channel")
	ErrInvalidChannel      = errors.New("invalid pump channel")
)
