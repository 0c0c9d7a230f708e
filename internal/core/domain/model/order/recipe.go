package order

import (
	"errors"
	"fmt"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

// ErrRecipeIsNotConstructed is returned when using an improperly initialized Recipe.
var ErrRecipeIsNotConstructed = errors.New("Recipe must be created via NewRecipe constructor")

// Recipe is an immutable snapshot of the dish an order item refers to.
// It carries everything the item needs for pricing and time estimation:
// the unit price and the preparation and cooking times.
//
// The snapshot is taken when the item is added to an order, so later menu
// changes never retroactively change an order's totals or estimates.
type Recipe struct { //nolint:recvcheck //using for validation
	// id references the menu recipe this snapshot was taken from
	id kernel.UUID
	// name is the display name of the dish
	name string
	// price is the unit price at the time the snapshot was taken
	price kernel.Money
	// prepTime is the estimated hands-on preparation time
	prepTime time.Duration
	// cookTime is the estimated cooking time
	cookTime time.Duration
	// guard ensures the recipe was properly constructed
	guard guard.ConstructorGuard
}

// NewRecipe creates a Recipe snapshot with validation.
//
// Parameters:
//   - id: Identifier of the source menu recipe (must be valid UUID)
//   - name: Display name of the dish (must be non-empty)
//   - price: Unit price (must be a constructed Money value)
//   - prepTime: Estimated preparation time (must not be negative)
//   - cookTime: Estimated cooking time (must not be negative)
//
// The combined prep and cook time must be positive: a dish that takes no
// time at all indicates missing menu data.
func NewRecipe(
	id kernel.UUID,
	name string,
	price kernel.Money,
	prepTime time.Duration,
	cookTime time.Duration,
) (Recipe, error) {
	recipe := Recipe{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		recipe.setID(id),
		recipe.setName(name),
		recipe.setPrice(price),
		recipe.setTimes(prepTime, cookTime),
	); err != nil {
		return Recipe{}, err
	}

	return recipe, nil
}

// ID returns the identifier of the source menu recipe.
func (r Recipe) ID() kernel.UUID {
	return r.id
}

// Name returns the display name of the dish.
func (r Recipe) Name() string {
	return r.name
}

// Price returns the unit price captured in the snapshot.
func (r Recipe) Price() kernel.Money {
	return r.price
}

// PrepTime returns the estimated preparation time.
func (r Recipe) PrepTime() time.Duration {
	return r.prepTime
}

// CookTime returns the estimated cooking time.
func (r Recipe) CookTime() time.Duration {
	return r.cookTime
}

// EstimatedTime returns the combined preparation and cooking time.
func (r Recipe) EstimatedTime() time.Duration {
	return r.prepTime + r.cookTime
}

// IsEqual compares two recipes by their source menu recipe identifiers.
func (r Recipe) IsEqual(other Recipe) bool {
	return r.id.IsEqual(other.id)
}

// Validate checks if the Recipe was properly constructed via NewRecipe.
func (r Recipe) Validate() error {
	return r.guard.Validate(ErrRecipeIsNotConstructed)
}

func (r *Recipe) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Recipe) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("recipe name")
	}
	r.name = name
	return nil
}

func (r *Recipe) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	r.price = price
	return nil
}

func (r *Recipe) setTimes(prepTime, cookTime time.Duration) error {
	if prepTime < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"prepTime is invalid",
			fmt.Errorf("%s is negative", prepTime),
		)
	}
	if cookTime < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"cookTime is invalid",
			fmt.Errorf("%s is negative", cookTime),
		)
	}
	if prepTime+cookTime == 0 {
		return errs.NewValueIsRequiredError("recipe estimated time")
	}

	r.prepTime = prepTime
	r.cookTime = cookTime
	return nil
}
