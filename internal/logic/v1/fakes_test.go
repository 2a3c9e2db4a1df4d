package v1

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/chefbook/recipe-service/internal/core/domain"
)

var errStorageDown = errors.New("storage down")

// fakeChefRepo is an in-memory domain.ChefRepository. Setting fail makes
// every method report a storage failure.
type fakeChefRepo struct {
	chefs  map[int]domain.Chef
	nextID int
	fail   bool
}

func newFakeChefRepo() *fakeChefRepo {
	return &fakeChefRepo{chefs: make(map[int]domain.Chef)}
}

func (f *fakeChefRepo) matching(term string) []domain.Chef {
	var out []domain.Chef
	for _, chef := range f.chefs {
		if term == "" || strings.Contains(strings.ToLower(chef.Username), strings.ToLower(term)) {
			out = append(out, chef)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeChefRepo) Search(ctx context.Context, term string) ([]domain.Chef, error) {
	if f.fail {
		return nil, errStorageDown
	}
	return f.matching(term), nil
}

func (f *fakeChefRepo) SearchPage(ctx context.Context, term string, opts domain.PageOptions) (domain.Page[domain.Chef], error) {
	if f.fail {
		return domain.EmptyPage[domain.Chef](opts), errStorageDown
	}
	return domain.PageOf(f.matching(term), opts), nil
}

func (f *fakeChefRepo) GetByID(ctx context.Context, id int) (*domain.Chef, error) {
	if f.fail {
		return nil, errStorageDown
	}
	if chef, ok := f.chefs[id]; ok {
		return &chef, nil
	}
	return nil, nil
}

func (f *fakeChefRepo) GetByUsername(ctx context.Context, username string) (*domain.Chef, error) {
	if f.fail {
		return nil, errStorageDown
	}
	for _, chef := range f.chefs {
		if chef.Username == username {
			return &chef, nil
		}
	}
	return nil, nil
}

func (f *fakeChefRepo) Create(ctx context.Context, chef *domain.Chef) (int, error) {
	if f.fail {
		return 0, errStorageDown
	}
	f.nextID++
	chef.ID = f.nextID
	f.chefs[chef.ID] = *chef
	return chef.ID, nil
}

func (f *fakeChefRepo) Update(ctx context.Context, chef *domain.Chef) error {
	if f.fail {
		return errStorageDown
	}
	f.chefs[chef.ID] = *chef
	return nil
}

func (f *fakeChefRepo) Delete(ctx context.Context, id int) error {
	if f.fail {
		return errStorageDown
	}
	delete(f.chefs, id)
	return nil
}

// fakeIngredientRepo is an in-memory domain.IngredientRepository that also
// tracks recipe_ingredient join rows so cascade behavior is observable.
type fakeIngredientRepo struct {
	ingredients map[int]domain.Ingredient
	joinRows    map[int]int // ingredient id -> referencing recipe count
	nextID      int
	fail        bool
}

func newFakeIngredientRepo() *fakeIngredientRepo {
	return &fakeIngredientRepo{
		ingredients: make(map[int]domain.Ingredient),
		joinRows:    make(map[int]int),
	}
}

func (f *fakeIngredientRepo) matching(term string) []domain.Ingredient {
	var out []domain.Ingredient
	for _, ing := range f.ingredients {
		if term == "" || strings.Contains(strings.ToLower(ing.Name), strings.ToLower(term)) {
			out = append(out, ing)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeIngredientRepo) Search(ctx context.Context, term string) ([]domain.Ingredient, error) {
	if f.fail {
		return nil, errStorageDown
	}
	return f.matching(term), nil
}

func (f *fakeIngredientRepo) SearchPage(ctx context.Context, term string, opts domain.PageOptions) (domain.Page[domain.Ingredient], error) {
	if f.fail {
		return domain.EmptyPage[domain.Ingredient](opts), errStorageDown
	}
	return domain.PageOf(f.matching(term), opts), nil
}

func (f *fakeIngredientRepo) GetByID(ctx context.Context, id int) (*domain.Ingredient, error) {
	if f.fail {
		return nil, errStorageDown
	}
	if ing, ok := f.ingredients[id]; ok {
		return &ing, nil
	}
	return nil, nil
}

func (f *fakeIngredientRepo) Create(ctx context.Context, ingredient *domain.Ingredient) (int, error) {
	if f.fail {
		return 0, errStorageDown
	}
	f.nextID++
	ingredient.ID = f.nextID
	f.ingredients[ingredient.ID] = *ingredient
	return ingredient.ID, nil
}

func (f *fakeIngredientRepo) Update(ctx context.Context, ingredient *domain.Ingredient) error {
	if f.fail {
		return errStorageDown
	}
	f.ingredients[ingredient.ID] = *ingredient
	return nil
}

func (f *fakeIngredientRepo) Delete(ctx context.Context, id int) error {
	if f.fail {
		return errStorageDown
	}
	delete(f.joinRows, id)
	delete(f.ingredients, id)
	return nil
}

// fakeRecipeRepo is an in-memory domain.RecipeRepository.
type fakeRecipeRepo struct {
	recipes map[int]domain.Recipe
	nextID  int
	fail    bool
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{recipes: make(map[int]domain.Recipe)}
}

func (f *fakeRecipeRepo) matching(term string) []domain.Recipe {
	var out []domain.Recipe
	lower := strings.ToLower(term)
	for _, recipe := range f.recipes {
		if term == "" ||
			strings.Contains(strings.ToLower(recipe.Name), lower) ||
			strings.Contains(strings.ToLower(recipe.Instructions), lower) {
			out = append(out, recipe)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeRecipeRepo) Search(ctx context.Context, term string) ([]domain.Recipe, error) {
	if f.fail {
		return nil, errStorageDown
	}
	return f.matching(term), nil
}

func (f *fakeRecipeRepo) SearchPage(ctx context.Context, term string, opts domain.PageOptions) (domain.Page[domain.Recipe], error) {
	if f.fail {
		return domain.EmptyPage[domain.Recipe](opts), errStorageDown
	}
	return domain.PageOf(f.matching(term), opts), nil
}

func (f *fakeRecipeRepo) GetByID(ctx context.Context, id int) (*domain.Recipe, error) {
	if f.fail {
		return nil, errStorageDown
	}
	if recipe, ok := f.recipes[id]; ok {
		return &recipe, nil
	}
	return nil, nil
}

func (f *fakeRecipeRepo) Create(ctx context.Context, recipe *domain.Recipe) (int, error) {
	if f.fail {
		return 0, errStorageDown
	}
	f.nextID++
	recipe.ID = f.nextID
	f.recipes[recipe.ID] = *recipe
	return recipe.ID, nil
}

func (f *fakeRecipeRepo) Update(ctx context.Context, recipe *domain.Recipe) error {
	if f.fail {
		return errStorageDown
	}
	// Same contract as the pgx repository: instructions and author only.
	existing := f.recipes[recipe.ID]
	existing.Instructions = recipe.Instructions
	existing.Author = recipe.Author
	f.recipes[recipe.ID] = existing
	return nil
}

func (f *fakeRecipeRepo) Delete(ctx context.Context, id int) error {
	if f.fail {
		return errStorageDown
	}
	delete(f.recipes, id)
	return nil
}
