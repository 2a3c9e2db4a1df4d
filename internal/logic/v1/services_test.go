package v1

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefbook/recipe-service/internal/core/domain"
)

func TestIngredientSaveDispatch(t *testing.T) {
	ctx := context.Background()
	repo := newFakeIngredientRepo()
	svc := NewIngredientService(repo)

	// Unsaved entity: create, id written back.
	ingredient := domain.Ingredient{Name: "basil"}
	require.NoError(t, svc.Save(ctx, &ingredient))
	require.True(t, ingredient.Saved())

	// Round trip: find returns the saved entity in full.
	found := svc.Find(ctx, ingredient.ID)
	require.NotNil(t, found)
	assert.Equal(t, ingredient, *found)

	// Saved entity: update, same id.
	id := ingredient.ID
	ingredient.Name = "thai basil"
	require.NoError(t, svc.Save(ctx, &ingredient))
	assert.Equal(t, id, ingredient.ID)
	assert.Equal(t, "thai basil", svc.Find(ctx, id).Name)
}

func TestIngredientSearchDegradesOnStorageFailure(t *testing.T) {
	ctx := context.Background()
	repo := newFakeIngredientRepo()
	svc := NewIngredientService(repo)

	require.NoError(t, svc.Save(ctx, &domain.Ingredient{Name: "salt"}))

	repo.fail = true
	assert.Empty(t, svc.Search(ctx, ""))
	assert.Nil(t, svc.Find(ctx, 1))

	page := svc.SearchPage(ctx, "", domain.PageOptions{PageNumber: 2, PageSize: 10})
	assert.Equal(t, 2, page.PageNumber)
	assert.Equal(t, 0, page.TotalItems)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestIngredientWriteFailuresPropagate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeIngredientRepo()
	svc := NewIngredientService(repo)
	repo.fail = true

	assert.Error(t, svc.Save(ctx, &domain.Ingredient{Name: "salt"}))
	assert.Error(t, svc.Delete(ctx, 7))
}

func TestIngredientDeleteRemovesJoinReferences(t *testing.T) {
	ctx := context.Background()
	repo := newFakeIngredientRepo()
	svc := NewIngredientService(repo)

	ingredient := domain.Ingredient{Name: "garlic"}
	require.NoError(t, svc.Save(ctx, &ingredient))
	repo.joinRows[ingredient.ID] = 2 // referenced by two recipes

	require.NoError(t, svc.Delete(ctx, ingredient.ID))
	assert.Nil(t, svc.Find(ctx, ingredient.ID))
	assert.NotContains(t, repo.joinRows, ingredient.ID)
}

func TestIngredientSearchPaging(t *testing.T) {
	ctx := context.Background()
	repo := newFakeIngredientRepo()
	svc := NewIngredientService(repo)

	for i := 0; i < 25; i++ {
		require.NoError(t, svc.Save(ctx, &domain.Ingredient{Name: "item"}))
	}

	page := svc.SearchPage(ctx, "", domain.PageOptions{PageNumber: 1, PageSize: 10})
	assert.Equal(t, 25, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 10)

	page = svc.SearchPage(ctx, "", domain.PageOptions{PageNumber: 3, PageSize: 10})
	assert.Len(t, page.Items, 5)

	page = svc.SearchPage(ctx, "", domain.PageOptions{PageNumber: 4, PageSize: 10})
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 25, page.TotalItems)
}

func TestRecipeSaveDispatch(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRecipeRepo()
	svc := NewRecipeService(repo)

	author := domain.Chef{ID: 1, Username: "alice"}
	recipe := domain.Recipe{Name: "carbonara", Instructions: "whisk eggs", Author: author}
	require.NoError(t, svc.Save(ctx, &recipe))
	require.True(t, recipe.Saved())

	// Update touches instructions and author only, never the name.
	other := domain.Chef{ID: 2, Username: "bob"}
	update := domain.Recipe{ID: recipe.ID, Name: "renamed", Instructions: "whisk eggs gently", Author: other}
	require.NoError(t, svc.Save(ctx, &update))

	got := svc.Find(ctx, recipe.ID)
	require.NotNil(t, got)
	assert.Equal(t, "carbonara", got.Name)
	assert.Equal(t, "whisk eggs gently", got.Instructions)
	assert.Equal(t, 2, got.Author.ID)
}

func TestRecipeSearchMatchesNameOrInstructions(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRecipeRepo()
	svc := NewRecipeService(repo)

	author := domain.Chef{ID: 1, Username: "alice"}
	require.NoError(t, svc.Save(ctx, &domain.Recipe{Name: "Pancakes", Instructions: "mix flour", Author: author}))
	require.NoError(t, svc.Save(ctx, &domain.Recipe{Name: "Omelette", Instructions: "beat eggs with FLOUR", Author: author}))
	require.NoError(t, svc.Save(ctx, &domain.Recipe{Name: "Salad", Instructions: "chop", Author: author}))

	assert.Len(t, svc.Search(ctx, "flour"), 2)
	assert.Len(t, svc.Search(ctx, "pancake"), 1)
	assert.Len(t, svc.Search(ctx, ""), 3)
	assert.Empty(t, svc.Search(ctx, "no-such"))
}

func TestChefServiceDegradeAndSave(t *testing.T) {
	ctx := context.Background()
	repo := newFakeChefRepo()
	svc := NewChefService(repo)

	chef := domain.Chef{Username: "alice", Email: "a@example.com", Password: "pw"}
	require.NoError(t, svc.Save(ctx, &chef))
	require.True(t, chef.Saved())

	assert.Len(t, svc.Search(ctx, "ali"), 1)
	assert.NotNil(t, svc.FindByUsername(ctx, "alice"))

	repo.fail = true
	assert.Empty(t, svc.Search(ctx, ""))
	assert.Nil(t, svc.Find(ctx, chef.ID))
	assert.Nil(t, svc.FindByUsername(ctx, "alice"))

	// Chef delete is a single-row removal, no cascade.
	repo.fail = false
	require.NoError(t, svc.Delete(ctx, chef.ID))
	assert.Nil(t, svc.Find(ctx, chef.ID))
}
