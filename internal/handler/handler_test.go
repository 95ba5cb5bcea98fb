package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tindwyr/crafthall/internal/catalog"
	"github.com/tindwyr/crafthall/internal/crafting"
	"github.com/tindwyr/crafthall/internal/domain"
	"github.com/tindwyr/crafthall/internal/event"
	"github.com/tindwyr/crafthall/internal/guild"
	"github.com/tindwyr/crafthall/internal/inventory"
	"github.com/tindwyr/crafthall/internal/recipebook"
)

type services struct {
	recipes *catalog.RecipeCatalog
	skills  *catalog.SkillCatalog
	crafter crafting.Service
	bag     inventory.Service
	book    recipebook.Service
	guild   guild.Service
}

func newServices(t *testing.T) *services {
	t.Helper()

	recipes, err := catalog.NewRecipeCatalog([]domain.Recipe{
		{ID: 1, Name: "Iron Sword", Materials: []string{"iron ingot"}, MaxProgress: 100, Difficulty: domain.DifficultyEasy, Category: "weapon", Value: 100, SellPrice: 50},
	})
	require.NoError(t, err)

	skills, err := catalog.NewSkillCatalog([]domain.Skill{
		{ID: 1, Key: "q", Name: "Hammer Strike", ProgressBonus: 25, Category: "smithing"},
	})
	require.NoError(t, err)

	bus := event.NewMemoryBus()
	bag := inventory.NewService(recipes, bus)
	return &services{
		recipes: recipes,
		skills:  skills,
		crafter: crafting.NewService(recipes, skills, bus),
		bag:     bag,
		book:    recipebook.NewService(recipes, bus),
		guild:   guild.NewService(recipes, bag, bus),
	}
}

func postJSON(t *testing.T, h http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestStartCraftAndSession(t *testing.T) {
	s := newServices(t)

	rec := postJSON(t, HandleStartCraft(s.crafter, s.recipes), StartCraftRequest{RecipeID: 1})
	require.Equal(t, http.StatusOK, rec.Code)

	var session domain.CraftingSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, 1, session.RecipeID)
	assert.Equal(t, 0, session.Progress)
	assert.True(t, session.IsActive)

	getReq := httptest.NewRequest(http.MethodGet, "/", nil)
	getRec := httptest.NewRecorder()
	HandleGetSession(s.crafter)(getRec, getReq)
	assert.Equal(t, http.StatusOK, getRec.Code)
}

func TestStartCraftUnknownRecipe(t *testing.T) {
	s := newServices(t)

	rec := postJSON(t, HandleStartCraft(s.crafter, s.recipes), StartCraftRequest{RecipeID: 404})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUseSkillWithoutSession(t *testing.T) {
	s := newServices(t)

	rec := postJSON(t, HandleUseSkill(s.crafter), UseSkillRequest{SkillID: 1})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUseSkillByKeyAdvancesProgress(t *testing.T) {
	s := newServices(t)

	postJSON(t, HandleStartCraft(s.crafter, s.recipes), StartCraftRequest{RecipeID: 1})
	rec := postJSON(t, HandleUseSkill(s.crafter), UseSkillRequest{Key: "q"})
	require.Equal(t, http.StatusOK, rec.Code)

	var session domain.CraftingSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, 25, session.Progress)
}

func TestGetSessionWhenIdle(t *testing.T) {
	s := newServices(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	HandleGetSession(s.crafter)(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSellItemHandler(t *testing.T) {
	s := newServices(t)
	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()

	_, err := s.bag.AddItem(ctx, 1, 3, domain.QualityNormal)
	require.NoError(t, err)

	rec := postJSON(t, HandleSellItem(s.guild, s.bag), SellItemRequest{RecipeName: "Iron Sword"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SellItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 50, resp.GoldGained)
	assert.Equal(t, 50, resp.Gold)
}

func TestSellItemWithoutStock(t *testing.T) {
	s := newServices(t)

	rec := postJSON(t, HandleSellItem(s.guild, s.bag), SellItemRequest{RecipeID: 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSortBagRejectsUnknownMode(t *testing.T) {
	s := newServices(t)

	rec := postJSON(t, HandleSortBag(s.bag), SortBagRequest{Mode: "chaos"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToggleFavoriteRequiresUnlock(t *testing.T) {
	s := newServices(t)

	rec := postJSON(t, HandleToggleFavorite(s.book), FavoriteRequest{RecipeID: 1})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()
	_, err := s.book.Unlock(ctx, 1)
	require.NoError(t, err)

	rec = postJSON(t, HandleToggleFavorite(s.book), FavoriteRequest{RecipeID: 1})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp FavoriteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Favorite)
}

func TestHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	HandleHealthz()(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
