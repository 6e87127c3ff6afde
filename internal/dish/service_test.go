package dish_test

import (
	"testing"

	"menu-backend/internal/apperr"
	"menu-backend/internal/database"
	"menu-backend/internal/dish"
	"menu-backend/internal/menu"
	"menu-backend/internal/submenu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	menus    *menu.Service
	submenus *submenu.Service
	dishes   *dish.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	menus := menu.NewService(db)
	submenus := submenu.NewService(db, menus)
	dishes := dish.NewService(db, menus, submenus)
	return &fixture{db: db, menus: menus, submenus: submenus, dishes: dishes}
}

// requireCounts, menü sayacının alt menü sayaçlarının toplamına eşit
// kaldığını doğrular.
func (f *fixture) requireCounts(t *testing.T, menuID uuid.UUID, wantSubmenus, wantDishes int) {
	t.Helper()
	m, err := f.menus.GetByID(menuID)
	require.NoError(t, err)
	require.Equal(t, wantSubmenus, m.SubmenusCount)
	require.Equal(t, wantDishes, m.DishesCount)

	subs, err := f.submenus.List(menuID)
	require.NoError(t, err)
	sum := 0
	for _, sub := range subs {
		sum += sub.DishesCount
	}
	require.Equal(t, m.DishesCount, sum)
}

func TestCreateDishIncrementsBothCounters(t *testing.T) {
	f := newFixture(t)

	m, err := f.menus.Create("Ana menü", "")
	require.NoError(t, err)
	sub, err := f.submenus.Create(m.ID, "Çorbalar", "")
	require.NoError(t, err)

	d, err := f.dishes.Create(m.ID, sub.ID, "Mercimek", "kırmızı mercimek", decimal.RequireFromString("45.50"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, d.ID)
	assert.Equal(t, sub.ID, d.SubmenuID)

	got, err := f.submenus.GetByID(m.ID, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.DishesCount)

	f.requireCounts(t, m.ID, 1, 1)
}

func TestCreateDishParentValidation(t *testing.T) {
	f := newFixture(t)

	m, err := f.menus.Create("Ana menü", "")
	require.NoError(t, err)
	sub, err := f.submenus.Create(m.ID, "Çorbalar", "")
	require.NoError(t, err)

	_, err = f.dishes.Create(uuid.New(), sub.ID, "Mercimek", "", decimal.RequireFromString("45.50"))
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, ae.Status)
	assert.Equal(t, "menu not found", ae.Detail)

	_, err = f.dishes.Create(m.ID, uuid.New(), "Mercimek", "", decimal.RequireFromString("45.50"))
	ae, ok = apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, ae.Status)
	assert.Equal(t, "submenu not found", ae.Detail)

	// Alt menü başka menünün altında: sahiplik 404'ü
	m2, err := f.menus.Create("İçecekler", "")
	require.NoError(t, err)
	_, err = f.dishes.Create(m2.ID, sub.ID, "Mercimek", "", decimal.RequireFromString("45.50"))
	ae, ok = apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, ae.Status)
	assert.Contains(t, ae.Detail, "does not belong to menu")
}

func TestCreateDishDuplicateTitleAcrossSubmenus(t *testing.T) {
	f := newFixture(t)

	m, err := f.menus.Create("Ana menü", "")
	require.NoError(t, err)
	sub1, err := f.submenus.Create(m.ID, "Çorbalar", "")
	require.NoError(t, err)
	sub2, err := f.submenus.Create(m.ID, "Kebaplar", "")
	require.NoError(t, err)

	_, err = f.dishes.Create(m.ID, sub1.ID, "Günün yemeği", "", decimal.RequireFromString("99.90"))
	require.NoError(t, err)

	_, err = f.dishes.Create(m.ID, sub2.ID, "Günün yemeği", "", decimal.RequireFromString("89.90"))
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 400, ae.Status)
	assert.Equal(t, "the dish is already registered", ae.Detail)

	// Başarısız create sayaçları değiştirmemeli
	f.requireCounts(t, m.ID, 2, 1)
}

func TestCreateDishNegativePrice(t *testing.T) {
	f := newFixture(t)

	m, err := f.menus.Create("Ana menü", "")
	require.NoError(t, err)
	sub, err := f.submenus.Create(m.ID, "Çorbalar", "")
	require.NoError(t, err)

	_, err = f.dishes.Create(m.ID, sub.ID, "Mercimek", "", decimal.RequireFromString("-1"))
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 400, ae.Status)
}

func TestGetDishNotFoundAndOwnership(t *testing.T) {
	f := newFixture(t)

	m, err := f.menus.Create("Ana menü", "")
	require.NoError(t, err)
	sub1, err := f.submenus.Create(m.ID, "Çorbalar", "")
	require.NoError(t, err)
	sub2, err := f.submenus.Create(m.ID, "Kebaplar", "")
	require.NoError(t, err)
	d, err := f.dishes.Create(m.ID, sub1.ID, "Mercimek", "", decimal.RequireFromString("45.50"))
	require.NoError(t, err)

	_, err = f.dishes.GetByID(sub1.ID, uuid.New())
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, ae.Status)
	assert.Equal(t, "dish not found", ae.Detail)

	_, err = f.dishes.GetByID(sub2.ID, d.ID)
	ae, ok = apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, ae.Status)
	assert.Contains(t, ae.Detail, "does not belong to submenu")
}

func TestListDishesMissingSubmenuReturnsEmpty(t *testing.T) {
	f := newFixture(t)

	dishes, err := f.dishes.List(uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, dishes)
	assert.Empty(t, dishes)
}

func TestUpdateDishPartial(t *testing.T) {
	f := newFixture(t)

	m, err := f.menus.Create("Ana menü", "")
	require.NoError(t, err)
	sub, err := f.submenus.Create(m.ID, "Çorbalar", "")
	require.NoError(t, err)
	d, err := f.dishes.Create(m.ID, sub.ID, "Mercimek", "eski", decimal.RequireFromString("45.50"))
	require.NoError(t, err)

	price := decimal.RequireFromString("49.90")
	updated, err := f.dishes.Update(sub.ID, d.ID, dish.UpdateInput{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Mercimek", updated.Title)
	assert.Equal(t, "eski", updated.Description)
	assert.True(t, updated.Price.Equal(price))

	_, err = f.dishes.Update(sub.ID, d.ID, dish.UpdateInput{})
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 400, ae.Status)
}

func TestDishPriceFullPrecision(t *testing.T) {
	f := newFixture(t)

	m, err := f.menus.Create("Ana menü", "")
	require.NoError(t, err)
	sub, err := f.submenus.Create(m.ID, "Çorbalar", "")
	require.NoError(t, err)

	// Saklama tam hassasiyetli, yuvarlama sadece cevap gösteriminde
	d, err := f.dishes.Create(m.ID, sub.ID, "Mercimek", "", decimal.RequireFromString("120.226"))
	require.NoError(t, err)

	got, err := f.dishes.GetByID(sub.ID, d.ID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("120.226")))
	assert.Equal(t, "120.23", got.Price.StringFixed(2))
}

func TestDeleteDishDecrementsBothCounters(t *testing.T) {
	f := newFixture(t)

	m, err := f.menus.Create("Ana menü", "")
	require.NoError(t, err)
	sub, err := f.submenus.Create(m.ID, "Çorbalar", "")
	require.NoError(t, err)
	d1, err := f.dishes.Create(m.ID, sub.ID, "Mercimek", "", decimal.RequireFromString("45.50"))
	require.NoError(t, err)
	_, err = f.dishes.Create(m.ID, sub.ID, "Ezogelin", "", decimal.RequireFromString("48.00"))
	require.NoError(t, err)

	f.requireCounts(t, m.ID, 1, 2)

	require.NoError(t, f.dishes.Delete(m.ID, sub.ID, d1.ID))

	got, err := f.submenus.GetByID(m.ID, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.DishesCount)
	f.requireCounts(t, m.ID, 1, 1)

	// İkinci silme idempotent şekilde 404
	err = f.dishes.Delete(m.ID, sub.ID, d1.ID)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, ae.Status)
	assert.Equal(t, "dish not found", ae.Detail)
	f.requireCounts(t, m.ID, 1, 1)
}
