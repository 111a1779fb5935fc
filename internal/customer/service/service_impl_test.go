package service

import (
	"context"
	"testing"

	"github.com/smallbiznis/smartdairy/internal/customer/domain"
	"github.com/smallbiznis/smartdairy/internal/customer/repository"
	"github.com/smallbiznis/smartdairy/pkg/db/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupCustomerService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()
	db := dbtest.New(t)
	svc := New(Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
	return svc, db
}

func strPtr(s string) *string { return &s }

func TestCreateThenGetRoundTrips(t *testing.T) {
	svc, _ := setupCustomerService(t)
	ctx := context.Background()

	for _, tc := range []struct {
		name  string
		price float64
	}{
		{"Ramesh", 50},
		{"Suresh Kumar", 0},
		{"Lakshmi", 62.75},
	} {
		created, err := svc.Create(ctx, domain.CreateCustomerRequest{Name: tc.name, PricePerLtr: tc.price})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)

		got, err := svc.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, tc.name, got.Name)
		assert.Equal(t, tc.price, got.PricePerLtr)
		assert.Nil(t, got.Contact)
	}
}

func TestCreateValidatesAndNormalizes(t *testing.T) {
	svc, _ := setupCustomerService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateCustomerRequest{Name: "   ", PricePerLtr: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Create(ctx, domain.CreateCustomerRequest{Name: "A", PricePerLtr: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	created, err := svc.Create(ctx, domain.CreateCustomerRequest{Name: "  Anita ", PricePerLtr: 48, Contact: strPtr(" 98765 43210 ")})
	require.NoError(t, err)
	assert.Equal(t, "Anita", created.Name)
	require.NotNil(t, created.Contact)
	assert.Equal(t, "98765 43210", *created.Contact)

	blank, err := svc.Create(ctx, domain.CreateCustomerRequest{Name: "Blank", PricePerLtr: 48, Contact: strPtr("  ")})
	require.NoError(t, err)
	got, err := svc.GetByID(ctx, blank.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Contact)
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	svc, _ := setupCustomerService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateCustomerRequest{Name: "Ramesh", PricePerLtr: 50})
	require.NoError(t, err)

	_, err = svc.Create(ctx, domain.CreateCustomerRequest{Name: "Ramesh", PricePerLtr: 40})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestListOrdersByName(t *testing.T) {
	svc, _ := setupCustomerService(t)
	ctx := context.Background()

	for _, name := range []string{"Charu", "Arjun", "Bina"} {
		_, err := svc.Create(ctx, domain.CreateCustomerRequest{Name: name, PricePerLtr: 50})
		require.NoError(t, err)
	}

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Arjun", "Bina", "Charu"}, []string{all[0].Name, all[1].Name, all[2].Name})

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestGetByIDMissing(t *testing.T) {
	svc, _ := setupCustomerService(t)

	_, err := svc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestUpdate(t *testing.T) {
	svc, _ := setupCustomerService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, domain.CreateCustomerRequest{Name: "A", PricePerLtr: 50, Contact: strPtr("9876543210")})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateCustomerRequest{Name: "B", PricePerLtr: 40})
	require.NoError(t, err)

	t.Run("same name keeps working", func(t *testing.T) {
		updated, err := svc.Update(ctx, domain.UpdateCustomerRequest{ID: a.ID, Name: "A", PricePerLtr: 55, Contact: strPtr("9876543210")})
		require.NoError(t, err)
		assert.Equal(t, 55.0, updated.PricePerLtr)
	})

	t.Run("collision with another customer", func(t *testing.T) {
		_, err := svc.Update(ctx, domain.UpdateCustomerRequest{ID: a.ID, Name: "B", PricePerLtr: 55})
		assert.ErrorIs(t, err, domain.ErrDuplicateName)

		got, err := svc.GetByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "A", got.Name)
	})

	t.Run("clearing the contact", func(t *testing.T) {
		_, err := svc.Update(ctx, domain.UpdateCustomerRequest{ID: a.ID, Name: "A2", PricePerLtr: 55})
		require.NoError(t, err)

		got, err := svc.GetByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "A2", got.Name)
		assert.Nil(t, got.Contact)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, domain.UpdateCustomerRequest{ID: 404, Name: "Z", PricePerLtr: 1})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDeleteRefusesCustomerWithEntries(t *testing.T) {
	svc, db := setupCustomerService(t)
	ctx := context.Background()

	withEntries, err := svc.Create(ctx, domain.CreateCustomerRequest{Name: "A", PricePerLtr: 50})
	require.NoError(t, err)
	dbtest.SeedEntry(t, db, withEntries.ID, "2026-10-01", 5)

	err = svc.Delete(ctx, withEntries.ID)
	assert.ErrorIs(t, err, domain.ErrCustomerHasEntries)

	_, err = svc.GetByID(ctx, withEntries.ID)
	assert.NoError(t, err)
	var entries int64
	require.NoError(t, db.Raw(`SELECT COUNT(*) FROM entries`).Scan(&entries).Error)
	assert.Equal(t, int64(1), entries)
}

func TestDeleteWithoutEntries(t *testing.T) {
	svc, _ := setupCustomerService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, domain.CreateCustomerRequest{Name: "A", PricePerLtr: 50})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, c.ID))
	_, err = svc.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, c.ID), domain.ErrNotFound)
}
