package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/smartdairy/internal/billing/domain"
	customerrepo "github.com/smallbiznis/smartdairy/internal/customer/repository"
	customersvc "github.com/smallbiznis/smartdairy/internal/customer/service"
	deliveryrepo "github.com/smallbiznis/smartdairy/internal/delivery/repository"
	deliverysvc "github.com/smallbiznis/smartdairy/internal/delivery/service"
	"github.com/smallbiznis/smartdairy/pkg/db/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupBillingService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()
	db := dbtest.New(t)
	customers := customersvc.New(customersvc.Params{DB: db, Log: zap.NewNop(), Repo: customerrepo.Provide()})
	deliveries := deliverysvc.New(deliverysvc.Params{
		DB:          db,
		Log:         zap.NewNop(),
		Repo:        deliveryrepo.Provide(),
		CustomerSvc: customers,
	})
	return New(Params{Log: zap.NewNop(), DeliverySvc: deliveries}), db
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestCalculateGroupsPerCustomer(t *testing.T) {
	svc, db := setupBillingService(t)
	a := dbtest.SeedCustomer(t, db, "A", 50, nil)
	b := dbtest.SeedCustomer(t, db, "B", 40, nil)
	dbtest.SeedEntry(t, db, a, "2026-10-01", 10)
	dbtest.SeedEntry(t, db, a, "2026-10-02", 5)
	dbtest.SeedEntry(t, db, b, "2026-10-03", 3)

	result, err := svc.Calculate(context.Background(), 2026, time.October)
	require.NoError(t, err)

	require.Equal(t, 2, result.TotalCustomers)
	require.Len(t, result.Customers, 2)

	billA, ok := result.Find(a)
	require.True(t, ok)
	assertDecimal(t, "15", billA.TotalLitres)
	assertDecimal(t, "750", billA.TotalAmount)

	billB, ok := result.Find(b)
	require.True(t, ok)
	assertDecimal(t, "3", billB.TotalLitres)
	assertDecimal(t, "120", billB.TotalAmount)

	assertDecimal(t, "870", result.GrandTotal)
	assert.Equal(t, "October 2026", result.Period())
}

func TestCalculateExcludesOtherMonthsAndIdleCustomers(t *testing.T) {
	svc, db := setupBillingService(t)
	a := dbtest.SeedCustomer(t, db, "A", 50, nil)
	dbtest.SeedCustomer(t, db, "Idle", 45, nil)
	dbtest.SeedEntry(t, db, a, "2026-09-30", 100)
	dbtest.SeedEntry(t, db, a, "2026-10-15", 2)
	dbtest.SeedEntry(t, db, a, "2026-11-01", 100)

	result, err := svc.Calculate(context.Background(), 2026, time.October)
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalCustomers)
	assertDecimal(t, "2", result.Customers[0].TotalLitres)
	assertDecimal(t, "100", result.GrandTotal)
}

func TestCalculateEmptyMonthIsNotAnError(t *testing.T) {
	svc, _ := setupBillingService(t)

	result, err := svc.Calculate(context.Background(), 2026, time.February)
	require.NoError(t, err)
	assert.True(t, result.Empty())
	assert.NotNil(t, result.Customers)
	assert.Equal(t, 0, result.TotalCustomers)
	assert.True(t, result.GrandTotal.IsZero())
}

func TestCalculateUsesCurrentPrice(t *testing.T) {
	svc, db := setupBillingService(t)
	a := dbtest.SeedCustomer(t, db, "A", 50, nil)
	dbtest.SeedEntry(t, db, a, "2026-09-10", 10)

	before, err := svc.Calculate(context.Background(), 2026, time.September)
	require.NoError(t, err)
	assertDecimal(t, "500", before.GrandTotal)

	require.NoError(t, db.Exec(`UPDATE customers SET price_per_ltr = 60 WHERE id = ?`, a).Error)

	// past months are repriced when recomputed
	after, err := svc.Calculate(context.Background(), 2026, time.September)
	require.NoError(t, err)
	assertDecimal(t, "600", after.GrandTotal)
}

func TestCalculateRejectsInvalidPeriod(t *testing.T) {
	svc, _ := setupBillingService(t)

	_, err := svc.Calculate(context.Background(), 2026, time.Month(0))
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)

	_, err = svc.Calculate(context.Background(), 0, time.May)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}
