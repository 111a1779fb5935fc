package service

import (
	"context"
	"testing"

	"github.com/smallbiznis/smartdairy/internal/config"
	customerrepo "github.com/smallbiznis/smartdairy/internal/customer/repository"
	customersvc "github.com/smallbiznis/smartdairy/internal/customer/service"
	deliveryrepo "github.com/smallbiznis/smartdairy/internal/delivery/repository"
	deliverysvc "github.com/smallbiznis/smartdairy/internal/delivery/service"
	"github.com/smallbiznis/smartdairy/internal/overview/domain"
	"github.com/smallbiznis/smartdairy/pkg/db/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupOverview(t *testing.T, recentLimit int) (domain.Service, *gorm.DB) {
	t.Helper()
	db := dbtest.New(t)
	customers := customersvc.New(customersvc.Params{DB: db, Log: zap.NewNop(), Repo: customerrepo.Provide()})
	entries := deliverysvc.New(deliverysvc.Params{DB: db, Log: zap.NewNop(), Repo: deliveryrepo.Provide(), CustomerSvc: customers})

	settings := config.DefaultSettings()
	settings.Overview.RecentLimit = recentLimit
	return New(Params{
		Log:         zap.NewNop(),
		Settings:    config.NewStaticSettings(settings),
		CustomerSvc: customers,
		DeliverySvc: entries,
	}), db
}

func TestSummaryEmpty(t *testing.T) {
	svc, _ := setupOverview(t, 10)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.TotalCustomers)
	assert.Zero(t, summary.TotalEntries)
	assert.Zero(t, summary.TotalLitres)
	assert.Zero(t, summary.TotalRevenue)
	assert.Empty(t, summary.Recent)
}

func TestSummaryTotalsAndRecent(t *testing.T) {
	svc, db := setupOverview(t, 2)
	a := dbtest.SeedCustomer(t, db, "A", 50, nil)
	b := dbtest.SeedCustomer(t, db, "B", 40, nil)
	dbtest.SeedCustomer(t, db, "C", 60, nil)
	dbtest.SeedEntry(t, db, a, "2026-10-01", 5)
	dbtest.SeedEntry(t, db, a, "2026-10-02", 10)
	dbtest.SeedEntry(t, db, b, "2026-10-02", 3)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), summary.TotalCustomers)
	assert.Equal(t, int64(3), summary.TotalEntries)
	assert.Equal(t, 18.0, summary.TotalLitres)
	assert.Equal(t, 870.0, summary.TotalRevenue)

	require.Len(t, summary.Recent, 2)
	assert.Equal(t, "A", summary.Recent[0].CustomerName)
	assert.Equal(t, "2026-10-02", summary.Recent[0].EntryDate.String())
	assert.Equal(t, "B", summary.Recent[1].CustomerName)
}
