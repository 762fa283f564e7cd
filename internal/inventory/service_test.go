package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/angelmondragon/lotflow-backend/internal/audit"
	"github.com/angelmondragon/lotflow-backend/pkg/db"
	"github.com/angelmondragon/lotflow-backend/pkg/db/models"
	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/lotflow-backend/pkg/errors"
	"github.com/angelmondragon/lotflow-backend/pkg/metrics"
	"github.com/angelmondragon/lotflow-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func strPtr(v string) *string { return &v }

type inventoryFixture struct {
	conn  *gorm.DB
	svc   Service
	audit audit.Service
}

func setupInventory(t *testing.T) inventoryFixture {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file:inventory_"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.InventoryRecord{}, &models.SellRecord{}, &models.AuditLogEntry{}))

	auditSvc, err := audit.NewService(audit.NewRepository(conn))
	require.NoError(t, err)
	svc, err := NewService(NewRepository(conn), db.NewFromConn(conn), auditSvc, nil)
	require.NoError(t, err)
	svc.(*service).now = func() time.Time { return time.UnixMilli(1722470400000).UTC() }
	return inventoryFixture{conn: conn, svc: svc, audit: auditSvc}
}

func TestCreateAndListRecords(t *testing.T) {
	fx := setupInventory(t)
	ctx := context.Background()

	_, err := fx.svc.CreateRecord(ctx, CreateRecordInput{
		RecordDate:  types.MustParseDate("2024-08-01"),
		Format:      strPtr("CALIP"),
		Shape:       strPtr("OVAL"),
		Description: strPtr("Blue sapphire calibrated"),
		Cts:         amount("1.25"),
		Amount:      amount("500"),
	})
	require.NoError(t, err)
	rec, err := fx.svc.CreateRecord(ctx, CreateRecordInput{
		Format: strPtr("FANCY"),
		Shape:  strPtr("ROUND"),
		Cts:    amount("2"),
		Amount: amount("900"),
	})
	require.NoError(t, err)
	assert.Equal(t, enums.InventoryStatusAvailable, rec.Status)
	assert.Equal(t, "2024-08-01", rec.RecordDate.String(), "record date defaults to today")

	all, err := fx.svc.ListRecords(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	round, err := fx.svc.ListRecords(ctx, ListFilter{Category: "round"})
	require.NoError(t, err)
	require.Len(t, round, 1)
	assert.Equal(t, rec.ID, round[0].ID)

	searched, err := fx.svc.ListRecords(ctx, ListFilter{Search: "sapphire"})
	require.NoError(t, err)
	require.Len(t, searched, 1)

	summary, err := fx.svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.RecordCount)
	assert.True(t, summary.RemainingCts.Equal(decimal.RequireFromString("3.25")))
}

func TestSellMarksRecordsSold(t *testing.T) {
	fx := setupInventory(t)
	ctx := context.Background()

	a, err := fx.svc.CreateRecord(ctx, CreateRecordInput{Cts: amount("1.5"), Amount: amount("300")})
	require.NoError(t, err)
	b, err := fx.svc.CreateRecord(ctx, CreateRecordInput{Cts: amount("0.5"), Amount: amount("150")})
	require.NoError(t, err)

	sell, err := fx.svc.Sell(ctx, SellInput{PartyID: strPtr("P-7"), InventoryIDs: []uuid.UUID{a.ID, b.ID, a.ID}})
	require.NoError(t, err)
	assert.Equal(t, "SELL-1722470400000", sell.SellID)
	assert.True(t, sell.TotalCts.Equal(decimal.NewFromInt(2)))
	assert.True(t, sell.TotalAmount.Equal(decimal.NewFromInt(450)))
	assert.True(t, sell.AvgPrice.Equal(decimal.NewFromInt(225)))
	assert.Len(t, sell.InventoryIDs, 2)

	summary, err := fx.svc.Summary(ctx)
	require.NoError(t, err)
	assert.True(t, summary.RemainingCts.IsZero())

	records, err := fx.svc.ListRecords(ctx, ListFilter{Search: "sell-1722470400000"})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	trail, err := fx.audit.List(ctx, audit.Filter{EntityType: enums.AuditEntitySellRecords})
	require.NoError(t, err)
	assert.Len(t, trail, 1)
}

func TestSellRejectsAlreadySoldAndRollsBack(t *testing.T) {
	fx := setupInventory(t)
	ctx := context.Background()

	a, err := fx.svc.CreateRecord(ctx, CreateRecordInput{Cts: amount("1"), Amount: amount("100")})
	require.NoError(t, err)
	b, err := fx.svc.CreateRecord(ctx, CreateRecordInput{Cts: amount("1"), Amount: amount("100")})
	require.NoError(t, err)

	_, err = fx.svc.Sell(ctx, SellInput{SellID: "S-1", InventoryIDs: []uuid.UUID{a.ID}})
	require.NoError(t, err)

	_, err = fx.svc.Sell(ctx, SellInput{SellID: "S-2", InventoryIDs: []uuid.UUID{a.ID, b.ID}})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
	assert.Equal(t, "Inventory already sold", typed.Message())

	var stored models.InventoryRecord
	require.NoError(t, fx.conn.Where("id = ?", b.ID).Take(&stored).Error)
	assert.Equal(t, enums.InventoryStatusAvailable, stored.Status, "partial sell must roll back")

	var sells int64
	require.NoError(t, fx.conn.Model(&models.SellRecord{}).Count(&sells).Error)
	assert.EqualValues(t, 1, sells)
}

func TestSellUnknownRecord(t *testing.T) {
	fx := setupInventory(t)

	_, err := fx.svc.Sell(context.Background(), SellInput{InventoryIDs: []uuid.UUID{uuid.New()}})
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())

	_, err = fx.svc.Sell(context.Background(), SellInput{InventoryIDs: []uuid.UUID{uuid.Nil}})
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestSellWithoutRecords(t *testing.T) {
	fx := setupInventory(t)

	sell, err := fx.svc.Sell(context.Background(), SellInput{SellID: "S-EMPTY"})
	require.NoError(t, err)
	assert.True(t, sell.TotalCts.IsZero())
	assert.True(t, sell.AvgPrice.IsZero())
	assert.Equal(t, "2024-08-01", sell.RecordDate.String())
}

func TestSellDurationUsesWallClock(t *testing.T) {
	fx := setupInventory(t)
	reg := prometheus.NewRegistry()
	svc, err := NewService(NewRepository(fx.conn), db.NewFromConn(fx.conn), fx.audit, metrics.NewTransitionMetrics(reg))
	require.NoError(t, err)
	svc.(*service).now = func() time.Time { return time.UnixMilli(1722470400000).UTC() }

	_, err = svc.Sell(context.Background(), SellInput{})
	require.NoError(t, err)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	var seconds float64 = -1
	for _, mf := range mfs {
		if mf.GetName() == "lotflow_transition_duration_seconds" && len(mf.GetMetric()) > 0 {
			seconds = mf.GetMetric()[0].GetHistogram().GetSampleSum()
		}
	}
	assert.GreaterOrEqual(t, seconds, 0.0)
	assert.Less(t, seconds, 60.0)
}
