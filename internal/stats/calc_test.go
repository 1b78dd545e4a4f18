package stats

import (
	"testing"
	"time"

	"kiosk-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fptr(v float64) *float64 { return &v }

func TestBeforeWindow(t *testing.T) {
	w := BeforeWindow(date(2026, time.February, 15))

	assert.Equal(t, date(2026, time.January, 15), w.Start)
	assert.Equal(t, date(2026, time.February, 14), w.End)
}

func TestAfterWindow(t *testing.T) {
	w := AfterWindow(date(2026, time.February, 15))

	assert.Equal(t, date(2026, time.February, 15), w.Start)
	assert.Equal(t, date(2026, time.March, 14), w.End)
}

func TestAfterWindowReady(t *testing.T) {
	completedAt := date(2026, time.February, 15)

	assert.False(t, AfterWindowReady(completedAt, date(2026, time.February, 20)))
	assert.False(t, AfterWindowReady(completedAt, date(2026, time.March, 14)))
	assert.True(t, AfterWindowReady(completedAt, date(2026, time.March, 15)))
	assert.True(t, AfterWindowReady(completedAt, date(2026, time.April, 1)))
}

func TestPercentChange(t *testing.T) {
	got := PercentChange(fptr(100), fptr(150))
	require.NotNil(t, got)
	assert.Equal(t, 50.0, *got)

	got = PercentChange(fptr(200), fptr(150))
	require.NotNil(t, got)
	assert.Equal(t, -25.0, *got)

	// tek ondalığa yuvarlama
	got = PercentChange(fptr(3), fptr(4))
	require.NotNil(t, got)
	assert.Equal(t, 33.3, *got)
}

func TestPercentChangeNotComputable(t *testing.T) {
	// before sıfırken bölme yapılmaz, Inf/NaN asla dönmez
	assert.Nil(t, PercentChange(fptr(0), fptr(100)))
	assert.Nil(t, PercentChange(nil, fptr(100)))
	assert.Nil(t, PercentChange(fptr(100), nil))
	assert.Nil(t, PercentChange(nil, nil))
}

func TestEffectiveAcquisition(t *testing.T) {
	// Fiyat her zaman enum'u ezer
	assert.Equal(t, EffectivePaid, EffectiveAcquisition(models.AcquisitionFree, fptr(50)))
	assert.Equal(t, EffectivePaid, EffectiveAcquisition(models.AcquisitionLease, fptr(120)))
	assert.Equal(t, EffectivePaid, EffectiveAcquisition(models.AcquisitionRental, fptr(1)))

	assert.Equal(t, EffectiveLease, EffectiveAcquisition(models.AcquisitionLease, nil))
	assert.Equal(t, EffectiveLease, EffectiveAcquisition(models.AcquisitionLeaseFree, fptr(0)))

	assert.Equal(t, EffectiveRental, EffectiveAcquisition(models.AcquisitionRental, nil))

	// Fiyatsız FREE ve PURCHASE bedelsiz sayılır
	assert.Equal(t, EffectiveFree, EffectiveAcquisition(models.AcquisitionFree, nil))
	assert.Equal(t, EffectiveFree, EffectiveAcquisition(models.AcquisitionPurchase, fptr(0)))
}

func TestMonthlyKioskStats(t *testing.T) {
	jan := date(2026, time.January, 10)
	feb := date(2026, time.February, 5)

	kiosks := []models.Kiosk{
		{Acquisition: models.AcquisitionPurchase, SalePrice: fptr(100), DeliveryDate: &feb},
		{Acquisition: models.AcquisitionFree, DeliveryDate: &feb},
		{Acquisition: models.AcquisitionLease, DeliveryDate: &jan},
		{Acquisition: models.AcquisitionRental, DeliveryDate: &jan},
		{Acquisition: models.AcquisitionPurchase, SalePrice: fptr(250), DeliveryDate: &jan},
		// teslim tarihi yoksa kovaya girmez
		{Acquisition: models.AcquisitionFree},
	}

	got := MonthlyKioskStats(kiosks)
	require.Len(t, got, 2)

	assert.Equal(t, "2026-01", got[0].Month)
	assert.Equal(t, 1, got[0].LeaseCount)
	assert.Equal(t, 1, got[0].RentalCount)
	assert.Equal(t, 1, got[0].PaidCount)
	assert.Equal(t, 3, got[0].TotalCount)
	assert.Equal(t, 250.0, got[0].PaidSales)
	assert.Equal(t, 250.0, got[0].TotalSales)

	assert.Equal(t, "2026-02", got[1].Month)
	assert.Equal(t, 1, got[1].PaidCount)
	assert.Equal(t, 1, got[1].FreeCount)
	assert.Equal(t, 2, got[1].TotalCount)
	assert.Equal(t, 100.0, got[1].PaidSales)
}

func TestPercentOfTotal(t *testing.T) {
	assert.Equal(t, 33, PercentOfTotal(1, 3))
	assert.Equal(t, 50, PercentOfTotal(1, 2))
	assert.Equal(t, 0, PercentOfTotal(5, 0))
}
