package history

import (
	"testing"
	"time"

	"kiosk-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBrandNameFromFC(t *testing.T) {
	assert.Equal(t, "FC022 / Lilmobi", BrandNameFromFC("FC022", "Lilmobi"))
	assert.Equal(t, "FC022", BrandNameFromFC("FC022", ""))
	assert.Equal(t, "Lilmobi", BrandNameFromFC("", "Lilmobi"))
	assert.Equal(t, "", BrandNameFromFC("", ""))
}

func TestLatestRowPicksMaxEventDate(t *testing.T) {
	older := models.LocationHistory{ID: 1, EventDate: day(2026, time.January, 15)}
	newer := models.LocationHistory{ID: 2, EventDate: day(2026, time.February, 10)}

	// Ekleme sırası sonucu değiştirmemeli
	got := LatestRow([]models.LocationHistory{older, newer})
	require.NotNil(t, got)
	assert.Equal(t, uint(2), got.ID)

	got = LatestRow([]models.LocationHistory{newer, older})
	require.NotNil(t, got)
	assert.Equal(t, uint(2), got.ID)
}

func TestLatestRowTieBreaksOnCreatedAt(t *testing.T) {
	eventDate := day(2026, time.March, 1)
	first := models.LocationHistory{ID: 1, EventDate: eventDate, CreatedAt: day(2026, time.March, 1)}
	second := models.LocationHistory{ID: 2, EventDate: eventDate, CreatedAt: day(2026, time.March, 2)}

	got := LatestRow([]models.LocationHistory{second, first})
	require.NotNil(t, got)
	assert.Equal(t, uint(2), got.ID)
}

func TestLatestRowEmpty(t *testing.T) {
	assert.Nil(t, LatestRow(nil))
	assert.Nil(t, LatestRow([]models.LocationHistory{}))
}

func TestApplyLatestWritesLiveAndProjectionFields(t *testing.T) {
	branchID := uint(7)
	partnerID := uint(3)
	price := 150.0

	kiosk := models.Kiosk{
		Status:      models.KioskStatusInStock,
		Acquisition: models.AcquisitionPurchase,
	}
	row := models.LocationHistory{
		MoveType:      models.MoveTypeDeploy,
		NewBranchID:   &branchID,
		NewBranchName: "Shibuya",
		NewPartnerID:  &partnerID,
		NewStatus:     models.KioskStatusDeployed,
		NewPrice:      &price,
		EventDate:     day(2026, time.February, 10),
	}

	changed := ApplyLatest(&kiosk, &row, "R01", "A03", "FC022 / Lilmobi")
	require.True(t, changed)

	assert.Equal(t, &branchID, kiosk.BranchID)
	assert.Equal(t, "Shibuya", kiosk.BranchName)
	assert.Equal(t, "FC022 / Lilmobi", kiosk.BrandName)
	assert.Equal(t, "R01", kiosk.RegionCode)
	assert.Equal(t, "A03", kiosk.AreaCode)
	assert.Equal(t, models.KioskStatusDeployed, kiosk.Status)
	assert.Equal(t, &partnerID, kiosk.CurrentPartnerID)
	assert.Equal(t, &price, kiosk.SalePrice)

	assert.Equal(t, models.MoveTypeDeploy, kiosk.LatestMoveType)
	assert.Equal(t, models.KioskStatusDeployed, kiosk.LatestStatus)
	assert.Equal(t, "Shibuya", kiosk.LatestBranchName)
	require.NotNil(t, kiosk.LatestEventDate)
	assert.True(t, kiosk.LatestEventDate.Equal(row.EventDate))
}

func TestApplyLatestIdempotent(t *testing.T) {
	branchID := uint(7)
	kiosk := models.Kiosk{}
	row := models.LocationHistory{
		MoveType:      models.MoveTypeTransfer,
		NewBranchID:   &branchID,
		NewBranchName: "Namba",
		NewStatus:     models.KioskStatusDeployed,
		EventDate:     day(2026, time.January, 20),
	}

	require.True(t, ApplyLatest(&kiosk, &row, "R02", "A05", ""))

	// Tekrarlanan senkronizasyon hiçbir şeyi değiştirmemeli
	assert.False(t, ApplyLatest(&kiosk, &row, "R02", "A05", ""))
}

func TestApplyLatestHistoryCodesWinOverBranchCodes(t *testing.T) {
	kiosk := models.Kiosk{}
	row := models.LocationHistory{
		MoveType:      models.MoveTypeDeploy,
		NewRegionCode: "R09",
		NewAreaCode:   "A11",
		EventDate:     day(2026, time.April, 1),
	}

	ApplyLatest(&kiosk, &row, "R01", "A01", "")

	assert.Equal(t, "R09", kiosk.RegionCode)
	assert.Equal(t, "A11", kiosk.AreaCode)
}

func TestApplyLatestKeepsFieldsRowDoesNotCarry(t *testing.T) {
	price := 80.0
	kiosk := models.Kiosk{
		BranchName:  "Ikebukuro",
		Status:      models.KioskStatusDeployed,
		Acquisition: models.AcquisitionLease,
		SalePrice:   &price,
	}

	// Yalnızca move_type taşıyan sentetik olay (durum düzeltme akışı)
	row := models.LocationHistory{
		MoveType:  models.MoveTypeMaintenance,
		EventDate: day(2026, time.May, 2),
	}

	ApplyLatest(&kiosk, &row, "", "", "")

	assert.Equal(t, "Ikebukuro", kiosk.BranchName)
	assert.Equal(t, models.KioskStatusDeployed, kiosk.Status)
	assert.Equal(t, models.AcquisitionLease, kiosk.Acquisition)
	assert.Equal(t, &price, kiosk.SalePrice)
	assert.Equal(t, models.MoveTypeMaintenance, kiosk.LatestMoveType)
}
