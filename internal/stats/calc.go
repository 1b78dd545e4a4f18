package stats

import (
	"math"
	"sort"
	"time"

	"kiosk-backend/internal/models"
)

// EffectiveType: istatistiklerde kullanılan türetilmiş sınıflandırma.
// Saklanan acquisition enum'undan bağımsız olarak salePrice > 0 her zaman
// PAID sayılır.
type EffectiveType string

const (
	EffectiveFree   EffectiveType = "FREE"
	EffectiveLease  EffectiveType = "LEASE"
	EffectivePaid   EffectiveType = "PAID"
	EffectiveRental EffectiveType = "RENTAL"
)

// EffectiveAcquisition öncelik sırası: fiyat > leasing ailesi > rental > bedelsiz.
func EffectiveAcquisition(acquisition models.AcquisitionType, salePrice *float64) EffectiveType {
	if salePrice != nil && *salePrice > 0 {
		return EffectivePaid
	}
	if acquisition == models.AcquisitionLease || acquisition == models.AcquisitionLeaseFree {
		return EffectiveLease
	}
	if acquisition == models.AcquisitionRental {
		return EffectiveRental
	}
	return EffectiveFree
}

// PercentChange yüzde değişimi hesaplar, tek ondalığa yuvarlar. Taraflardan
// biri eksikse veya before sıfırsa hesaplanamaz (nil); asla Inf/NaN dönmez.
func PercentChange(before, after *float64) *float64 {
	if before == nil || after == nil || *before == 0 {
		return nil
	}
	v := math.Round((*after-*before)/(*before)*1000) / 10
	return &v
}

// DateWindow kapalı bir tarih aralığı ([Start, End]).
type DateWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// BeforeWindow: tamamlanma tarihinden geriye takvim ayı.
// completedAt=2026-02-15 için [2026-01-15, 2026-02-14].
func BeforeWindow(completedAt time.Time) DateWindow {
	return DateWindow{
		Start: completedAt.AddDate(0, -1, 0),
		End:   completedAt.AddDate(0, 0, -1),
	}
}

// AfterWindow: tamamlanma tarihinden ileriye takvim ayı.
// completedAt=2026-02-15 için [2026-02-15, 2026-03-14].
func AfterWindow(completedAt time.Time) DateWindow {
	return DateWindow{
		Start: completedAt,
		End:   completedAt.AddDate(0, 1, 0).AddDate(0, 0, -1),
	}
}

// AfterWindowReady: sonraki pencere ancak tam bir takvim ayı geçince okunur.
func AfterWindowReady(completedAt, now time.Time) bool {
	return !now.Before(completedAt.AddDate(0, 1, 0))
}

// MonthlyKioskStat: teslim tarihine (YYYY-MM) göre kovalanmış, effective
// sınıflandırmayla sayılan aylık satış özeti.
type MonthlyKioskStat struct {
	Month       string  `json:"month"`
	FreeCount   int     `json:"free_count"`
	LeaseCount  int     `json:"lease_count"`
	PaidCount   int     `json:"paid_count"`
	RentalCount int     `json:"rental_count"`
	TotalCount  int     `json:"total_count"`
	PaidSales   float64 `json:"paid_sales"`
	TotalSales  float64 `json:"total_sales"`
}

// MonthlyKioskStats teslim tarihi olmayan kioskları atlar, ayları artan sırada döner.
func MonthlyKioskStats(kiosks []models.Kiosk) []MonthlyKioskStat {
	byMonth := make(map[string]*MonthlyKioskStat)

	for i := range kiosks {
		k := &kiosks[i]
		if k.DeliveryDate == nil {
			continue
		}
		key := k.DeliveryDate.Format("2006-01")

		stat, ok := byMonth[key]
		if !ok {
			stat = &MonthlyKioskStat{Month: key}
			byMonth[key] = stat
		}

		switch EffectiveAcquisition(k.Acquisition, k.SalePrice) {
		case EffectivePaid:
			stat.PaidCount++
			stat.PaidSales += *k.SalePrice
			stat.TotalSales += *k.SalePrice
		case EffectiveLease:
			stat.LeaseCount++
		case EffectiveRental:
			stat.RentalCount++
		default:
			stat.FreeCount++
		}
		stat.TotalCount++
	}

	out := make([]MonthlyKioskStat, 0, len(byMonth))
	for _, s := range byMonth {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// PercentOfTotal tam sayıya yuvarlanmış pay, total 0 ise 0.
func PercentOfTotal(count, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
