package stats

import (
	"time"

	"kiosk-backend/internal/database"
	"kiosk-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type topPartner struct {
	Name    string `json:"name"`
	Count   int64  `json:"count"`
	Percent int    `json:"percent"`
}

type regionStat struct {
	RegionCode string `json:"region_code"`
	Count      int64  `json:"count"`
}

type monthlyOrderCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

func countKiosks(where string, args ...interface{}) (int64, error) {
	var n int64
	q := database.DB.Model(&models.Kiosk{})
	if where != "" {
		q = q.Where(where, args...)
	}
	err := q.Count(&n).Error
	return n, err
}

// GET /api/statistics - gösterge paneli için türetilmiş sayımlar.
// İsteğe bağlı date_from/date_to sipariş ve sevkiyat sayımlarını filtreler.
func StatisticsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		total, err := countKiosks("")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İstatistikler hesaplanamadı")
		}
		deployed, _ := countKiosks("status = ?", models.KioskStatusDeployed)
		inStock, _ := countKiosks("status = ?", models.KioskStatusInStock)
		maintenance, _ := countKiosks("status = ?", models.KioskStatusMaintenance)
		retired, _ := countKiosks("status = ?", models.KioskStatusRetired)

		// acquisition alanı bazlı sayımlar (geriye uyumlu görünüm)
		purchase, _ := countKiosks("acquisition = ?", models.AcquisitionPurchase)
		lease, _ := countKiosks("acquisition IN ?", []models.AcquisitionType{models.AcquisitionLease, models.AcquisitionLeaseFree})
		leaseFree, _ := countKiosks("acquisition = ?", models.AcquisitionLeaseFree)
		free, _ := countKiosks("acquisition = ?", models.AcquisitionFree)
		rental, _ := countKiosks("acquisition = ?", models.AcquisitionRental)

		// effective sınıflandırma: salePrice > 0 daima ücretli
		effectiveFree, _ := countKiosks("(sale_price IS NULL OR sale_price = 0) AND acquisition IN ?",
			[]models.AcquisitionType{models.AcquisitionFree, models.AcquisitionPurchase})
		effectiveLease, _ := countKiosks("acquisition IN ?",
			[]models.AcquisitionType{models.AcquisitionLease, models.AcquisitionLeaseFree})
		effectivePaid, _ := countKiosks("sale_price > 0")
		effectiveRental, _ := countKiosks("acquisition = ?", models.AcquisitionRental)

		var effectivePaidRevenue float64
		database.DB.Model(&models.Kiosk{}).
			Where("sale_price > 0").
			Select("COALESCE(SUM(sale_price), 0)").
			Scan(&effectivePaidRevenue)

		// sipariş/sevkiyat sayımları, isteğe bağlı tarih filtresiyle
		orderQ := database.DB.Model(&models.OrderProcess{})
		deliveryQ := database.DB.Model(&models.DeliveryProcess{})
		completedQ := database.DB.Model(&models.DeliveryProcess{}).Where("status = ?", models.ProcessStatusCompleted)
		if from, to := c.Query("date_from"), c.Query("date_to"); from != "" && to != "" {
			fromD, err1 := time.Parse("2006-01-02", from)
			toD, err2 := time.Parse("2006-01-02", to)
			if err1 != nil || err2 != nil {
				return fiber.NewError(fiber.StatusBadRequest, "date_from/date_to formatı 'YYYY-MM-DD' olmalı")
			}
			orderQ = orderQ.Where("created_at BETWEEN ? AND ?", fromD, toD)
			deliveryQ = deliveryQ.Where("created_at BETWEEN ? AND ?", fromD, toD)
			completedQ = completedQ.Where("created_at BETWEEN ? AND ?", fromD, toD)
		}
		var totalOrders, totalDeliveries, completedDeliveries int64
		orderQ.Count(&totalOrders)
		deliveryQ.Count(&totalDeliveries)
		completedQ.Count(&completedDeliveries)

		// en çok kiosku olan 5 ortak
		type partnerCount struct {
			CurrentPartnerID uint
			Count            int64
		}
		var partnerCounts []partnerCount
		database.DB.Model(&models.Kiosk{}).
			Select("current_partner_id, COUNT(id) AS count").
			Where("current_partner_id IS NOT NULL").
			Group("current_partner_id").
			Order("count DESC").
			Limit(5).
			Scan(&partnerCounts)

		topPartners := make([]topPartner, 0, len(partnerCounts))
		for _, pc := range partnerCounts {
			var partner models.Partner
			name := "Belirtilmemiş"
			if err := database.DB.Select("name").First(&partner, "id = ?", pc.CurrentPartnerID).Error; err == nil {
				name = partner.Name
			}
			topPartners = append(topPartners, topPartner{
				Name:    name,
				Count:   pc.Count,
				Percent: PercentOfTotal(pc.Count, total),
			})
		}

		var regionStats []regionStat
		database.DB.Model(&models.Kiosk{}).
			Select("region_code, COUNT(id) AS count").
			Where("region_code <> ''").
			Group("region_code").
			Scan(&regionStats)

		// son 6 ayın sipariş sayıları
		sixMonthsAgo := time.Now().AddDate(0, -6, 0)
		var orders []models.OrderProcess
		database.DB.Select("created_at").
			Where("created_at >= ?", sixMonthsAgo).
			Order("created_at ASC").
			Find(&orders)

		monthlyGrouped := map[string]int64{}
		for _, o := range orders {
			monthlyGrouped[o.CreatedAt.Format("2006-01")]++
		}
		monthlyOrders := make([]monthlyOrderCount, 0, len(monthlyGrouped))
		for m := sixMonthsAgo; !m.After(time.Now()); m = m.AddDate(0, 1, 0) {
			key := m.Format("2006-01")
			if n, ok := monthlyGrouped[key]; ok {
				monthlyOrders = append(monthlyOrders, monthlyOrderCount{Month: key, Count: n})
			}
		}

		var kiosks []models.Kiosk
		database.DB.Select("id, acquisition, sale_price, delivery_date, created_at").Find(&kiosks)

		return c.JSON(fiber.Map{
			"total_kiosks":       total,
			"deployed_kiosks":    deployed,
			"in_stock_kiosks":    inStock,
			"maintenance_kiosks": maintenance,
			"retired_kiosks":     retired,

			"purchase_kiosks":   purchase,
			"lease_kiosks":      lease,
			"lease_free_kiosks": leaseFree,
			"free_kiosks":       free,
			"rental_kiosks":     rental,

			"effective_free_kiosks":  effectiveFree,
			"effective_lease_kiosks": effectiveLease,
			"effective_paid_kiosks":  effectivePaid,
			"effective_paid_revenue": effectivePaidRevenue,
			"effective_rental_kiosks": effectiveRental,

			"total_orders":         totalOrders,
			"total_deliveries":     totalDeliveries,
			"completed_deliveries": completedDeliveries,

			"top_partners":        topPartners,
			"region_count":        len(regionStats),
			"region_stats":        regionStats,
			"monthly_orders":      monthlyOrders,
			"monthly_kiosk_stats": MonthlyKioskStats(kiosks),
		})
	}
}
