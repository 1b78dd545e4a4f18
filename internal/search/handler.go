package search

import (
	"strings"

	"kiosk-backend/internal/database"
	"kiosk-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type SearchRequest struct {
	Query string `json:"query"`
}

type resultGroup struct {
	Type  string      `json:"type"`
	Items interface{} `json:"items"`
	Count int         `json:"count"`
}

// POST /api/ai-search
// "AI arama" adına rağmen alt dize eşleşmesi: sorgu tüm varlık türlerine
// ILIKE ile dağıtılır, tür başına 20 (Region 10) sonuçla sınırlanır.
func AiSearchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SearchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		query := strings.TrimSpace(body.Query)
		if len([]rune(query)) < 2 {
			return fiber.NewError(fiber.StatusBadRequest, "Arama sorgusu en az 2 karakter olmalı")
		}
		like := "%" + query + "%"

		results := []resultGroup{}
		totalCount := 0

		var kiosks []models.Kiosk
		database.DB.
			Preload("CurrentPartner").
			Preload("Branch.Corporation.Fc").
			Where("serial_number ILIKE ? OR kiosk_number ILIKE ? OR anydesk_id ILIKE ? OR branch_name ILIKE ? OR brand_name ILIKE ?",
				like, like, like, like, like).
			Limit(20).
			Find(&kiosks)
		if len(kiosks) > 0 {
			items := make([]fiber.Map, 0, len(kiosks))
			for _, k := range kiosks {
				item := fiber.Map{
					"id":              k.ID,
					"serial_number":   k.SerialNumber,
					"kiosk_number":    k.KioskNumber,
					"anydesk_id":      k.AnydeskID,
					"status":          k.Status,
					"delivery_status": k.DeliveryStatus,
					"branch_name":     k.BranchName,
					"region_code":     k.RegionCode,
					"area_code":       k.AreaCode,
				}
				if k.Branch != nil {
					item["branch_name"] = k.Branch.Name
					if k.Branch.Corporation != nil {
						item["corporation_name"] = k.Branch.Corporation.Name
						if k.Branch.Corporation.Fc != nil {
							item["fc_name"] = k.Branch.Corporation.Fc.Name
						}
					}
				}
				if k.CurrentPartner != nil {
					item["partner_name"] = k.CurrentPartner.Name
				}
				items = append(items, item)
			}
			results = append(results, resultGroup{Type: "kiosk", Items: items, Count: len(items)})
			totalCount += len(items)
		}

		var partners []models.Partner
		database.DB.
			Where("name ILIKE ? OR name_ja ILIKE ? OR contact ILIKE ? OR address ILIKE ?",
				like, like, like, like).
			Limit(20).
			Find(&partners)
		if len(partners) > 0 {
			items := make([]fiber.Map, 0, len(partners))
			for _, p := range partners {
				var kioskCount int64
				database.DB.Model(&models.Kiosk{}).
					Where("current_partner_id = ?", p.ID).
					Count(&kioskCount)
				items = append(items, fiber.Map{
					"id":          p.ID,
					"name":        p.Name,
					"name_ja":     p.NameJa,
					"type":        p.Type,
					"contact":     p.Contact,
					"address":     p.Address,
					"kiosk_count": kioskCount,
				})
			}
			results = append(results, resultGroup{Type: "partner", Items: items, Count: len(items)})
			totalCount += len(items)
		}

		var fcs []models.FC
		database.DB.
			Where("name ILIKE ? OR name_ja ILIKE ? OR code ILIKE ?", like, like, like).
			Limit(20).
			Find(&fcs)
		if len(fcs) > 0 {
			items := make([]fiber.Map, 0, len(fcs))
			for _, f := range fcs {
				var corpCount int64
				database.DB.Model(&models.Corporation{}).
					Where("fc_id = ?", f.ID).
					Count(&corpCount)
				items = append(items, fiber.Map{
					"id":                f.ID,
					"code":              f.Code,
					"name":              f.Name,
					"name_ja":           f.NameJa,
					"fc_type":           f.FcType,
					"corporation_count": corpCount,
				})
			}
			results = append(results, resultGroup{Type: "fc", Items: items, Count: len(items)})
			totalCount += len(items)
		}

		var corporations []models.Corporation
		database.DB.
			Preload("Fc").
			Where("name ILIKE ? OR name_ja ILIKE ?", like, like).
			Limit(20).
			Find(&corporations)
		if len(corporations) > 0 {
			items := make([]fiber.Map, 0, len(corporations))
			for _, corp := range corporations {
				var branchCount int64
				database.DB.Model(&models.Branch{}).
					Where("corporation_id = ?", corp.ID).
					Count(&branchCount)
				item := fiber.Map{
					"id":           corp.ID,
					"name":         corp.Name,
					"name_ja":      corp.NameJa,
					"branch_count": branchCount,
				}
				if corp.Fc != nil {
					item["fc_name"] = corp.Fc.Name
				}
				items = append(items, item)
			}
			results = append(results, resultGroup{Type: "corporation", Items: items, Count: len(items)})
			totalCount += len(items)
		}

		var branches []models.Branch
		database.DB.
			Preload("Corporation.Fc").
			Where("name ILIKE ? OR name_ja ILIKE ? OR address ILIKE ? OR manager_name ILIKE ?",
				like, like, like, like).
			Limit(20).
			Find(&branches)
		if len(branches) > 0 {
			items := make([]fiber.Map, 0, len(branches))
			for _, b := range branches {
				var kioskCount int64
				database.DB.Model(&models.Kiosk{}).
					Where("branch_id = ?", b.ID).
					Count(&kioskCount)
				item := fiber.Map{
					"id":          b.ID,
					"name":        b.Name,
					"name_ja":     b.NameJa,
					"address":     b.Address,
					"region_code": b.RegionCode,
					"area_code":   b.AreaCode,
					"kiosk_count": kioskCount,
				}
				if b.Corporation != nil {
					item["corporation_name"] = b.Corporation.Name
					if b.Corporation.Fc != nil {
						item["fc_name"] = b.Corporation.Fc.Name
					}
				}
				items = append(items, item)
			}
			results = append(results, resultGroup{Type: "branch", Items: items, Count: len(items)})
			totalCount += len(items)
		}

		var deliveries []models.DeliveryProcess
		database.DB.
			Where("serial_number ILIKE ? OR process_number ILIKE ? OR tracking_number ILIKE ? OR vendor_name ILIKE ?",
				like, like, like, like).
			Limit(20).
			Find(&deliveries)
		if len(deliveries) > 0 {
			items := make([]fiber.Map, 0, len(deliveries))
			for _, d := range deliveries {
				items = append(items, fiber.Map{
					"id":             d.ID,
					"process_number": d.ProcessNumber,
					"serial_number":  d.SerialNumber,
					"status":         d.Status,
					"vendor_name":    d.VendorName,
					"actual_arrival": d.ActualArrival,
				})
			}
			results = append(results, resultGroup{Type: "delivery", Items: items, Count: len(items)})
			totalCount += len(items)
		}

		var regions []models.Region
		database.DB.
			Where("name ILIKE ? OR code ILIKE ?", like, like).
			Limit(10).
			Find(&regions)
		if len(regions) > 0 {
			items := make([]fiber.Map, 0, len(regions))
			for _, r := range regions {
				items = append(items, fiber.Map{
					"id":   r.ID,
					"code": r.Code,
					"name": r.Name,
				})
			}
			results = append(results, resultGroup{Type: "region", Items: items, Count: len(items)})
			totalCount += len(items)
		}

		return c.JSON(fiber.Map{
			"query":       query,
			"total_count": totalCount,
			"results":     results,
		})
	}
}

// GET /api/ai-search - arama kapsamındaki veri hacmi özeti.
func SearchStatsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		count := func(model interface{}) int64 {
			var n int64
			database.DB.Model(model).Count(&n)
			return n
		}

		return c.JSON(fiber.Map{
			"counts": fiber.Map{
				"kiosks":       count(&models.Kiosk{}),
				"partners":     count(&models.Partner{}),
				"fcs":          count(&models.FC{}),
				"corporations": count(&models.Corporation{}),
				"branches":     count(&models.Branch{}),
				"deliveries":   count(&models.DeliveryProcess{}),
				"regions":      count(&models.Region{}),
				"areas":        count(&models.Area{}),
			},
		})
	}
}
