package delivery

import (
	"fmt"
	"strings"
	"time"

	"kiosk-backend/internal/database"
	"kiosk-backend/internal/models"
	"kiosk-backend/internal/stats"

	"github.com/gofiber/fiber/v2"
)

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func dashDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

func rateDisplay(rate *float64) string {
	if rate == nil {
		return "-"
	}
	return fmt.Sprintf("%g%%", *rate)
}

func saleTypeDisplay(t string) string {
	switch t {
	case "FREE":
		return "Bedelsiz"
	case "PAID":
		return "Ücretli"
	case "FREE_TO_PAID":
		return "Bedelsiz → Ücretli geçiş"
	default:
		return "-"
	}
}

func inspectionDisplay(passed *bool) string {
	if passed == nil {
		return "Kontrol edilmedi"
	}
	if *passed {
		return "Geçti"
	}
	return "Geçmedi"
}

// GET /api/delivery-processes/:id/erp-request
// ERP tarafına gönderilecek güncelleme talebinin salt-okunur markdown projeksiyonu.
// Sözleşme koşulları kiosk'un güncel ortağından, o yoksa sürecin bağlı olduğu
// siparişin ortağından gelir.
func ErpRequestHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var proc models.DeliveryProcess
		if err := database.DB.
			Preload("OrderProcess.Partner").
			First(&proc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Süreç bulunamadı")
		}

		var kiosk models.Kiosk
		kioskFound := database.DB.
			Preload("CurrentPartner").
			First(&kiosk, "serial_number = ?", proc.SerialNumber).Error == nil

		var partner *models.Partner
		if kioskFound && kiosk.CurrentPartner != nil {
			partner = kiosk.CurrentPartner
		} else if proc.OrderProcess != nil && proc.OrderProcess.Partner != nil {
			partner = proc.OrderProcess.Partner
		}

		regionDisplay := "-"
		areaDisplay := "-"
		brandName := ""
		branchName := ""
		if kioskFound {
			brandName = kiosk.BrandName
			branchName = kiosk.BranchName
			if kiosk.RegionCode != "" {
				regionDisplay = kiosk.RegionCode
				var region models.Region
				if err := database.DB.First(&region, "code = ?", kiosk.RegionCode).Error; err == nil {
					regionDisplay = fmt.Sprintf("%s(%s)", region.Name, region.Code)
				}
			}
			if kiosk.AreaCode != "" {
				areaDisplay = kiosk.AreaCode
				var area models.Area
				if err := database.DB.First(&area, "code = ?", kiosk.AreaCode).Error; err == nil {
					areaDisplay = fmt.Sprintf("%s(%s)", area.Name, area.Code)
				}
			}
		}

		// Şirket adı: marka + şube, ikisi de yoksa ortak adı
		companyName := "-"
		switch {
		case brandName != "" && branchName != "":
			companyName = brandName + "/" + branchName
		case brandName != "":
			companyName = brandName
		case branchName != "":
			companyName = branchName
		case partner != nil && partner.NameJa != "":
			companyName = partner.NameJa
		case partner != nil:
			companyName = partner.Name
		}

		userID := branchName
		if userID == "" && partner != nil {
			userID = partner.NameJa
		}
		userID = dash(userID)

		pmsRate := "-"
		otaRate := "-"
		partnerName := "-"
		partnerNameJa := ""
		saleType := "-"
		salePrice := "-"
		freeCondition := "-"
		saleTerms := "-"
		maintenanceTerms := "-"
		commissionTerms := "-"
		feeChangeTerms := "-"
		contractDate := "-"
		contractStartDate := "-"
		if partner != nil {
			pmsRate = rateDisplay(partner.PmsRate)
			otaRate = rateDisplay(partner.OtaRate)
			partnerName = partner.Name
			partnerNameJa = partner.NameJa
			saleType = partner.KioskSaleType
			if partner.KioskSalePrice != nil {
				salePrice = fmt.Sprintf("%g万円", *partner.KioskSalePrice)
			}
			freeCondition = dash(partner.KioskFreeCondition)
			saleTerms = dash(partner.SaleTerms)
			maintenanceTerms = dash(partner.MaintenanceTerms)
			commissionTerms = dash(partner.CommissionTerms)
			feeChangeTerms = dash(partner.FeeChangeTerms)
			contractDate = dashDate(partner.ContractDate)
			contractStartDate = dashDate(partner.ContractStartDate)
		}

		nameLine := partnerName
		if partnerNameJa != "" {
			nameLine = fmt.Sprintf("%s (%s)", partnerName, partnerNameJa)
		}

		var b strings.Builder
		fmt.Fprintf(&b, "[PMS ERP Panosu] Bayi güncelleme talebi %s\n\n", time.Now().Format("02.01.2006"))
		b.WriteString("## 1. İstatistik değişiklikleri\n\n")
		b.WriteString("Kullanıcı ID|Bölge ofisi CODE|Bölge CODE|Şirket adı|PMS komisyon oranı\n")
		b.WriteString("--|--|--|--|--\n")
		fmt.Fprintf(&b, "%s | %s | %s | %s | %s\n\n", userID, areaDisplay, regionDisplay, companyName, pmsRate)
		b.WriteString("---\n\n## 2. Sözleşme koşulları\n\n")
		b.WriteString("### Bayi bilgisi\n")
		fmt.Fprintf(&b, "- **Bayi adı**: %s\n", nameLine)
		fmt.Fprintf(&b, "- **Sözleşme tarihi**: %s\n", contractDate)
		fmt.Fprintf(&b, "- **Hizmet başlangıcı**: %s\n\n", contractStartDate)
		b.WriteString("### Kiosk satış koşulları\n")
		fmt.Fprintf(&b, "- **Satış türü**: %s\n", saleTypeDisplay(saleType))
		fmt.Fprintf(&b, "- **Birim fiyat**: %s\n", salePrice)
		fmt.Fprintf(&b, "- **Bedelsiz koşul**: %s\n", freeCondition)
		fmt.Fprintf(&b, "- **Satış koşulu detayı**: %s\n\n", saleTerms)
		b.WriteString("### Bakım koşulları\n")
		fmt.Fprintf(&b, "- **Bakım sözleşme koşulu**: %s\n\n", maintenanceTerms)
		b.WriteString("### ERP komisyon koşulları\n")
		fmt.Fprintf(&b, "- **PMS komisyon oranı**: %s\n", pmsRate)
		fmt.Fprintf(&b, "- **OTA komisyon oranı**: %s\n", otaRate)
		fmt.Fprintf(&b, "- **Komisyon koşulu**: %s\n", commissionTerms)
		fmt.Fprintf(&b, "- **Komisyon değişiklik koşulu**: %s\n\n", feeChangeTerms)
		b.WriteString("---\n\n## 3. Sevkiyat bilgisi\n")
		fmt.Fprintf(&b, "- **Sevkiyat numarası**: %s\n", proc.ProcessNumber)
		fmt.Fprintf(&b, "- **Seri numarası**: %s\n", proc.SerialNumber)
		fmt.Fprintf(&b, "- **Model**: %s\n", dash(proc.ModelName))
		fmt.Fprintf(&b, "- **Teslim tarihi**: %s\n", dashDate(proc.ActualArrival))
		fmt.Fprintf(&b, "- **Kontrol sonucu**: %s\n", inspectionDisplay(proc.InspectionPassed))

		return c.JSON(fiber.Map{
			"success":  true,
			"markdown": b.String(),
			"data": fiber.Map{
				"process_number":    proc.ProcessNumber,
				"serial_number":     proc.SerialNumber,
				"user_id":           userID,
				"area_code":         areaDisplay,
				"region_code":       regionDisplay,
				"company_name":      companyName,
				"pms_rate":          pmsRate,
				"delivery_date":     proc.ActualArrival,
				"inspection_passed": proc.InspectionPassed,
			},
		})
	}
}

// GET /api/delivery-processes/:id/metrics-window
// Teslimat tamamlanmadan pencere hesaplanmaz; tamamlandıktan sonra
// önce/sonra karşılaştırma pencereleri ve okunabilirlik kapısı döner.
func MetricsWindowHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var proc models.DeliveryProcess
		if err := database.DB.First(&proc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Süreç bulunamadı")
		}

		if proc.Step2CompletedAt == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Teslim alma adımı henüz tamamlanmadı")
		}

		completedAt := *proc.Step2CompletedAt
		return c.JSON(fiber.Map{
			"process_number": proc.ProcessNumber,
			"completed_at":   completedAt,
			"before_window":  stats.BeforeWindow(completedAt),
			"after_window":   stats.AfterWindow(completedAt),
			"after_ready":    stats.AfterWindowReady(completedAt, time.Now()),
		})
	}
}
