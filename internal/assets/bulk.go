package assets

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"kiosk-backend/internal/audit"
	"kiosk-backend/internal/auth"
	"kiosk-backend/internal/database"
	"kiosk-backend/internal/history"
	"kiosk-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// Beklenen kolonlar (başlık satırı zorunlu):
// seri no | kiosk no | anydesk | şirket adı | şube adı | fiyat | memo
const (
	colSerial = iota
	colKioskNumber
	colAnydesk
	colCorporation
	colBranch
	colPrice
	colMemo
)

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// findBranch: şirket adından corporation'ı, mümkünse şube adından şubeyi bulur.
// FC bağlıysa marka adı da üretilir.
func findBranch(corpName, branchName string) (branchID *uint, resolvedBranchName, brandName, regionCode, areaCode string) {
	if corpName == "" {
		return nil, branchName, "", "", ""
	}

	like := "%" + corpName + "%"
	var corp models.Corporation
	if err := database.DB.Preload("Fc").
		Where("name ILIKE ? OR name_ja ILIKE ?", like, like).
		First(&corp).Error; err != nil {
		return nil, branchName, "", "", ""
	}

	if corp.Fc != nil {
		brandName = history.BrandNameFromFC(corp.Fc.Code, corp.Fc.Name)
	}

	branchQ := database.DB.Where("corporation_id = ?", corp.ID)
	if branchName != "" {
		bl := "%" + branchName + "%"
		branchQ = branchQ.Where("name ILIKE ? OR name_ja ILIKE ?", bl, bl)
	}
	var branch models.Branch
	if err := branchQ.First(&branch).Error; err != nil {
		return nil, branchName, brandName, "", ""
	}

	return &branch.ID, branch.Name, brandName, branch.RegionCode, branch.AreaCode
}

// POST /api/assets/bulk
// XLSX dosyasından toplu kiosk aktarımı. Satır bazında devam eder, hatalı
// satırlar raporlanır ama aktarımı durdurmaz.
func BulkImportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dosya yüklenemedi: "+err.Error())
		}

		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
			return fiber.NewError(fiber.StatusBadRequest, "Sadece .xlsx dosyaları yüklenebilir")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dosya açılamadı: "+err.Error())
		}
		defer file.Close()

		excelFile, err := excelize.OpenReader(file)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Excel dosyası okunamadı: "+err.Error())
		}
		defer excelFile.Close()

		sheetList := excelFile.GetSheetList()
		if len(sheetList) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Excel dosyasında sheet bulunamadı")
		}

		rows, err := excelFile.GetRows(sheetList[0])
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Sheet okunamadı: "+err.Error())
		}
		if len(rows) < 2 {
			return fiber.NewError(fiber.StatusBadRequest, "Excel dosyasında veri satırı yok")
		}

		userID, userName, _ := auth.CurrentUser(c)

		successCount := 0
		failedCount := 0
		rowErrors := make([]string, 0)

		for i := 1; i < len(rows); i++ {
			row := rows[i]
			if len(row) == 0 {
				continue
			}

			serial := cell(row, colSerial)
			if serial == "" {
				serial = tempSerial()
			}

			var existing models.Kiosk
			if err := database.DB.First(&existing, "serial_number = ?", serial).Error; err == nil {
				failedCount++
				rowErrors = append(rowErrors, fmt.Sprintf("%d. satır: '%s' seri numarası zaten kayıtlı", i+1, serial))
				continue
			}

			var salePrice *float64
			if priceStr := cell(row, colPrice); priceStr != "" {
				p, err := strconv.ParseFloat(strings.ReplaceAll(priceStr, ",", ""), 64)
				if err != nil {
					failedCount++
					rowErrors = append(rowErrors, fmt.Sprintf("%d. satır: fiyat sayı değil: %s", i+1, priceStr))
					continue
				}
				salePrice = &p
			}

			branchID, branchName, brandName, regionCode, areaCode := findBranch(cell(row, colCorporation), cell(row, colBranch))

			kiosk := models.Kiosk{
				SerialNumber:   serial,
				KioskNumber:    cell(row, colKioskNumber),
				AnydeskID:      cell(row, colAnydesk),
				BrandName:      brandName,
				BranchID:       branchID,
				BranchName:     branchName,
				RegionCode:     regionCode,
				AreaCode:       areaCode,
				Acquisition:    models.AcquisitionPurchase,
				SalePrice:      salePrice,
				DeliveryStatus: models.DeliveryStatusPending,
				Status:         models.KioskStatusInStock,
				Memo:           cell(row, colMemo),
			}

			if err := database.DB.Create(&kiosk).Error; err != nil {
				failedCount++
				rowErrors = append(rowErrors, fmt.Sprintf("%d. satır: kayıt oluşturulamadı", i+1))
				continue
			}

			if _, err := history.Append(kiosk.ID, history.AppendInput{
				MoveType:      models.MoveTypeDeploy,
				NewBranchID:   branchID,
				NewBranchName: branchName,
				Description:   "Toplu aktarımla kayıt",
				HandledBy:     userName,
				UpdateKiosk:   false,
			}); err != nil {
				log.Printf("Toplu aktarım: %d. satır için hareket kaydı açılamadı: %v", i+1, err)
			}

			successCount++
		}

		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "kiosk",
			EntityID:    0,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Toplu aktarım: %d başarılı, %d hatalı", successCount, failedCount),
		})

		return c.JSON(fiber.Map{
			"success":       true,
			"success_count": successCount,
			"failed_count":  failedCount,
			"errors":        rowErrors,
		})
	}
}
