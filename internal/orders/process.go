package orders

import (
	"errors"
	"fmt"
	"time"

	"kiosk-backend/internal/models"
)

// 5 adımlı süreç: talep girişi -> doküman -> onaya gönderim -> onay sonucu
// -> tedarikçi bildirimi. Yalnızca ileri yönde, adım atlamadan ilerler.
// Geriye dönüş yok; yanlış giden bir süreç iptal edilir ve yenisi açılır.

var (
	ErrProcessNotActive = errors.New("süreç aktif değil (tamamlanmış veya iptal edilmiş)")
	ErrApprovalRequired = errors.New("onay durumu APPROVED olmadan 5. adıma geçilemez")
)

// CompleteStep: verilen adımı tamamlar ve süreci ilerletir. Aynı persist
// çağrısı içinde hem adım alanları hem pointer yazıldığı için işlem tek
// atomik kayıttır; ön koşul sağlanmıyorsa süreç hiç değişmez.
func CompleteStep(p *models.OrderProcess, step int, now time.Time, actor string) error {
	if p.Status != models.ProcessStatusInProgress {
		return ErrProcessNotActive
	}
	if step < 1 || step > 5 {
		return fmt.Errorf("geçersiz adım: %d", step)
	}
	if step != p.CurrentStep {
		return fmt.Errorf("sıradaki adım %d, adım %d tamamlanamaz", p.CurrentStep, step)
	}

	switch step {
	case 1:
		if p.Quantity == nil || *p.Quantity <= 0 {
			return errors.New("adet girilmeden 1. adım tamamlanamaz")
		}
		if p.ModelType == "" {
			return errors.New("model girilmeden 1. adım tamamlanamaz")
		}
		if p.Acquisition == models.AcquisitionLease {
			if p.LeaseCompanyID == nil {
				return errors.New("leasing seçiliyken leasing firması zorunlu")
			}
			if p.LeaseMonthlyFee == nil || *p.LeaseMonthlyFee <= 0 {
				return errors.New("leasing seçiliyken aylık ücret zorunlu")
			}
			if p.LeasePeriod == nil || *p.LeasePeriod <= 0 {
				return errors.New("leasing seçiliyken süre (ay) zorunlu")
			}
		}
		p.Step1CompletedAt = &now
		p.Step1CompletedBy = actor

	case 2:
		// Doküman üretimi harici sistemde yapılır; burada yalnızca referans tutulur
		p.Step2CompletedAt = &now
		p.Step2CompletedBy = actor

	case 3:
		if p.ApprovalRequestID == "" {
			return errors.New("onay talep numarası girilmeden 3. adım tamamlanamaz")
		}
		p.Step3CompletedAt = &now
		p.Step3CompletedBy = actor

	case 4:
		// Sert kapı: REJECTED veya PENDING ilerlemeyi keser
		if p.ApprovalStatus != models.ApprovalStatusApproved {
			return ErrApprovalRequired
		}
		p.Step4CompletedAt = &now
		p.Step4CompletedBy = actor

	case 5:
		p.Step5CompletedAt = &now
		p.Step5CompletedBy = actor
	}

	if step == 5 {
		p.Status = models.ProcessStatusCompleted
	} else {
		p.CurrentStep = step + 1
	}

	return nil
}

// Cancel: süreci iptal eder. Tamamlanmış süreç iptal edilemez.
func Cancel(p *models.OrderProcess) error {
	if p.Status == models.ProcessStatusCompleted {
		return errors.New("tamamlanmış süreç iptal edilemez")
	}
	p.Status = models.ProcessStatusCancelled
	return nil
}
