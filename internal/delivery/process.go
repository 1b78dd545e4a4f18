package delivery

import (
	"errors"
	"fmt"
	"time"

	"kiosk-backend/internal/models"
)

// 2 adımlı süreç: sevkiyat girişi -> teslim alma + kontrol.
// Kontrol sonucu (inspection_passed) tamamlamayı engellemez: başarısız çıkan
// cihaz "süreç tamamlandı" olarak kapanır, arıza ayrı tamir girişiyle takip
// edilir.

var ErrProcessNotActive = errors.New("süreç aktif değil (tamamlanmış veya iptal edilmiş)")

// CompleteStep: verilen adımı tamamlar. 1. adım seri numarası ister;
// 2. adım süreci kapatır.
func CompleteStep(p *models.DeliveryProcess, step int, now time.Time, actor string) error {
	if p.Status != models.ProcessStatusInProgress {
		return ErrProcessNotActive
	}
	if step < 1 || step > 2 {
		return fmt.Errorf("geçersiz adım: %d", step)
	}
	if step != p.CurrentStep {
		return fmt.Errorf("sıradaki adım %d, adım %d tamamlanamaz", p.CurrentStep, step)
	}

	switch step {
	case 1:
		if p.SerialNumber == "" {
			return errors.New("seri numarası girilmeden 1. adım tamamlanamaz")
		}
		p.Step1CompletedAt = &now
		p.Step1CompletedBy = actor
		p.CurrentStep = 2

	case 2:
		p.Step2CompletedAt = &now
		p.Step2CompletedBy = actor
		p.Status = models.ProcessStatusCompleted
	}

	return nil
}

// Cancel: süreci iptal eder. Tamamlanmış süreç iptal edilemez.
func Cancel(p *models.DeliveryProcess) error {
	if p.Status == models.ProcessStatusCompleted {
		return errors.New("tamamlanmış süreç iptal edilemez")
	}
	p.Status = models.ProcessStatusCancelled
	return nil
}
