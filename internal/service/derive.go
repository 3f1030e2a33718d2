package service

import (
	"fmt"
	"math"
	"time"

	"github.com/skybrisk/intern-service/internal/models"
)

// Производные поля профиля считаются чистыми функциями от строки и момента времени,
// чтобы их можно было тестировать без базы.

const dayHours = 24

func ceilDays(d time.Duration) int {
	return int(math.Ceil(d.Hours() / dayHours))
}

// Progress возвращает процент прошедшей стажировки, обрезанный до [0, 100].
// Нулевая или отрицательная длительность считается завершённой стажировкой.
func Progress(start, end, now time.Time) int {
	totalDays := ceilDays(end.Sub(start))
	if totalDays <= 0 {
		return 100
	}

	daysPassed := ceilDays(now.Sub(start))
	progress := int(math.Round(float64(daysPassed) / float64(totalDays) * 100))

	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// BatchLabel строит отображаемую метку партии: дата старта и длительность
// в целых месяцах, например "01 Mar 2024 - 6M".
func BatchLabel(start, end time.Time) string {
	totalDays := ceilDays(end.Sub(start))
	months := int(math.Ceil(float64(totalDays) / 30))
	return fmt.Sprintf("%s - %dM", start.Format("02 Jan 2006"), months)
}

// DisplayID собирает синтетический идентификатор вида EMP20240301-007.
func DisplayID(start time.Time, internID int) string {
	return fmt.Sprintf("EMP%s-%03d", start.Format("20060102"), internID)
}

func CardTypeFor(idCardType *string) models.CardType {
	if idCardType != nil && *idCardType == "Premium ID Card" {
		return models.CardTypePremium
	}
	return models.CardTypeStandard
}

// BuildProfile расплющивает строку стажёра вместе с производными полями.
func BuildProfile(intern models.Intern, now time.Time) *models.InternProfile {
	return &models.InternProfile{
		Intern:       intern,
		Phone:        intern.MobileNumber,
		PaymentEmail: intern.Email,
		Batch:        BatchLabel(intern.StartDate, intern.EndDate),
		DisplayID:    DisplayID(intern.StartDate, intern.InternID),
		CardType:     CardTypeFor(intern.IDCardType).String(),
		Progress:     Progress(intern.StartDate, intern.EndDate, now),
	}
}
