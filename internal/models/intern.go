package models

import (
	"time"
)

type Intern struct {
	InternID        int       `json:"intern_id" db:"intern_id"`
	Name            string    `json:"name" db:"name"`
	Email           string    `json:"email" db:"email"`
	MobileNumber    string    `json:"mobile_number" db:"mobile_number"`
	StartDate       time.Time `json:"start_date" db:"start_date"`
	EndDate         time.Time `json:"end_date" db:"end_date"`
	BatchAssignment *string   `json:"batch_assignment" db:"batch_assignment"`
	IDCardType      *string   `json:"id_card_type" db:"id_card_type"`
	CertificateSent bool      `json:"certificate_sent" db:"certificate_sent"`
	IDCardSent      bool      `json:"id_card_sent" db:"id_card_sent"`
	Note            *string   `json:"note" db:"note"`
}

type InternProfile struct {
	Intern
	Phone        string `json:"phone"`
	PaymentEmail string `json:"payment_email"`
	Batch        string `json:"batch"`
	DisplayID    string `json:"id"`
	CardType     string `json:"type"`
	Progress     int    `json:"progress"`
}

type CardType string

const (
	CardTypePremium  CardType = "PREMIUM"
	CardTypeStandard CardType = "STANDARD"
)

func (ct CardType) String() string {
	return string(ct)
}
