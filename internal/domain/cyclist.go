package domain

import "time"

type CyclistStatus string

const (
	CyclistStatusInactive CyclistStatus = "INACTIVE"
	CyclistStatusActive   CyclistStatus = "ACTIVE"
)

// Cyclist is the renting customer. A cyclist must be ACTIVE
// (email-verified) before renting.
type Cyclist struct {
	ID               int32         `json:"id"`
	Name             string        `json:"name"`
	Email            string        `json:"email"`
	Nationality      string        `json:"nationality"`
	BirthDate        string        `json:"birth_date"` // yyyy-mm-dd
	PasswordHash     string        `json:"-"`
	Status           CyclistStatus `json:"status"`
	CPF              string        `json:"cpf,omitempty"`
	DocumentPhotoURL string        `json:"document_photo_url,omitempty"`
	Passport         *Passport     `json:"passport,omitempty"`
	CreatedOn        time.Time     `json:"created_on"`
	UpdatedOn        time.Time     `json:"updated_on"`
}

// Passport is carried by foreign cyclists instead of a CPF.
type Passport struct {
	ID        int32  `json:"id"`
	Number    string `json:"number"`
	Expiry    string `json:"expiry"` // yyyy-mm-dd
	Country   string `json:"country"`
	CyclistID int32  `json:"cyclist_id"`
}

// CreditCard is the cyclist's registered payment method. One per cyclist.
type CreditCard struct {
	ID         int32  `json:"id"`
	HolderName string `json:"holder_name"`
	Number     string `json:"number"`
	Expiry     string `json:"expiry"` // yyyy-mm-dd
	CVV        string `json:"-"`
	CyclistID  int32  `json:"cyclist_id"`
}
