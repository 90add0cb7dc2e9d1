package entity

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DoctorStatus is the verification state of a doctor profile.
type DoctorStatus string

const (
	DoctorStatusUnverified DoctorStatus = "U"
	DoctorStatusInactive   DoctorStatus = "I"
	DoctorStatusActive     DoctorStatus = "A"
)

func (s DoctorStatus) Valid() bool {
	switch s {
	case DoctorStatusUnverified, DoctorStatusInactive, DoctorStatusActive:
		return true
	}
	return false
}

// Gender constants shared by doctor and patient profiles
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

// Languages is an ordered list of spoken languages.
// It is stored as a single comma-joined text column.
type Languages []string

// ParseLanguages splits a comma-separated list, trimming blanks and
// dropping empty and repeated entries while keeping the original order.
func ParseLanguages(raw string) Languages {
	langs := Languages{}
	seen := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		lang := strings.TrimSpace(part)
		if lang == "" {
			continue
		}
		key := strings.ToLower(lang)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		langs = append(langs, lang)
	}
	return langs
}

func (l Languages) String() string {
	return strings.Join(l, ",")
}

// Value implements driver.Valuer
func (l Languages) Value() (driver.Value, error) {
	return l.String(), nil
}

// Scan implements sql.Scanner
func (l *Languages) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = Languages{}
	case []byte:
		*l = ParseLanguages(string(v))
	case string:
		*l = ParseLanguages(v)
	default:
		return fmt.Errorf("failed to scan languages value: %v", value)
	}
	return nil
}

// DoctorDetails is the one-to-one doctor extension of a User.
type DoctorDetails struct {
	UserID           int             `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	FullName         string          `gorm:"type:varchar;not null" json:"full_name"`
	Age              int             `gorm:"not null" json:"age"`
	Gender           string          `gorm:"type:char(1);not null" json:"gender"`
	Phone            string          `gorm:"type:varchar;not null" json:"phone"`
	Picture          string          `gorm:"type:text;not null" json:"picture"`
	Address          string          `gorm:"type:text;not null" json:"address"`
	Experience       int             `gorm:"not null" json:"experience"`
	Location         string          `gorm:"type:varchar;not null" json:"location"`
	Fees             decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"fees"`
	SpecializationID int             `gorm:"not null;index" json:"specialization_id"`
	Languages        Languages       `gorm:"type:text;not null" json:"languages"`
	Bio              string          `gorm:"type:text;not null" json:"bio"`
	RegNo            string          `gorm:"column:reg_no;type:varchar;uniqueIndex;not null" json:"reg_no"`
	Status           DoctorStatus    `gorm:"type:char(1);not null;default:'U'" json:"status"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	User           User           `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Specialization Specialization `gorm:"foreignKey:SpecializationID" json:"specialization,omitempty"`
}

func (DoctorDetails) TableName() string {
	return "doctor_details"
}

func (d *DoctorDetails) IsActive() bool {
	return d.Status == DoctorStatusActive
}
