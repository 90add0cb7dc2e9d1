package entity

import "github.com/shopspring/decimal"

// DoctorFilter is a domain-level filter for doctor search.
// Used by repository layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	Query          string // matches doctor name or specialization (ILIKE)
	Specialization string // exact specialization name
	Language       string // one element of the language list
	MinFee         *decimal.Decimal
	MaxFee         *decimal.Decimal
	MinExperience  int // years
}
