package entity

// PatientDetails is the one-to-one patient extension of a User.
type PatientDetails struct {
	UserID   int    `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	FullName string `gorm:"type:varchar;not null" json:"full_name"`
	Phone    string `gorm:"type:varchar;not null" json:"phone"`
	Age      int    `gorm:"not null" json:"age"`
	Gender   string `gorm:"type:char(1);not null" json:"gender"`

	// Relationships
	User User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
}

func (PatientDetails) TableName() string {
	return "patient_details"
}
