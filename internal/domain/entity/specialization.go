package entity

type Specialization struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar;uniqueIndex;not null" json:"name"`
}

func (Specialization) TableName() string {
	return "specializations"
}
