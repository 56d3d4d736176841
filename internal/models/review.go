package models

import "time"

// Review is shared by delivery boys and retailer shops through the
// polymorphic SubjectType/SubjectID pair.
type Review struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	SubjectType string `gorm:"size:20;index:idx_review_subject;not null" json:"subjectType"`
	SubjectID   uint   `gorm:"index:idx_review_subject;not null" json:"subjectId"`
	CustomerID  uint   `gorm:"index" json:"customerId"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"size:1000" json:"comment"`

	CreatedAt time.Time `json:"createdAt"`
}
