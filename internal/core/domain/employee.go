package domain

import "time"

// Employee is a staff record managed through the admin console. Dates are
// carried as plain YYYY-MM-DD strings end to end; the UI submits them that
// way and nothing in the backend does date arithmetic on them.
//
// Email and the date fields are pointers: they are optional, and an absent
// value must reach Postgres as NULL. An empty string would be rejected by
// the date columns and would collide on the unique email index.
type Employee struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:128;not null"`
	Email         *string   `json:"email,omitempty" gorm:"size:128;uniqueIndex"`
	DateOfJoining *string   `json:"date_of_joining,omitempty" gorm:"column:date_of_joining;type:date"`
	Status        string    `json:"status,omitempty" gorm:"size:24"`
	DOB           *string   `json:"dob,omitempty" gorm:"column:dob;type:date"`
	Country       string    `json:"country,omitempty" gorm:"size:64"`
	State         string    `json:"state,omitempty" gorm:"size:64"`
	City          string    `json:"city,omitempty" gorm:"size:64"`
	CreatedAt     time.Time `json:"created_at"`
}
