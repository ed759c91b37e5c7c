package domain

import "time"

// BossID 种子员工的固定 ID
const BossID = "00000000-0000-0000-0000-000000000000"

type Staff struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	LastName   string    `json:"lastName"`
	Age        int       `json:"age"`
	DateJoined time.Time `json:"dateJoined"`
	Role       string    `json:"role"`
}

// SeedStaff 空库时的默认员工
func SeedStaff() Staff {
	return Staff{
		ID:         BossID,
		Name:       "The",
		LastName:   "Boss",
		Age:        30,
		DateJoined: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		Role:       "Boss",
	}
}
