package domain

import "time"

type Adopter struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	LastName    string    `json:"lastName"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Phone       int64     `json:"phone"`
	Address     string    `json:"address"`
}

// AgeAt 按日历计算周岁（生日当天才加一岁）
func AgeAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

const AdultAge = 18
