package domain

import (
	"slices"
	"strings"
	"time"
)

type Temperament string

const (
	Calm         Temperament = "Calm"
	Curious      Temperament = "Curious"
	Playful      Temperament = "Playful"
	Affectionate Temperament = "Affectionate"
	Independent  Temperament = "Independent"
	Shy          Temperament = "Shy"
	Dominant     Temperament = "Dominant"
	Easygoing    Temperament = "Easygoing"
	Aggressive   Temperament = "Aggressive"
	Nervous      Temperament = "Nervous"
	Social       Temperament = "Social"
)

// Temperaments 固定词表（顺序即文档顺序）
var Temperaments = []Temperament{
	Calm, Curious, Playful, Affectionate, Independent, Shy,
	Dominant, Easygoing, Aggressive, Nervous, Social,
}

func (t Temperament) Valid() bool { return slices.Contains(Temperaments, t) }

// ParseTemperament 大小写不敏感：首字母大写，其余小写（"calm" / "CALM" → "Calm"）
func ParseTemperament(s string) Temperament {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	return Temperament(strings.ToUpper(s[:1]) + s[1:])
}

type Cat struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Age         int           `json:"age"`
	Breed       string        `json:"breed"`
	DateJoined  time.Time     `json:"dateJoined"`
	Vaccinated  bool          `json:"vaccinated"`
	Temperament []Temperament `json:"temperament"`
	// 按员工查询时会被清空（omitempty 使其不出现在响应中）
	StaffInCharge string `json:"staffInCharge,omitempty"`
	IsAdopted     bool   `json:"isAdopted"`
	AdopterID     *int   `json:"adopterId,omitempty"`
}

// HasTemperaments 超集匹配：want 中每一项都必须出现
func (c Cat) HasTemperaments(want []Temperament) bool {
	for _, t := range want {
		if !slices.Contains(c.Temperament, t) {
			return false
		}
	}
	return true
}

// CatFilter 条件之间为 AND；零值不过滤
type CatFilter struct {
	Temperaments []Temperament
	IsAdopted    *bool
}

func (f CatFilter) Match(c Cat) bool {
	if len(f.Temperaments) > 0 && !c.HasTemperaments(f.Temperaments) {
		return false
	}
	if f.IsAdopted != nil && c.IsAdopted != *f.IsAdopted {
		return false
	}
	return true
}
