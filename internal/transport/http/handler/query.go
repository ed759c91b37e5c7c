package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"cat-cafe/internal/domain"
)

// catQuery GET /cats 查询串
type catQuery struct {
	Temperaments string `form:"temperaments"`
	IsAdopted    string `form:"isAdopted"`
}

// filter temperaments 用 | 分隔、大小写不敏感；isAdopted 只认 true/false
func (q catQuery) filter() domain.CatFilter {
	var f domain.CatFilter
	if q.Temperaments != "" {
		for _, t := range strings.Split(strings.ToLower(q.Temperaments), "|") {
			f.Temperaments = append(f.Temperaments, domain.ParseTemperament(t))
		}
	}
	switch strings.ToLower(q.IsAdopted) {
	case "true":
		v := true
		f.IsAdopted = &v
	case "false":
		v := false
		f.IsAdopted = &v
	}
	return f
}

func includeCats(c *gin.Context) bool {
	return strings.EqualFold(c.Query("includeCats"), "true")
}
