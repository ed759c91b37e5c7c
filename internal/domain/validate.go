package domain

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CatInput 新建 / 整体替换猫
type CatInput struct {
	Name          string   `json:"name" validate:"required"`
	Age           *int     `json:"age" validate:"required,gt=0"`
	Breed         string   `json:"breed" validate:"required"`
	DateJoined    string   `json:"dateJoined" validate:"required,timestamp"`
	Vaccinated    *bool    `json:"vaccinated" validate:"required"`
	Temperament   []string `json:"temperament" validate:"required,dive,temperament"`
	StaffInCharge string   `json:"staffInCharge" validate:"required,staffid"`
	IsAdopted     *bool    `json:"isAdopted" validate:"required"`
	AdopterID     *int     `json:"adopterId" validate:"omitempty,gt=0"`
}

// CatPatch nil = 不修改
type CatPatch struct {
	StaffInCharge *string `json:"staffInCharge" validate:"omitempty,staffid"`
	AdopterID     *int    `json:"adopterId" validate:"omitempty,gt=0"`
}

type StaffInput struct {
	Name       string `json:"name" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Age        *int   `json:"age" validate:"required,gte=18"`
	DateJoined string `json:"dateJoined" validate:"required,timestamp"`
	Role       string `json:"role" validate:"required"`
}

type AdopterInput struct {
	Name        string `json:"name" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,timestamp,adult"`
	Phone       string `json:"phone" validate:"required,phone"`
	Address     string `json:"address" validate:"required,min=6"`
}

type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

var (
	phoneChars = regexp.MustCompile(`^[+\d\-\s]+$`)
	nonDigits  = regexp.MustCompile(`\D`)
)

const minPhoneDigits = 8

var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// ParseTimestamp 接受 RFC 3339 或 YYYY-MM-DD
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// NormalizePhone 去掉非数字与前导 0，转为数字
func NormalizePhone(s string) (int64, error) {
	digits := strings.TrimLeft(nonDigits.ReplaceAllString(strings.TrimSpace(s), ""), "0")
	if digits == "" {
		return 0, nil
	}
	return strconv.ParseInt(digits, 10, 64)
}

// Validator 纯函数式校验，不依赖 HTTP 框架
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

func NewValidator() *Validator { return NewValidatorAt(time.Now) }

// NewValidatorAt 注入时钟（成年判断依赖当前时间）
func NewValidatorAt(now func() time.Time) *Validator {
	vd := &Validator{v: validator.New(validator.WithRequiredStructEnabled()), now: now}

	vd.v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = vd.v.RegisterValidation("temperament", func(fl validator.FieldLevel) bool {
		return Temperament(fl.Field().String()).Valid()
	})
	_ = vd.v.RegisterValidation("timestamp", func(fl validator.FieldLevel) bool {
		_, err := ParseTimestamp(fl.Field().String())
		return err == nil
	})
	_ = vd.v.RegisterValidation("staffid", func(fl validator.FieldLevel) bool {
		_, err := uuid.Parse(fl.Field().String())
		return err == nil
	})
	_ = vd.v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		if !phoneChars.MatchString(s) {
			return false
		}
		if len(nonDigits.ReplaceAllString(s, "")) < minPhoneDigits {
			return false
		}
		_, err := NormalizePhone(s)
		return err == nil
	})
	_ = vd.v.RegisterValidation("adult", func(fl validator.FieldLevel) bool {
		t, err := ParseTimestamp(fl.Field().String())
		if err != nil {
			return true // 交给 timestamp 规则报错
		}
		return AgeAt(t, vd.now()) >= AdultAge
	})
	return vd
}

// Check 返回字段级错误列表；无错误返回 nil
func (vd *Validator) Check(in any) []FieldError {
	err := vd.v.Struct(in)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []FieldError{{Field: "", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ves))
	for _, fe := range ves {
		out = append(out, FieldError{Field: fieldPath(fe), Message: message(fe)})
	}
	return out
}

func (vd *Validator) validate(in any) error {
	if fields := vd.Check(in); len(fields) > 0 {
		return Validation("validation failed", fields...)
	}
	return nil
}

// Cat 校验并构造（ID 由存储分配）
func (vd *Validator) Cat(in CatInput) (Cat, error) {
	if err := vd.validate(in); err != nil {
		return Cat{}, err
	}
	joined, _ := ParseTimestamp(in.DateJoined)
	temps := make([]Temperament, 0, len(in.Temperament))
	for _, t := range in.Temperament {
		temps = append(temps, Temperament(t))
	}
	return Cat{
		Name:          in.Name,
		Age:           *in.Age,
		Breed:         in.Breed,
		DateJoined:    joined,
		Vaccinated:    *in.Vaccinated,
		Temperament:   temps,
		StaffInCharge: in.StaffInCharge,
		IsAdopted:     *in.IsAdopted,
		AdopterID:     in.AdopterID,
	}, nil
}

func (vd *Validator) CatPatch(in CatPatch) error { return vd.validate(in) }

func (vd *Validator) Staff(in StaffInput) (Staff, error) {
	if err := vd.validate(in); err != nil {
		return Staff{}, err
	}
	joined, _ := ParseTimestamp(in.DateJoined)
	return Staff{
		Name:       in.Name,
		LastName:   in.LastName,
		Age:        *in.Age,
		DateJoined: joined,
		Role:       in.Role,
	}, nil
}

func (vd *Validator) Adopter(in AdopterInput) (Adopter, error) {
	if err := vd.validate(in); err != nil {
		return Adopter{}, err
	}
	dob, _ := ParseTimestamp(in.DateOfBirth)
	phone, _ := NormalizePhone(in.Phone)
	return Adopter{
		Name:        in.Name,
		LastName:    in.LastName,
		DateOfBirth: dob,
		Phone:       phone,
		Address:     in.Address,
	}, nil
}

func (vd *Validator) Credentials(in Credentials) error {
	if err := vd.validate(in); err != nil {
		return Validation("username and password are required", ValidationFields(err)...)
	}
	return nil
}

// ValidationFields 取出校验错误中的字段列表
func ValidationFields(err error) []FieldError {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}

// fieldPath 去掉顶层结构体名：CatInput.temperament[0] → temperament[0]
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "min":
		return "must be at least " + fe.Param() + " characters long"
	case "temperament":
		names := make([]string, len(Temperaments))
		for i, t := range Temperaments {
			names[i] = string(t)
		}
		return "must be one of " + strings.Join(names, ", ")
	case "timestamp":
		return "must be an RFC 3339 timestamp or a YYYY-MM-DD date"
	case "staffid":
		return "must be a UUID"
	case "phone":
		return "may only contain digits, +, - and spaces and must have at least 8 digits"
	case "adult":
		return "the adopter must be at least 18 years old to adopt a cat"
	}
	return "failed on " + fe.Tag()
}
