package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput общий признак ошибок валидации форм
var ErrInvalidInput = errors.New("invalid input")

// FieldError ошибка одного поля формы
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors ошибки формы. errors.Is(err, ErrInvalidInput) == true
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

func (e FieldErrors) Is(target error) bool {
	return target == ErrInvalidInput
}

// Add добавляет ошибку поля
func (e *FieldErrors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// Err возвращает nil, если ошибок нет
func (e FieldErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Struct проверяет структуру по тегам validate и возвращает FieldErrors
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	out := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		out.Add(fe.Field(), message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "обязательное поле"
	case "datetime":
		return fmt.Sprintf("неверный формат, ожидается %s", fe.Param())
	case "min", "gte":
		return fmt.Sprintf("значение должно быть не меньше %s", fe.Param())
	case "gt":
		return fmt.Sprintf("значение должно быть больше %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("значение должно быть не больше %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("допустимые значения: %s", fe.Param())
	case "email":
		return "неверный email"
	case "uuid":
		return "неверный идентификатор"
	case "ip":
		return "неверный IP адрес"
	default:
		return fmt.Sprintf("не прошло проверку %s", fe.Tag())
	}
}
