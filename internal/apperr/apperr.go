package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error, servis katmanının beklenen hatalarını HTTP durum kodu ve
// "detail" mesajı ile birlikte taşır.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string { return e.Detail }

func NotFound(detail string) *Error {
	return &Error{Status: fiber.StatusNotFound, Detail: detail}
}

func NotFoundf(format string, args ...any) *Error {
	return NotFound(fmt.Sprintf(format, args...))
}

func BadRequest(detail string) *Error {
	return &Error{Status: fiber.StatusBadRequest, Detail: detail}
}

// As, hata zincirinden *Error çıkarır.
func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
