package apperrors

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusByKind(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:    fiber.StatusBadRequest,
		KindUnauthorized:  fiber.StatusUnauthorized,
		KindForbidden:     fiber.StatusForbidden,
		KindNotFound:      fiber.StatusNotFound,
		KindUpstream:      fiber.StatusInternalServerError,
		KindUpstreamParse: fiber.StatusInternalServerError,
		KindRender:        fiber.StatusInternalServerError,
		KindPersistence:   fiber.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, Status(New(kind, "boom")))
	}
}

func TestStatusUnknownErrorIs500(t *testing.T) {
	assert.Equal(t, fiber.StatusInternalServerError, Status(errors.New("plain")))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(KindPersistence, cause, "failed to upload %s", "a.png")

	assert.Equal(t, KindPersistence, KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to upload a.png")
	assert.Contains(t, err.Error(), "disk full")
}
