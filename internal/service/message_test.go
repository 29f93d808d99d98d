package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/restaurant-reservation/internal/model"
)

func TestConfirmationMessage(t *testing.T) {
	c := Composer{Restaurant: testRestaurant()}

	msg := c.ConfirmationMessage(model.Reservation{
		Name: "Asha Rao", Guests: 4, Date: "2030-01-01", Time: "19:00",
	})
	assert.Contains(t, msg, "Asha Rao")
	assert.Contains(t, msg, "MyHome")
	assert.Contains(t, msg, "4 guests")
	assert.Contains(t, msg, "2030-01-01 at 19:00")

	solo := c.ConfirmationMessage(model.Reservation{
		Name: "Ravi", Guests: 1, Date: "2030-01-01", Time: "11:00",
	})
	assert.Contains(t, solo, "1 guest on")
}
