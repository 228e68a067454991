// Package statemachine describes the fulfilment progression of vendor
// orders. The progression is a convention shown to vendors, not an enforced
// transition table: any known status may be set from any other.
package statemachine

import (
	"errors"

	"gikibites/models"
)

// progression lists the statuses in their conventional fulfilment order.
var progression = []models.OrderStatus{
	models.StatusProcessing,
	models.StatusOnTheWay,
	models.StatusDelivered,
}

var known = func() map[models.OrderStatus]bool {
	m := make(map[models.OrderStatus]bool, len(progression))
	for _, s := range progression {
		m[s] = true
	}
	return m
}()

// Valid reports whether s is a known order status.
func Valid(s models.OrderStatus) bool {
	return known[s]
}

// CheckStatus returns a descriptive error for an unknown status literal.
func CheckStatus(s models.OrderStatus) error {
	if known[s] {
		return nil
	}
	return errors.New("unknown status '" + string(s) + "'. Known statuses are: " + describeAll())
}

// Next returns the conventional next status, or false when s is terminal
// or unknown.
func Next(s models.OrderStatus) (models.OrderStatus, bool) {
	for i, cur := range progression {
		if cur == s && i+1 < len(progression) {
			return progression[i+1], true
		}
	}
	return "", false
}

// Progression returns the status order for documentation.
func Progression() []models.OrderStatus {
	return append([]models.OrderStatus(nil), progression...)
}

func describeAll() string {
	result := ""
	for i, s := range progression {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}
