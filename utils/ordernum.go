package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// Order number prefixes: DRB for menu checkout, CB for built burgers
// (customer wizard and admin manual orders).
const (
	OrderPrefixStandard = "DRB"
	OrderPrefixCustom   = "CB"
)

// NewOrderNumber builds "<prefix>-<yyyymmddhhmmss>-<3 random digits>".
// Uniqueness is by construction only; collisions are not checked.
func NewOrderNumber(prefix string) string {
	return NewOrderNumberAt(prefix, time.Now())
}

func NewOrderNumberAt(prefix string, t time.Time) string {
	return fmt.Sprintf("%s-%s-%03d", prefix, t.Format("20060102150405"), rand.Intn(1000))
}
