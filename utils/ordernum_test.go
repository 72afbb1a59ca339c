package utils

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderNumberShape(t *testing.T) {
	re := regexp.MustCompile(`^DRB-\d{14}-\d{3}$`)
	for i := 0; i < 20; i++ {
		no := NewOrderNumber(OrderPrefixStandard)
		assert.True(t, re.MatchString(no), "unexpected order number %q", no)
	}
}

func TestNewOrderNumberAtEncodesTimestamp(t *testing.T) {
	at := time.Date(2025, 8, 15, 14, 30, 45, 0, time.UTC)

	no := NewOrderNumberAt(OrderPrefixCustom, at)
	assert.True(t, strings.HasPrefix(no, "CB-20250815143045-"), no)
	assert.Len(t, no, len("CB-20250815143045-")+3)
}
