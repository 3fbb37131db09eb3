package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yetkin-kariyer/botfleet/internal/domain/fleet"
)

func TestActiveHoursPrecedence(t *testing.T) {
	t.Run("actor hours win over fleet hours", func(t *testing.T) {
		hours := ActiveHours([]int{7, 8}, []int{10, 11})
		assert.Equal(t, []int{7, 8}, hours)
	})

	t.Run("fleet hours apply when actor has none", func(t *testing.T) {
		hours := ActiveHours(nil, []int{10, 11})
		assert.Equal(t, []int{10, 11}, hours)
	})

	t.Run("default applies when both are empty", func(t *testing.T) {
		hours := ActiveHours(nil, nil)
		assert.Equal(t, fleet.DefaultActiveHours, hours)
	})
}

func TestIsActiveHour(t *testing.T) {
	tests := []struct {
		name       string
		actorHours []int
		fleetHours []int
		hour       int
		want       bool
	}{
		{"inside actor hours", []int{7, 8}, nil, 8, true},
		{"outside actor hours", []int{7, 8}, nil, 9, false},
		{"actor hours mask fleet hours", []int{7}, []int{9}, 9, false},
		{"inside fleet hours", nil, []int{9, 15}, 15, true},
		{"inside default hours", nil, nil, 12, true},
		{"outside default hours", nil, nil, 13, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsActiveHour(tt.actorHours, tt.fleetHours, tt.hour))
		})
	}
}
