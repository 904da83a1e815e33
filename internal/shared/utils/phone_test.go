package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		countryCode string
		want        string
	}{
		{
			name:        "formatted number gets country code",
			raw:         "(11) 98765-4321",
			countryCode: "55",
			want:        "5511987654321",
		},
		{
			name:        "already prefixed number is unchanged",
			raw:         "5511987654321",
			countryCode: "55",
			want:        "5511987654321",
		},
		{
			name:        "normalization is idempotent",
			raw:         "+55 11 98765-4321",
			countryCode: "55",
			want:        "5511987654321",
		},
		{
			name:        "empty input stays empty",
			raw:         "",
			countryCode: "55",
			want:        "",
		},
		{
			name:        "no digits stays empty",
			raw:         "n/a",
			countryCode: "55",
			want:        "",
		},
		{
			name:        "no country code keeps digits only",
			raw:         "(11) 98765-4321",
			countryCode: "",
			want:        "11987654321",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.raw, tt.countryCode))
		})
	}
}
