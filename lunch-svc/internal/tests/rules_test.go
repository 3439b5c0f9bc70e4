package tests

import (
	"testing"

	"lunchtime/config"
	"lunchtime/lunch-svc/internal/domain"
	"lunchtime/lunch-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComboRules(t *testing.T) {
	discount := 80
	zero := 0

	tests := []struct {
		name    string
		file    config.ComboRules
		want    domain.ComboRules
		wantErr bool
	}{
		{
			name: "no file keeps defaults",
			file: config.ComboRules{},
			want: domain.DefaultComboRules,
		},
		{
			name: "discount override",
			file: config.ComboRules{Discount: &discount},
			want: domain.ComboRules{
				Discount: 80,
				Required: domain.DefaultComboRules.Required,
				Auto:     domain.DefaultComboRules.Auto,
			},
		},
		{
			name: "explicit zero discount",
			file: config.ComboRules{Discount: &zero},
			want: domain.ComboRules{
				Discount: 0,
				Required: domain.DefaultComboRules.Required,
				Auto:     domain.DefaultComboRules.Auto,
			},
		},
		{
			name: "categories deduplicated",
			file: config.ComboRules{Required: []string{"soup", "main", "soup"}, Auto: []string{"drink"}},
			want: domain.ComboRules{
				Discount: 50,
				Required: []domain.Category{domain.CategorySoup, domain.CategoryMain},
				Auto:     []domain.Category{domain.CategoryDrink},
			},
		},
		{
			name:    "unknown required category",
			file:    config.ComboRules{Required: []string{"pizza"}},
			wantErr: true,
		},
		{
			name:    "unknown auto category",
			file:    config.ComboRules{Auto: []string{"bread"}},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			rules, err := service.NewComboRules(testCase.file)

			if testCase.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, rules)
		})
	}
}
