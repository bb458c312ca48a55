package models_test

import (
	"testing"

	"catalog/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSlug(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"lower-cases", "T-Shirt", "t-shirt"},
		{"replaces spaces", "Men's Chill Crew Neck Sweatshirt", "mens_chill_crew_neck_sweatshirt"},
		{"removes apostrophes", "Women's Tee", "womens_tee"},
		{"already canonical", "kids_cyberquad_bomber_jacket", "kids_cyberquad_bomber_jacket"},
		{"multiple spaces and quotes", "It's  A  Test", "its__a__test"},
		{"empty input", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, models.NormalizeSlug(tc.input))
		})
	}
}

func TestNormalizeSlugIdempotent(t *testing.T) {
	once := models.NormalizeSlug("Men's Quilted Shirt Jacket")
	twice := models.NormalizeSlug(once)
	assert.Equal(t, once, twice)
}
