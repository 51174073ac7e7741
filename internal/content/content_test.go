package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestimonialsReturnsCopy(t *testing.T) {
	first := Testimonials()
	require.NotEmpty(t, first)

	first[0].Author = "mutated"
	assert.NotEqual(t, "mutated", Testimonials()[0].Author)
}

func TestFAQsReturnsCopy(t *testing.T) {
	first := FAQs()
	require.NotEmpty(t, first)

	first[0].Question = "mutated"
	assert.NotEqual(t, "mutated", FAQs()[0].Question)
}

func TestTestimonialRatingsInRange(t *testing.T) {
	for _, tm := range Testimonials() {
		assert.GreaterOrEqual(t, tm.Rating, 1)
		assert.LessOrEqual(t, tm.Rating, 5)
	}
}
