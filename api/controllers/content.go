package controllers

import (
	"net/http"

	"github.com/sunstateclean/sunstate-backend/api/responses"
	"github.com/sunstateclean/sunstate-backend/internal/content"
)

// Testimonials serves the published customer reviews.
func Testimonials() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"testimonials": content.Testimonials()})
	}
}

// FAQs serves the published question and answer pairs.
func FAQs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"faqs": content.FAQs()})
	}
}
