// Package content serves the static marketing copy the site renders
// alongside the quote form. The data is compiled in; editing it is a
// deploy, which is deliberate for a site this size.
package content

// Testimonial is a customer review shown on the landing page.
type Testimonial struct {
	Author string `json:"author"`
	Suburb string `json:"suburb"`
	Rating int    `json:"rating"`
	Quote  string `json:"quote"`
}

// FAQ is a question and answer pair for the FAQ section.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var testimonials = []Testimonial{
	{
		Author: "Maree T.",
		Suburb: "Paddington",
		Rating: 5,
		Quote:  "Booked a same-day clean before an inspection and the team had the place spotless by lunch.",
	},
	{
		Author: "Daniel K.",
		Suburb: "Chermside",
		Rating: 5,
		Quote:  "End of lease clean got our full bond back. The oven looked better than when we moved in.",
	},
	{
		Author: "Priya S.",
		Suburb: "West End",
		Rating: 4,
		Quote:  "Fortnightly general clean for over a year now. Reliable, friendly, and they never cut corners.",
	},
	{
		Author: "Glenn R.",
		Suburb: "Carindale",
		Rating: 5,
		Quote:  "As an NDIS participant the booking process was straightforward and the cleaners were respectful of my routine.",
	},
}

var faqs = []FAQ{
	{
		Question: "Do your prices include GST?",
		Answer:   "Yes. Every quoted total includes GST; the breakdown shows the GST component for your records.",
	},
	{
		Question: "Why is a deposit required for urgent bookings?",
		Answer:   "Urgent and same-day bookings reshuffle our roster, so we ask for a 30% deposit to hold the slot. Standard bookings need no deposit.",
	},
	{
		Question: "Do I need to be home during the clean?",
		Answer:   "No. Most customers leave a key or lockbox code in the special requests. Our cleaners are police-checked and insured.",
	},
	{
		Question: "Are you registered for NDIS cleaning supports?",
		Answer:   "Yes. Tick the NDIS participant option on the quote form and include your 9-digit participant number so we can invoice your plan correctly.",
	},
	{
		Question: "What if I need to change my quote after submitting?",
		Answer:   "Reply to your confirmation email or call us. Quotes are not bookings until we confirm a time with you.",
	},
}

// Testimonials returns the published customer reviews.
func Testimonials() []Testimonial {
	out := make([]Testimonial, len(testimonials))
	copy(out, testimonials)
	return out
}

// FAQs returns the published question and answer pairs.
func FAQs() []FAQ {
	out := make([]FAQ, len(faqs))
	copy(out, faqs)
	return out
}
