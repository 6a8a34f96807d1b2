package content

import "fotografica/models"

// Default content for the singleton entities, consulted by the store when no
// row exists yet. Having one constant per singleton here keeps the route
// handlers and the seeder from repeating the same literals.

func DefaultAbout() models.AboutContent {
	return models.AboutContent{
		Title:   "Our Mission",
		Content: "To foster creativity and excellence in photography and design by providing a platform for learning, collaboration, and artistic expression. We aim to capture life's most beautiful moments while building a supportive community of creative individuals who inspire each other to reach new heights.",
	}
}

func DefaultHome() models.HomeContent {
	return models.HomeContent{
		HeroSubtitle: "Capturing moments, creating memories, and fostering creative talent through photography, design, and creative media.",
		Features: models.FeatureList{
			{Title: "Photography Excellence", Description: "Capturing life's most beautiful moments with artistic vision and technical precision."},
			{Title: "Creative Community", Description: "A diverse team of passionate photographers and creative media enthusiasts."},
			{Title: "Exciting Events", Description: "Regular workshops, competitions, and collaborative projects to enhance skills."},
			{Title: "Recognition & Growth", Description: "Showcasing talent and providing opportunities for creative development."},
		},
		CTAText: "Discover amazing events, connect with talented individuals, and showcase your creative work.",
	}
}

func DefaultContact() models.ContactInfo {
	return models.ContactInfo{
		Email:      "foto.grafica@example.com",
		Phone:      "+1 (555) 123-4567",
		PhoneHours: "Mon-Fri, 9AM-6PM PST",
		Address: models.StringMap{
			"line1": "Creative Arts Center",
			"line2": "123 Photography Lane",
			"city":  "San Francisco",
			"state": "CA",
			"zip":   "94102",
		},
		OfficeHours: models.StringMap{
			"weekdays": "Monday - Friday: 9:00 AM - 6:00 PM",
			"weekend":  "Saturday: 10:00 AM - 4:00 PM",
			"closed":   "Sunday: Closed",
		},
		SocialLinks: models.StringMap{
			"instagram":        "https://instagram.com/fotografica",
			"facebook":         "https://facebook.com/fotografica",
			"twitter":          "https://twitter.com/fotografica",
			"instagram_handle": "@fotografica",
		},
		FAQ: models.FAQList{
			{Question: "How can I join the club?", Answer: "Simply contact us through the form or email. We welcome photographers of all skill levels!"},
			{Question: "Do you offer photography services?", Answer: "Yes! We provide professional photography services for events, portraits, and commercial projects."},
			{Question: "What equipment do I need?", Answer: "Any camera works! We focus on creativity and technique rather than expensive equipment."},
		},
	}
}
