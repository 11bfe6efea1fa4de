// Package content holds the static catalogs the site is composed from.
// Everything here is immutable after process start.
package content

import (
	"strings"

	"advibes_site/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	BrandName = "AD~VIBES"
	BrandFull = "AD~VIBES Media House"
)

var Services = []models.Service{
	{
		Slug:        "corporate-documentaries",
		Icon:        "🎬",
		Title:       "Corporate Documentaries",
		Description: "Showcase your brand story and achievements through compelling documentary-style videos that connect with your audience.",
		Features:    []string{"Brand Storytelling", "Company Culture", "Achievement Highlights"},
	},
	{
		Slug:        "ad-films",
		Icon:        "📺",
		Title:       "Ad Films",
		Description: "Engaging advertisements that amplify your message and drive action from your target audience.",
		Features:    []string{"Creative Concepts", "High Production Value", "Strategic Messaging"},
	},
	{
		Slug:        "video-marketing-reels",
		Icon:        "📱",
		Title:       "Video Marketing Reels",
		Description: "Eye-catching reels for social media impact that boost engagement and brand visibility.",
		Features:    []string{"Social Media Optimization", "Trending Content", "Viral Potential"},
	},
	{
		Slug:        "motion-design",
		Icon:        "✨",
		Title:       "Motion Design",
		Description: "Animated visuals that captivate and bring your content to life with dynamic motion graphics.",
		Features:    []string{"2D Animation", "Motion Graphics", "Visual Effects"},
	},
	{
		Slug:        "photography",
		Icon:        "📸",
		Title:       "Photography",
		Description: "High-quality brand and product images that showcase your offerings in the best possible light.",
		Features:    []string{"Product Photography", "Corporate Events", "Brand Photography"},
	},
	{
		Slug:        "corporate-interviews",
		Icon:        "🎤",
		Title:       "Corporate Interviews",
		Description: "Insightful interviews that humanize your brand and build trust with your audience.",
		Features:    []string{"Executive Interviews", "Employee Stories", "Customer Testimonials"},
	},
}

var Projects = []models.Project{
	{ID: 1, Title: "Building Tomorrow", ServiceSlug: "corporate-documentaries", Category: "Documentary", Media: "portfolio/building-tomorrow.jpg",
		Description: "A 12-minute documentary following a construction group's flagship township from ground-breaking to handover.",
		Tags:        []string{"Brand Story", "Drone", "Interviews"}},
	{ID: 2, Title: "Fifty Years of Flavour", ServiceSlug: "corporate-documentaries", Category: "Documentary", Media: "portfolio/fifty-years.jpg",
		Description: "Anniversary film tracing a family-run spice brand across three generations.",
		Tags:        []string{"Heritage", "Archival", "Voice-over"}},
	{ID: 3, Title: "Monsoon Ready", ServiceSlug: "ad-films", Category: "Ad Film", Media: "portfolio/monsoon-ready.jpg",
		Description: "30-second TV commercial for a waterproofing brand, shot across two days in live rain.",
		Tags:        []string{"TVC", "Rain Rig", "Colour Grade"}},
	{ID: 4, Title: "Morning Ritual", ServiceSlug: "ad-films", Category: "Ad Film", Media: "portfolio/morning-ritual.jpg",
		Description: "Digital-first ad film for a tea brand launched across streaming and social platforms.",
		Tags:        []string{"Digital Ad", "Product", "Storyboard"}},
	{ID: 5, Title: "Weekend Drops", ServiceSlug: "video-marketing-reels", Category: "Reels", Media: "portfolio/weekend-drops.jpg",
		Description: "A monthly series of vertical reels for a streetwear label's weekend product drops.",
		Tags:        []string{"Instagram", "Vertical", "Series"}},
	{ID: 6, Title: "Kitchen Hacks", ServiceSlug: "video-marketing-reels", Category: "Reels", Media: "portfolio/kitchen-hacks.jpg",
		Description: "Short-form recipe reels for a cookware brand, optimised for retention in the first three seconds.",
		Tags:        []string{"Short Form", "Food", "Hooks"}},
	{ID: 7, Title: "How Payments Flow", ServiceSlug: "motion-design", Category: "Motion Design", Media: "portfolio/payments-flow.jpg",
		Description: "Explainer animation walking first-time users through a fintech app's payment journey.",
		Tags:        []string{"2D Animation", "Explainer", "UI Motion"}},
	{ID: 8, Title: "Logo Stings", ServiceSlug: "motion-design", Category: "Motion Design", Media: "portfolio/logo-stings.jpg",
		Description: "A pack of animated logo stings and lower thirds for a regional news channel.",
		Tags:        []string{"Branding", "Broadcast", "Motion Graphics"}},
	{ID: 9, Title: "Summer Catalogue", ServiceSlug: "photography", Category: "Photography", Media: "portfolio/summer-catalogue.jpg",
		Description: "Studio and on-location product photography for a footwear catalogue of 140 SKUs.",
		Tags:        []string{"Product", "Studio", "E-commerce"}},
	{ID: 10, Title: "Annual Meet 2024", ServiceSlug: "photography", Category: "Photography", Media: "portfolio/annual-meet.jpg",
		Description: "Event coverage of a two-day dealer meet, delivered same-evening for social posting.",
		Tags:        []string{"Events", "Same-day Edit", "Corporate"}},
	{ID: 11, Title: "Leaders in Conversation", ServiceSlug: "corporate-interviews", Category: "Interviews", Media: "portfolio/leaders.jpg",
		Description: "A six-part interview series with the leadership team of a manufacturing company.",
		Tags:        []string{"Executive", "Multi-cam", "Series"}},
	{ID: 12, Title: "Voices from the Floor", ServiceSlug: "corporate-interviews", Category: "Interviews", Media: "portfolio/voices.jpg",
		Description: "Employee stories filmed on the shop floor for an employer-branding campaign.",
		Tags:        []string{"Employer Brand", "Documentary", "Subtitles"}},
}

var CaseStudies = []models.CaseStudy{
	{Title: "E-Commerce Growth", Client: "Fashion Retailer", Metric: "+285%", MetricLabel: "Revenue Growth",
		Details: "Increased online sales through strategic PPC campaigns and conversion optimization.", Icon: "🛒", Gradient: "pink-purple"},
	{Title: "Brand Awareness", Client: "Tech Startup", Metric: "+150%", MetricLabel: "Social Engagement",
		Details: "Built brand presence from zero to 100K followers across multiple platforms.", Icon: "🚀", Gradient: "blue-cyan"},
	{Title: "SEO Success", Client: "Local Business", Metric: "+400%", MetricLabel: "Organic Traffic",
		Details: "Dominated local search results and increased website visibility.", Icon: "📍", Gradient: "green-blue"},
}

var BehindTheBuild = []models.BTSProject{
	{ID: "kanchan-city", Title: "Kanchan BTS", Images: []string{"1.avif", "2.avif", "3.avif", "4.avif", "5.jpg"}},
	{ID: "mountainor-selected", Title: "Mountainor BTS", Images: []string{"1.png", "2.png", "3.jpg", "4.png", "5.jpg", "6.png"}},
	{ID: "samrat-bts", Title: "SAMRAT BTS", Images: []string{"1.jpg", "2.jpg", "3.avif", "4.avif", "5.avif", "6.jpg", "7.jpg", "8.avif"}},
	{ID: "crown-estate", Title: "Crown Estate BTS", Images: []string{"1.jpg", "2.avif", "3.avif", "4.jpg", "5.jpg"}},
}

var Testimonials = []models.Testimonial{
	{
		Name: "Vaibhav Bhavaskar", Role: "CEO", Company: "Brand Company", Avatar: "👨‍💼", Rating: 5,
		Quote: "The ad films created have truly captured the essence of our brand. They went beyond just visuals; the story they crafted helped us connect with a much wider audience. We've had excellent feedback from our customers, and it's clear that these films helped us stand out in a crowded market. Highly recommend them for anyone looking to make an impact!",
	},
	{
		Name: "Amar Mote", Role: "Marketing Director", Company: "Growth Company", Avatar: "👨‍💼", Rating: 5,
		Quote: "We approached Ad vibes for an ad film, and they exceeded our expectations. The quality of production was top-notch, and they handled everything with such professionalism. The final product was impressive, with every detail carefully thought out. Our brand received amazing visibility thanks to their work, & we're looking forward to more projects with them!",
	},
	{
		Name: "Tushar Genji", Role: "Founder", Company: "Startup Company", Avatar: "👨‍💼", Rating: 5,
		Quote: "Creating an ad film that feels genuine and compelling isn't easy, but ad~vibes nailed it. They told our brand story in a way that was engaging and impactful. The ad film helped us connect emotionally with our audience, and we saw a clear boost in brand recognition. Working with them has been one of our best investments.",
	},
}

var HeroStats = []models.Stat{
	{Value: 50, Suffix: "+", Label: "Happy Clients"},
	{Value: 100, Suffix: "+", Label: "Projects Done"},
	{Value: 98, Suffix: "%", Label: "Success Rate"},
}

var AboutStats = []models.Stat{
	{Value: 50, Suffix: "+", Label: "Happy Clients"},
	{Value: 100, Suffix: "+", Label: "Projects Done"},
	{Value: 98, Suffix: "%", Label: "Success Rate"},
	{Value: 24, Suffix: "/7", Label: "Support"},
}

var CoreValues = []models.CoreValue{
	{Icon: "🎬", Title: "Creative Excellence", Description: "We deliver stunning visual content that captivates and engages your audience."},
	{Icon: "🤝", Title: "Client Partnership", Description: "We build long-term relationships based on trust and mutual success."},
	{Icon: "⚡", Title: "Fast Delivery", Description: "Quick turnaround times without compromising on quality."},
	{Icon: "💎", Title: "Quality Assured", Description: "Every project meets our high standards of excellence."},
}

var ClientLogos = []models.ClientLogo{
	{ID: 1, Name: "Client 1", Logo: "https://i.postimg.cc/0NMHLLYQ/images-1-removebg-preview.png"},
	{ID: 2, Name: "Client 2", Logo: "https://i.postimg.cc/jj7Z8yTn/images-removebg-preview.png"},
	{ID: 3, Name: "Client 3", Logo: "https://i.postimg.cc/90WbFS7y/kanchan-removebg-preview.png"},
	{ID: 4, Name: "Client 4", Logo: "https://i.postimg.cc/c4C79fM1/mountainor-removebg-preview.png"},
	{ID: 5, Name: "Client 5", Logo: "https://i.postimg.cc/g0Fv2Q9r/samrat-logo.png"},
	{ID: 6, Name: "Client 6", Logo: "https://i.postimg.cc/XJNBZ0sN/Swaroma-Logo-1-1.png"},
	{ID: 7, Name: "Client 7", Logo: "https://i.postimg.cc/4464D0PB/test-2-300x300.png"},
	{ID: 8, Name: "Client 8", Logo: "https://i.postimg.cc/3wTncdxL/Venkatesh-Buildcon-Logo-removebg-preview.png"},
}

var CTAFeatures = []models.Feature{
	{Icon: "🎯", Text: "Targeted Campaigns"},
	{Icon: "📊", Text: "Data-Driven Results"},
	{Icon: "🚀", Text: "Rapid Growth"},
}

var WhyChooseUs = []string{
	"Expert team with 5+ years experience",
	"100+ successful projects delivered",
	"24/7 support and maintenance",
	"Competitive pricing and flexible packages",
}

var Contact = models.ContactInfo{
	Email: "hello@advibes.in",
	Phone: "+91 98765 43210",
	Addresses: []string{
		"Office 402, Sai Plaza, Baner Road,\nPune, Maharashtra 411045",
		"2nd Floor, Creative Hub, Andheri West,\nMumbai, Maharashtra 400053",
	},
	BusinessHours: "Mon - Sat: 10:00 AM - 7:00 PM\nSunday: Closed",
}

var SocialLinks = []models.SocialLink{
	{Name: "Facebook", URL: "https://www.facebook.com/advibesmediahouse"},
	{Name: "Instagram", URL: "https://www.instagram.com/advibesmediahouse"},
	{Name: "YouTube", URL: "https://www.youtube.com/@advibesmediahouse"},
}

var NavItems = []models.NavItem{
	{Label: "Home", Path: "/"},
	{Label: "About", Path: "/about"},
	{Label: "Services", Path: "/services"},
	{Label: "Portfolio", Path: "/portfolio"},
	{Label: "Contact", Path: "/contact"},
}

// ServiceBySlug looks up a service from the catalog
func ServiceBySlug(slug string) (models.Service, bool) {
	for _, s := range Services {
		if s.Slug == slug {
			return s, true
		}
	}
	return models.Service{}, false
}

// ProjectsForService returns the portfolio projects filed under a service slug
func ProjectsForService(slug string) []models.Project {
	var out []models.Project
	for _, p := range Projects {
		if p.ServiceSlug == slug {
			out = append(out, p)
		}
	}
	return out
}

// PortfolioCategories lists "All" followed by each distinct project category
// in catalog order.
func PortfolioCategories() []string {
	seen := map[string]bool{}
	cats := []string{"All"}
	for _, p := range Projects {
		if !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	return cats
}

// ServiceLabel returns the display title for a service slug. Unknown slugs
// are title-cased ("brand-films" -> "Brand Films").
func ServiceLabel(slug string) string {
	if s, ok := ServiceBySlug(slug); ok {
		return s.Title
	}
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}
