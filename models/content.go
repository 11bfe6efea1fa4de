package models

// Service is one offering of the agency. Slug doubles as the contact form's
// service value and the /works/:slug path segment.
type Service struct {
	Slug        string
	Icon        string
	Title       string
	Description string
	Features    []string
}

// Project is a portfolio entry. Media is either an absolute URL or a
// storage key resolved through the media storage provider.
type Project struct {
	ID          int
	Title       string
	ServiceSlug string
	Category    string
	Media       string
	Description string
	Tags        []string
}

type CaseStudy struct {
	Title       string
	Client      string
	Metric      string
	MetricLabel string
	Details     string
	Icon        string
	Gradient    string
}

type Testimonial struct {
	Name    string
	Role    string
	Company string
	Avatar  string
	Quote   string
	Rating  int
}

// Stat is a headline number, e.g. "50" + "+" "Happy Clients"
type Stat struct {
	Value  int
	Suffix string
	Label  string
}

type CoreValue struct {
	Icon        string
	Title       string
	Description string
}

type ClientLogo struct {
	ID   int
	Name string
	Logo string
}

type Feature struct {
	Icon string
	Text string
}

// ContactInfo is the agency's published contact block
type ContactInfo struct {
	Email         string
	Phone         string
	Addresses     []string
	BusinessHours string
}

type SocialLink struct {
	Name string
	URL  string
}

// NavItem is an entry of the navigation bar and footer link column
type NavItem struct {
	Label string
	Path  string
}

// BTSProject is a behind-the-scenes gallery. Images are media keys
// relative to the project's gallery folder.
type BTSProject struct {
	ID     string
	Title  string
	Images []string
}

// ImageKey is the storage key of one gallery image
func (p BTSProject) ImageKey(image string) string {
	return "behind-the-build/" + p.ID + "/" + image
}
