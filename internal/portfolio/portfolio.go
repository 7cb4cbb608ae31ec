// Package portfolio holds the static content of the page: the career
// history bound to the stars of the constellation and the social links.
package portfolio

const (
	// PlaceholderLogo is shown when an experience has no logo or the logo
	// cannot be loaded.
	PlaceholderLogo = "/static/placeholder.svg"

	// LinkLabel labels the outbound link of every experience card.
	LinkLabel = "Learn More →"

	// LinkRel isolates every outbound link from the page.
	LinkRel = "noopener noreferrer"
)

// Experience is one entry of the career history.
type Experience struct {
	Logo        string `json:"logo"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// LogoOrPlaceholder returns the logo reference, or the placeholder when the
// experience has none.
func (e Experience) LogoOrPlaceholder() string {
	if e.Logo == "" {
		return PlaceholderLogo
	}
	return e.Logo
}

// Position is a percentage offset inside the constellation container.
// Values may exceed 100 to place a star outside the container box.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Star pairs a constellation position with the experience it reveals.
type Star struct {
	Position   Position   `json:"position"`
	Experience Experience `json:"experience"`
}

// SocialLink is a profile link shown in the page corner.
type SocialLink struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
	URL  string `json:"url"`
}

// Profile is the heading block of the page.
type Profile struct {
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
	Guide   string `json:"guide"`
}

// Stars returns a copy of the constellation, Polaris first.
func Stars() []Star {
	out := make([]Star, len(stars))
	copy(out, stars)
	return out
}

// Socials returns a copy of the social links in display order.
func Socials() []SocialLink {
	out := make([]SocialLink, len(socials))
	copy(out, socials)
	return out
}

// DefaultProfile returns the page heading.
func DefaultProfile() Profile {
	return Profile{Name: Name, Tagline: Tagline, Guide: Guide}
}
