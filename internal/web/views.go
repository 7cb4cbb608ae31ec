package web

import (
	"embed"
	"html/template"

	"github.com/dhruvywuvy/ursa-minor/internal/constellation"
	"github.com/dhruvywuvy/ursa-minor/internal/portfolio"
)

//go:embed templates/*.html
var templateFS embed.FS

func parseTemplates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.html")
}

type cardView struct {
	constellation.Panel
	Fallback string
	Hidden   bool
}

type starView struct {
	Index    int
	Position portfolio.Position
	Card     cardView
}

func (s *Server) card(i int, hidden bool) cardView {
	return cardView{
		Panel:    s.layer.PanelFor(i),
		Fallback: portfolio.PlaceholderLogo,
		Hidden:   hidden,
	}
}

func (s *Server) starViews() []starView {
	stars := s.layer.Stars()
	out := make([]starView, len(stars))
	for i, star := range stars {
		out[i] = starView{Index: i, Position: star.Position, Card: s.card(i, true)}
	}
	return out
}
