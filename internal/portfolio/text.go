package portfolio

var (
	Name = "--Dhruv Deshmukh--"

	Tagline = `The North Star (ध्रुव), a celestial beacon of unwavering constancy. Like my namesake, I aim to be
	a guiding light in all that I do.`

	Guide = "Hover over the stars of Ursa Minor to explore my journey"
)

// Ordered Polaris first, following the constellation down the handle and
// around the bowl.
var stars = []Star{
	{
		Position: Position{X: 50, Y: 30},
		Experience: Experience{
			Logo:        "/logos/advocare_logo.jpg",
			Title:       "Co-founder",
			Company:     "MediChecker",
			Period:      "Sep 24 - Present",
			Description: "Developing a platform to ensure no one overpays for medical bills again.",
			Link:        "https://www.medicalbillchecker.com/",
		},
	},
	{
		Position: Position{X: 43, Y: 42},
		Experience: Experience{
			Logo:        "/logos/guardian_logo.jpeg",
			Title:       "Engineering",
			Company:     "Guardian",
			Period:      "Jan 25 - Present",
			Description: "Redefining how we learn.",
			Link:        "https://www.guardian.inc",
		},
	},
	{
		Position: Position{X: 39, Y: 58},
		Experience: Experience{
			Logo:        "/logos/design_prodigy_logo.jpg",
			Title:       "Software",
			Company:     "Design Prodigy",
			Period:      "May 24 - Aug 24",
			Description: "Developed B2B market intelligence software for in-house + Fortune 500 companies.",
			Link:        "https://www.dp.sg/",
		},
	},
	{
		Position: Position{X: 42, Y: 74},
		Experience: Experience{
			Logo:        "/logos/rsaf_logo.png",
			Title:       "Logistics",
			Company:     "Republic of Singapore Air Force",
			Period:      "Mar 22 - Apr 24",
			Description: "Built systems + trained new personnel. Second in-charge for signals logistics.",
			Link:        "https://www.mindef.gov.sg/rsaf",
		},
	},
	{
		Position: Position{X: 52, Y: 90},
		Experience: Experience{
			Logo:        "/logos/ethereal_logo.webp",
			Title:       "Co-founder",
			Company:     "Ethereal Performance",
			Period:      "Dec 21 - Apr 22",
			Description: "Business Development + Marketing for a fitness trainer business. Onboarded 15+ clients.",
			Link:        "https://www.instagram.com/etherealperformsg/",
		},
	},
	{
		Position: Position{X: 48, Y: 104},
		Experience: Experience{
			Logo:    "/logos/irmbrdarkskies_logo.jpg",
			Title:   "Founder",
			Company: "irmbrdarkskies",
			Period:  "Jan 20 - Sep 22",
			Description: "Founded label to support innovative artists + uplift people. " +
				"Featured on Soundcloud's Top 50 Indie Charts, Australia's Acid Stag Radio etc.",
			Link: "https://open.spotify.com/artist/4Wrhw1yvoYoTnswsk4JJCS?si=y1yNsvvQRkGUkteHT7q_2w",
		},
	},
	{
		Position: Position{X: 38, Y: 88},
		Experience: Experience{
			Logo:        "/logos/unsplash_logo.jpeg",
			Title:       "Photographer",
			Company:     "Unsplash",
			Period:      "Jan 17 - Dec 21",
			Description: "24 mil views, 100k downloads. Photos used by Picsart, Buzzfeed, Notion, Tencent, Yahoo News, etc.",
			Link:        "https://unsplash.com/@dhruvywuvy",
		},
	},
}

var socials = []SocialLink{
	{Name: "LinkedIn", Icon: "linkedin", URL: "https://www.linkedin.com/in/dhruv-deshmukh-2a7aa2228/"},
	{Name: "Instagram", Icon: "instagram", URL: "https://www.instagram.com/dhruvywuvy/"},
	{Name: "X", Icon: "x-twitter", URL: "https://x.com/dhruvywuvy"},
	{Name: "GitHub", Icon: "github", URL: "https://github.com/dhruvywuvy"},
}
