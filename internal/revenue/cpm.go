package revenue

// Country and Niche key the static CPM table. Values track public CPM
// surveys and are refreshed by hand when they drift.
type (
	Country string
	Niche   string
)

const (
	USA         Country = "USA"
	France      Country = "France"
	UK          Country = "UK"
	Canada      Country = "Canada"
	Germany     Country = "Germany"
	India       Country = "India"
	Brazil      Country = "Brazil"
	Australia   Country = "Australia"
	Japan       Country = "Japan"
	Mexico      Country = "Mexico"
	Spain       Country = "Spain"
	Italy       Country = "Italy"
	Netherlands Country = "Netherlands"
	Sweden      Country = "Sweden"
	Norway      Country = "Norway"
	Switzerland Country = "Switzerland"
)

const (
	ScienceTech   Niche = "science-tech"
	Travel        Niche = "travel"
	Autos         Niche = "autos"
	Education     Niche = "education"
	HowTo         Niche = "howto"
	Entertainment Niche = "entertainment"
	PeopleBlogs   Niche = "people-blogs"
	Gaming        Niche = "gaming"
	News          Niche = "news"
	Comedy        Niche = "comedy"
	Film          Niche = "film"
	Sports        Niche = "sports"
	Pets          Niche = "pets"
	Nonprofits    Niche = "nonprofits"
	Music         Niche = "music"
)

// nicheBaseCPM is the USD CPM observed for US traffic per niche.
var nicheBaseCPM = map[Niche]float64{
	ScienceTech:   20.8,
	Travel:        18.7,
	Autos:         18.0,
	Education:     14.2,
	HowTo:         13.3,
	Entertainment: 12.5,
	PeopleBlogs:   10.0,
	Gaming:        9.2,
	News:          8.3,
	Comedy:        6.7,
	Film:          6.3,
	Sports:        5.8,
	Pets:          4.2,
	Nonprofits:    3.3,
	Music:         3.0,
}

// countryFactor scales the US baseline to other ad markets.
var countryFactor = map[Country]float64{
	USA:         1.00,
	Switzerland: 0.95,
	Norway:      0.90,
	Australia:   0.88,
	UK:          0.85,
	Canada:      0.82,
	Germany:     0.78,
	Netherlands: 0.74,
	Sweden:      0.72,
	France:      0.65,
	Japan:       0.60,
	Italy:       0.52,
	Spain:       0.50,
	Mexico:      0.30,
	Brazil:      0.25,
	India:       0.12,
}

// SponsorshipRate is the flat per-view USD range sponsors pay in a niche.
type SponsorshipRate struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

var sponsorshipRates = map[Niche]SponsorshipRate{
	ScienceTech:   {0.03, 0.08},
	Travel:        {0.02, 0.06},
	Autos:         {0.02, 0.06},
	Education:     {0.02, 0.07},
	HowTo:         {0.02, 0.06},
	Entertainment: {0.01, 0.04},
	PeopleBlogs:   {0.01, 0.04},
	Gaming:        {0.01, 0.05},
	News:          {0.01, 0.03},
	Comedy:        {0.01, 0.04},
	Film:          {0.01, 0.04},
	Sports:        {0.01, 0.04},
	Pets:          {0.01, 0.03},
	Nonprofits:    {0.005, 0.02},
	Music:         {0.005, 0.03},
}

// LookupCPM returns the table CPM for a country/niche pair, discounted for
// Shorts inventory. The second return is false for unknown keys.
func LookupCPM(country Country, niche Niche, shorts bool) (float64, bool) {
	base, ok := nicheBaseCPM[niche]
	if !ok {
		return 0, false
	}
	factor, ok := countryFactor[country]
	if !ok {
		return 0, false
	}
	cpm := base * factor
	if shorts {
		cpm *= ShortsCPMMultiplier
	}
	return cpm, true
}

// LookupSponsorshipRate returns the per-view sponsorship range for a niche.
func LookupSponsorshipRate(niche Niche) (SponsorshipRate, bool) {
	r, ok := sponsorshipRates[niche]
	return r, ok
}
