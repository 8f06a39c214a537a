package domain

// OtherContinent é o balde para países fora da tabela de mapeamento
// (inclui países ausentes ou vazios no cadastro do cliente)
const OtherContinent = "others"

// countryToContinent é configuração estática imutável carregada na inicialização.
// A chave é o campo country do cliente, texto livre no store externo.
var countryToContinent = map[string]string{
	// América
	"USA":           "North America",
	"United States": "North America",
	"Canada":        "North America",
	"Mexico":        "North America",
	"Brazil":        "South America",
	"Argentina":     "South America",
	"Chile":         "South America",
	"Colombia":      "South America",
	"Peru":          "South America",
	"Uruguay":       "South America",

	// Europa
	"UK":             "Europe",
	"United Kingdom": "Europe",
	"Germany":        "Europe",
	"France":         "Europe",
	"Italy":          "Europe",
	"Spain":          "Europe",
	"Portugal":       "Europe",
	"Netherlands":    "Europe",
	"Poland":         "Europe",
	"Sweden":         "Europe",
	"Norway":         "Europe",
	"Switzerland":    "Europe",
	"Ireland":        "Europe",

	// Ásia
	"China":       "Asia",
	"Japan":       "Asia",
	"India":       "Asia",
	"South Korea": "Asia",
	"Singapore":   "Asia",
	"Thailand":    "Asia",
	"Vietnam":     "Asia",
	"Indonesia":   "Asia",
	"Malaysia":    "Asia",
	"Philippines": "Asia",

	// África
	"Egypt":        "Africa",
	"Nigeria":      "Africa",
	"South Africa": "Africa",
	"Kenya":        "Africa",
	"Morocco":      "Africa",

	// Oceania
	"Australia":   "Oceania",
	"New Zealand": "Oceania",
}

// ContinentForCountry resolve o continente de um país; países não mapeados
// (e clientes sem país) caem no balde OtherContinent
func ContinentForCountry(country string) string {
	if continent, ok := countryToContinent[country]; ok {
		return continent
	}
	return OtherContinent
}
