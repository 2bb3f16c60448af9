package teams

const logoBase = "https://a.espncdn.com/i/teamlogos/nba/500"

func logo(slug string) string {
	return logoBase + "/" + slug + ".png"
}

var nbaTeams = []Identity{
	{Code: "ATL", DisplayName: "Atlanta Hawks", LogoURL: logo("atl")},
	{Code: "BOS", DisplayName: "Boston Celtics", LogoURL: logo("bos")},
	{Code: "BKN", DisplayName: "Brooklyn Nets", LogoURL: logo("bkn")},
	{Code: "CHA", DisplayName: "Charlotte Hornets", LogoURL: logo("cha")},
	{Code: "CHI", DisplayName: "Chicago Bulls", LogoURL: logo("chi")},
	{Code: "CLE", DisplayName: "Cleveland Cavaliers", LogoURL: logo("cle")},
	{Code: "DAL", DisplayName: "Dallas Mavericks", LogoURL: logo("dal")},
	{Code: "DEN", DisplayName: "Denver Nuggets", LogoURL: logo("den")},
	{Code: "DET", DisplayName: "Detroit Pistons", LogoURL: logo("det")},
	{Code: "GSW", DisplayName: "Golden State Warriors", LogoURL: logo("gs")},
	{Code: "HOU", DisplayName: "Houston Rockets", LogoURL: logo("hou")},
	{Code: "IND", DisplayName: "Indiana Pacers", LogoURL: logo("ind")},
	{Code: "LAC", DisplayName: "LA Clippers", LogoURL: logo("lac")},
	{Code: "LAL", DisplayName: "Los Angeles Lakers", LogoURL: logo("lal")},
	{Code: "MEM", DisplayName: "Memphis Grizzlies", LogoURL: logo("mem")},
	{Code: "MIA", DisplayName: "Miami Heat", LogoURL: logo("mia")},
	{Code: "MIL", DisplayName: "Milwaukee Bucks", LogoURL: logo("mil")},
	{Code: "MIN", DisplayName: "Minnesota Timberwolves", LogoURL: logo("min")},
	{Code: "NOP", DisplayName: "New Orleans Pelicans", LogoURL: logo("no")},
	{Code: "NYK", DisplayName: "New York Knicks", LogoURL: logo("ny")},
	{Code: "OKC", DisplayName: "Oklahoma City Thunder", LogoURL: logo("okc")},
	{Code: "ORL", DisplayName: "Orlando Magic", LogoURL: logo("orl")},
	{Code: "PHI", DisplayName: "Philadelphia 76ers", LogoURL: logo("phi")},
	{Code: "PHX", DisplayName: "Phoenix Suns", LogoURL: logo("phx")},
	{Code: "POR", DisplayName: "Portland Trail Blazers", LogoURL: logo("por")},
	{Code: "SAC", DisplayName: "Sacramento Kings", LogoURL: logo("sac")},
	{Code: "SAS", DisplayName: "San Antonio Spurs", LogoURL: logo("sa")},
	{Code: "TOR", DisplayName: "Toronto Raptors", LogoURL: logo("tor")},
	{Code: "UTA", DisplayName: "Utah Jazz", LogoURL: logo("utah")},
	{Code: "WAS", DisplayName: "Washington Wizards", LogoURL: logo("wsh")},
}

// upstreamAliases covers the short forms some feeds use. Everything else maps to itself.
var upstreamAliases = map[string]string{
	"GS":   "GSW",
	"NO":   "NOP",
	"NY":   "NYK",
	"SA":   "SAS",
	"UTAH": "UTA",
	"WSH":  "WAS",
	"PHO":  "PHX",
	"BRK":  "BKN",
	"CHO":  "CHA",
}
