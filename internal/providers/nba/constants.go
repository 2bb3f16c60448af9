package nba

import "time"

const (
	providerName = "nba"

	defaultLiveBaseURL         = "https://cdn.nba.com/static/json/liveData"
	defaultStatsBaseURL        = "https://stats.nba.com/stats"
	defaultHTTPTimeout         = 10 * time.Second
	defaultTimezone            = "America/Chicago"
	defaultTimezoneLabel       = "CT"
	defaultBoxScoreConcurrency = 4
	leagueID                   = "00"

	// Upstream status codes from the live scoreboard and schedule.
	statusNotStarted = 1
	statusInProgress = 2
	statusFinal      = 3

	statusScheduledText = "Scheduled"
	errorBodyLimit      = 512
)

// Endpoint names used in metrics and logs.
const (
	endpointScoreboard    = "nba.scoreboard"
	endpointLiveBoxScore  = "nba.live_boxscore"
	endpointGameFinder    = "nba.leaguegamefinder"
	endpointStatsBoxScore = "nba.boxscoretraditionalv2"
	endpointSchedule      = "nba.scoreboardv2"
)

// stats.nba.com rejects requests without browser-like headers.
var statsHeaders = map[string]string{
	"Accept":          "application/json, text/plain, */*",
	"Accept-Language": "en-US,en;q=0.9",
	"Origin":          "https://www.nba.com",
	"Referer":         "https://www.nba.com/",
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
}
