package schedule

import "strings"

const (
	CodeFallback = "ipl"
	defaultColor = "#333333"
)

var teamCodes = map[string]string{
	"Chennai Super Kings":         "csk",
	"Mumbai Indians":              "mi",
	"Royal Challengers Bengaluru": "rcb",
	"Royal Challengers Bangalore": "rcb",
	"Kolkata Knight Riders":       "kkr",
	"Delhi Capitals":              "dc",
	"Sunrisers Hyderabad":         "srh",
	"Rajasthan Royals":            "rr",
	"Punjab Kings":                "pbks",
	"Gujarat Titans":              "gt",
	"Lucknow Super Giants":        "lsg",

	"CSK": "csk", "MI": "mi", "RCB": "rcb", "KKR": "kkr", "DC": "dc",
	"SRH": "srh", "RR": "rr", "PBKS": "pbks", "GT": "gt", "LSG": "lsg",

	"ChennaiSuperKings":         "csk",
	"MumbaiIndians":             "mi",
	"RoyalChallengersBengaluru": "rcb",
	"RoyalChallengersBangalore": "rcb",
	"KolkataKnightRiders":       "kkr",
	"DelhiCapitals":             "dc",
	"SunrisersHyderabad":        "srh",
	"RajasthanRoyals":           "rr",
	"PunjabKings":               "pbks",
	"GujaratTitans":             "gt",
	"LucknowSuperGiants":        "lsg",

	"Chennai": "csk", "Mumbai": "mi", "Bengaluru": "rcb", "Bangalore": "rcb",
	"Kolkata": "kkr", "Delhi": "dc", "Hyderabad": "srh", "Rajasthan": "rr",
	"Punjab": "pbks", "Gujarat": "gt", "Lucknow": "lsg",

	"Qualifier 1": CodeFallback,
	"Qualifier 2": CodeFallback,
	"Eliminator":  CodeFallback,
	"Final":       CodeFallback,
}

var foldedTeamCodes = func() map[string]string {
	out := make(map[string]string, len(teamCodes))
	for name, code := range teamCodes {
		out[strings.ToLower(name)] = code
	}
	return out
}()

// Checked in order; short codes like "mi" match loosely, so order matters.
var teamKeywords = []struct {
	code     string
	keywords []string
}{
	{"csk", []string{"chennai", "csk"}},
	{"mi", []string{"mumbai", "mi"}},
	{"rcb", []string{"bangalore", "bengaluru", "rcb"}},
	{"kkr", []string{"kolkata", "kkr"}},
	{"dc", []string{"delhi", "dc"}},
	{"srh", []string{"hyderabad", "srh"}},
	{"rr", []string{"rajasthan", "rr"}},
	{"pbks", []string{"punjab", "pbks"}},
	{"gt", []string{"gujarat", "gt"}},
	{"lsg", []string{"lucknow", "lsg"}},
}

var teamColors = map[string]string{
	"csk":  "#f2a900",
	"mi":   "#004ba0",
	"rcb":  "#d00027",
	"kkr":  "#3a225d",
	"dc":   "#0078bc",
	"srh":  "#ff822a",
	"rr":   "#254aa5",
	"pbks": "#ed1b24",
	"gt":   "#1b2133",
	"lsg":  "#0189d1",
	"ipl":  "#0078bc",
}

// TeamCode maps a franchise name, abbreviation or city to its short code.
// Lookup is exact, then case-insensitive, then by keyword containment, and
// falls back to "ipl". A blank name yields "".
func TeamCode(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if code, ok := teamCodes[name]; ok {
		return code
	}
	lower := strings.ToLower(name)
	if code, ok := foldedTeamCodes[lower]; ok {
		return code
	}
	for _, kw := range teamKeywords {
		for _, k := range kw.keywords {
			if strings.Contains(lower, k) {
				return kw.code
			}
		}
	}
	return CodeFallback
}

// TeamColor is the primary display colour for a team code.
func TeamColor(code string) string {
	if c, ok := teamColors[code]; ok {
		return c
	}
	return defaultColor
}
