package teams

import "sort"

// Identity is the canonical team shape rendered on the dashboard.
type Identity struct {
	Code        string `json:"code"`
	DisplayName string `json:"displayName"`
	LogoURL     string `json:"logoUrl"`
}

// Directory resolves upstream team codes to canonical identities.
// It is immutable after construction and safe for concurrent use.
type Directory struct {
	byCode  map[string]Identity
	aliases map[string]string
	ordered []Identity
}

// NewDirectory builds a directory from a canonical table and an alias table
// mapping upstream codes to canonical codes. Duplicate codes keep the first entry.
func NewDirectory(table []Identity, aliases map[string]string) *Directory {
	d := &Directory{
		byCode:  make(map[string]Identity, len(table)),
		aliases: make(map[string]string, len(aliases)),
		ordered: make([]Identity, 0, len(table)),
	}
	for _, team := range table {
		if _, exists := d.byCode[team.Code]; exists {
			continue
		}
		d.byCode[team.Code] = team
		d.ordered = append(d.ordered, team)
	}
	for upstream, canonical := range aliases {
		d.aliases[upstream] = canonical
	}
	return d
}

// Default returns the directory for the thirty NBA franchises.
func Default() *Directory {
	return defaultDirectory
}

var defaultDirectory = NewDirectory(nbaTeams, upstreamAliases)

// Resolve maps a raw upstream code to a team identity. It never fails: unknown
// codes produce an identity using the raw code as both code and name.
func (d *Directory) Resolve(raw string) Identity {
	code := raw
	if canonical, ok := d.aliases[raw]; ok {
		code = canonical
	}
	if team, ok := d.byCode[code]; ok {
		return team
	}
	return Identity{Code: raw, DisplayName: raw, LogoURL: ""}
}

// ByCode looks up a canonical code without alias resolution or fallback.
func (d *Directory) ByCode(code string) (Identity, bool) {
	team, ok := d.byCode[code]
	return team, ok
}

// CodeForName returns the canonical code for a display name.
func (d *Directory) CodeForName(name string) (string, bool) {
	for _, team := range d.ordered {
		if team.DisplayName == name {
			return team.Code, true
		}
	}
	return "", false
}

// Teams returns the canonical table in declaration order.
func (d *Directory) Teams() []Identity {
	out := make([]Identity, len(d.ordered))
	copy(out, d.ordered)
	return out
}

// Names returns every display name sorted alphabetically, for filter pickers.
func (d *Directory) Names() []string {
	names := make([]string, 0, len(d.ordered))
	for _, team := range d.ordered {
		names = append(names, team.DisplayName)
	}
	sort.Strings(names)
	return names
}
