package teams

import "nba-scores-dashboard/internal/domain/teams"

// Directory defines the team lookups the dashboard needs.
type Directory interface {
	Teams() []teams.Identity
	Names() []string
	ByCode(code string) (teams.Identity, bool)
	CodeForName(name string) (string, bool)
}

// Service exposes team data for the filter controls and the teams API.
type Service struct {
	directory Directory
}

// NewService constructs a Service backed by the directory, or the built-in
// table when directory is nil.
func NewService(directory Directory) *Service {
	if directory == nil {
		directory = teams.Default()
	}
	return &Service{directory: directory}
}

// Teams returns every known team in table order.
func (s *Service) Teams() []teams.Identity {
	return s.directory.Teams()
}

// Names returns the sorted display names offered by the team filter.
func (s *Service) Names() []string {
	return s.directory.Names()
}

// TeamByCode returns a single team if present.
func (s *Service) TeamByCode(code string) (teams.Identity, bool) {
	return s.directory.ByCode(code)
}

// KnownNames keeps only the names that match a team, preserving order and
// dropping duplicates.
func (s *Service) KnownNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := s.directory.CodeForName(name); !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
