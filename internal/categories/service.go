package categories

import "github.com/cleared-dev/tally/internal/model"

// Service provides lookup over category display metadata.
type Service struct {
	infos []Info
	byID  map[model.Category]Info
}

// NewService creates a Service from a slice of category metadata.
func NewService(infos []Info) *Service {
	byID := make(map[model.Category]Info, len(infos))
	for _, info := range infos {
		byID[info.ID] = info
	}
	return &Service{infos: infos, byID: byID}
}

// All returns every known category in declaration order.
func (s *Service) All() []Info {
	return s.infos
}

// Get returns the metadata of a known category.
func (s *Service) Get(c model.Category) (Info, bool) {
	info, ok := s.byID[c]
	return info, ok
}

// Exists reports whether c is a known category.
func (s *Service) Exists(c model.Category) bool {
	_, ok := s.byID[c]
	return ok
}

// Lookup returns the metadata of c. Unrecognized categories get a neutral
// icon and color and are labeled with their own name.
func (s *Service) Lookup(c model.Category) Info {
	if info, ok := s.byID[c]; ok {
		return info
	}
	return Info{ID: c, Label: string(c), Icon: fallbackIcon, Color: fallbackColor}
}
