package storage

import "nippou/internal/model"

// Settings returns the current settings.
func (s *Store) Settings() (model.Settings, error) {
	doc, err := s.load()
	if err != nil {
		return model.Settings{}, err
	}
	return doc.Settings, nil
}

// UpdateSettings applies mutate to the settings within one read-write cycle.
// The template collection is part of Settings but is managed through the
// template operations; mutate should leave it alone.
func (s *Store) UpdateSettings(mutate func(*model.Settings)) error {
	return s.update(func(doc *model.Document) error {
		mutate(&doc.Settings)
		return nil
	})
}
