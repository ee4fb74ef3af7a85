package storage

import (
	"nippou/internal/logging"
	"nippou/internal/model"
)

// Templates returns all stored templates.
func (s *Store) Templates() ([]model.Template, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Settings.Templates, nil
}

// FindTemplateByName returns the first template with the given name, or nil
// if absent.
func (s *Store) FindTemplateByName(name string) (*model.Template, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Settings.Templates {
		if doc.Settings.Templates[i].Name == name {
			t := doc.Settings.Templates[i]
			return &t, nil
		}
	}
	return nil, nil
}

// DefaultTemplate returns the template marked as default, or nil when none is.
func (s *Store) DefaultTemplate() (*model.Template, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Settings.Templates {
		if doc.Settings.Templates[i].IsDefault {
			t := doc.Settings.Templates[i]
			return &t, nil
		}
	}
	return nil, nil
}

// SaveTemplate upserts a template by ID. When the template is marked as
// default, every other template's default flag is cleared within the same
// read-write cycle, so at most one default exists at any time.
func (s *Store) SaveTemplate(template *model.Template) error {
	return s.update(func(doc *model.Document) error {
		if template.IsDefault {
			for i := range doc.Settings.Templates {
				if doc.Settings.Templates[i].ID != template.ID {
					doc.Settings.Templates[i].IsDefault = false
				}
			}
		}
		for i := range doc.Settings.Templates {
			if doc.Settings.Templates[i].ID == template.ID {
				doc.Settings.Templates[i] = *template
				return nil
			}
		}
		doc.Settings.Templates = append(doc.Settings.Templates, *template)
		logging.DebugLog("template added", logging.KeyTemplate, template.Name)
		return nil
	})
}

// DeleteTemplate removes the template with the given ID, returning true iff
// a record was removed.
func (s *Store) DeleteTemplate(id string) (bool, error) {
	removed := false
	err := s.update(func(doc *model.Document) error {
		kept := doc.Settings.Templates[:0]
		for _, t := range doc.Settings.Templates {
			if t.ID == id {
				removed = true
				continue
			}
			kept = append(kept, t)
		}
		doc.Settings.Templates = kept
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}
