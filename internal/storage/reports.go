package storage

import (
	"nippou/internal/logging"
	"nippou/internal/model"
)

// Upsert stores a fully-formed report. An existing report with the same ID
// is replaced in place, preserving collection order; otherwise the report
// is appended.
func (s *Store) Upsert(report *model.DailyReport) error {
	return s.update(func(doc *model.Document) error {
		for i := range doc.Reports {
			if doc.Reports[i].ID == report.ID {
				doc.Reports[i] = *report
				return nil
			}
		}
		doc.Reports = append(doc.Reports, *report)
		logging.DebugLog("report added",
			logging.KeyReportID, report.ID, logging.KeyOperation, "upsert")
		return nil
	})
}

// FindByID returns the report with the given ID, or nil if absent.
func (s *Store) FindByID(id string) (*model.DailyReport, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Reports {
		if doc.Reports[i].ID == id {
			r := doc.Reports[i]
			return &r, nil
		}
	}
	return nil, nil
}

// FindByDate returns the first report (in insertion order) with the given
// date, or nil if absent. Duplicate dates are possible but unenforced;
// callers decide whether same-date reports replace or coexist.
func (s *Store) FindByDate(date string) (*model.DailyReport, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Reports {
		if doc.Reports[i].Date == date {
			r := doc.Reports[i]
			return &r, nil
		}
	}
	return nil, nil
}

// ListAll returns all reports in insertion order. Callers sort by date
// when they need chronological order.
func (s *Store) ListAll() ([]model.DailyReport, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Reports, nil
}

// ListByDateRange returns the reports whose date falls within [startDate,
// endDate], inclusive. Comparison is lexicographic, which equals
// chronological order for the fixed-width zero-padded YYYY-MM-DD format.
func (s *Store) ListByDateRange(startDate, endDate string) ([]model.DailyReport, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	var matched []model.DailyReport
	for _, r := range doc.Reports {
		if r.Date >= startDate && r.Date <= endDate {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

// Delete removes the report with the given ID. It returns true iff a
// record was removed; a miss is not an error.
func (s *Store) Delete(id string) (bool, error) {
	removed := false
	err := s.update(func(doc *model.Document) error {
		kept := doc.Reports[:0]
		for _, r := range doc.Reports {
			if r.ID == id {
				removed = true
				continue
			}
			kept = append(kept, r)
		}
		doc.Reports = kept
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}
