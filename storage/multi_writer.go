package storage

import (
	"errors"

	"rozetka-scraper/models"
)

// MultiWriter hands every product to each of its writers in order.
type MultiWriter struct {
	writers []ProductWriter
}

func NewMultiWriter(writers ...ProductWriter) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write stops at the first writer that fails.
func (m *MultiWriter) Write(p *models.Product) error {
	for _, w := range m.writers {
		if err := w.Write(p); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every writer, even when some of them fail.
func (m *MultiWriter) Close() error {
	var errs []error
	for _, w := range m.writers {
		if err := w.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
