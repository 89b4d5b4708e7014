package storage

import "rozetka-scraper/models"

// ProductWriter is the interface any output backend must satisfy.
// Write is called once per product, as soon as it is parsed.
type ProductWriter interface {
	Write(p *models.Product) error
	Close() error
}
