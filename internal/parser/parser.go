package parser

import (
	"github.com/lensware/framesdirect-scraper/internal/models"
)

type Parser interface {
	ParseProducts(html string) ([]models.ProductRecord, error)
}
