package balance

import (
	"fjacquet/balance-rli/internal/company"
	"fjacquet/balance-rli/internal/logging"
	"fjacquet/balance-rli/internal/models"
)

// Source supplies the positioned-text pages of one document. The production
// implementation lives in pdfsource; tests use a canned source.
type Source interface {
	Pages() ([]models.Page, error)
}

// Extractor runs the full extraction pipeline over a positioned-text source
// and produces the account ledger and company metadata.
type Extractor struct {
	logger  logging.Logger
	rowBand float64
}

// NewExtractor creates an extractor. A nil logger falls back to the default;
// a non-positive rowBand falls back to 3 page units.
func NewExtractor(logger logging.Logger, rowBand float64) *Extractor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if rowBand <= 0 {
		rowBand = 3
	}
	return &Extractor{logger: logger, rowBand: rowBand}
}

// Extract reads every page from the source, accumulates account values
// across pages and parses company metadata from the first page's raw text.
// A document with no extractable tokens yields an empty ledger and empty
// company info; that is a valid, if uninformative, outcome rather than an
// error. Column positions are re-inferred per page since header tokens may
// or may not survive page breaks.
func (e *Extractor) Extract(src Source) (*models.AccountLedger, models.CompanyInfo, error) {
	ledger := models.NewAccountLedger()

	pages, err := src.Pages()
	if err != nil {
		return ledger, models.CompanyInfo{}, err
	}

	var info models.CompanyInfo
	if len(pages) > 0 {
		info = company.Parse(pages[0].Text)
	}

	for i, page := range pages {
		e.extractPage(i+1, page, ledger)
	}

	dropped := ledger.Prune()
	e.logger.Info("Extracted account ledger",
		logging.Field{Key: logging.FieldCount, Value: ledger.Len()},
		logging.Field{Key: "pages", Value: len(pages)},
		logging.Field{Key: "dropped", Value: dropped})

	return ledger, info, nil
}

func (e *Extractor) extractPage(pageNum int, page models.Page, ledger *models.AccountLedger) {
	if len(page.Tokens) == 0 {
		e.logger.Debug("Page has no tokens",
			logging.Field{Key: logging.FieldPage, Value: pageNum})
		return
	}

	spec, strategy := MapColumns(page.Tokens, page.Width)
	e.logger.Debug("Mapped page columns",
		logging.Field{Key: logging.FieldPage, Value: pageNum},
		logging.Field{Key: logging.FieldStrategy, Value: strategy})

	rows := IndexRows(page.Tokens, e.rowBand)
	accountRows := 0
	for _, row := range rows {
		classified, ok := ClassifyRow(row)
		if !ok {
			continue
		}
		accountRows++
		AssignValues(classified, spec, ledger)
	}

	e.logger.Debug("Processed page rows",
		logging.Field{Key: logging.FieldPage, Value: pageNum},
		logging.Field{Key: logging.FieldRow, Value: len(rows)},
		logging.Field{Key: logging.FieldCount, Value: accountRows})
}
