// Package pdfsource reads positioned text out of PDF files. It exposes each
// page as a set of word tokens with their coordinates, which is what the
// balance extractor consumes, plus the page's plain text for header parsing.
package pdfsource

import (
	"sort"
	"strings"

	"fjacquet/balance-rli/internal/logging"
	"fjacquet/balance-rli/internal/models"
	"fjacquet/balance-rli/internal/parsererror"

	"github.com/ledongthuc/pdf"
)

const (
	// rowTolerance groups characters whose Y differs by less than this into
	// the same visual row during word assembly.
	rowTolerance = 2.0
	// wordGapFactor times the font size is the horizontal gap that separates
	// two words on the same row.
	wordGapFactor = 0.3
	// fallbackWordGap applies when a fragment carries no font size.
	fallbackWordGap = 3.0

	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// FileSource reads pages from a PDF file on disk.
type FileSource struct {
	path   string
	logger logging.Logger
}

// NewFileSource creates a source for the PDF at path.
func NewFileSource(path string, logger logging.Logger) *FileSource {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &FileSource{path: path, logger: logger}
}

// Pages opens the file and returns every page's tokens and text. The token
// vertical coordinate is measured from the top of the page, so rows read
// top to bottom in increasing order.
func (s *FileSource) Pages() ([]models.Page, error) {
	f, r, err := pdf.Open(s.path)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       s.path,
			ExpectedFormat: "PDF",
			Msg:            err.Error(),
		}
	}
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close PDF file",
				logging.Field{Key: logging.FieldFile, Value: s.path})
		}
	}()

	total := r.NumPage()
	pages := make([]models.Page, 0, total)
	for num := 1; num <= total; num++ {
		p := r.Page(num)
		if p.V.IsNull() {
			continue
		}

		width, height := mediaBox(p)
		content := p.Content()
		tokens := assembleTokens(content.Text, width, height)

		pages = append(pages, models.Page{
			Width:  width,
			Tokens: tokens,
			Text:   pageText(tokens),
		})
		s.logger.Debug("Read PDF page",
			logging.Field{Key: logging.FieldPage, Value: num},
			logging.Field{Key: logging.FieldCount, Value: len(tokens)})
	}
	return pages, nil
}

// mediaBox resolves the page dimensions, walking up to the page tree when
// the box is inherited. Missing boxes fall back to US Letter.
func mediaBox(p pdf.Page) (width, height float64) {
	v := p.V
	for !v.IsNull() {
		box := v.Key("MediaBox")
		if !box.IsNull() && box.Len() == 4 {
			w := box.Index(2).Float64() - box.Index(0).Float64()
			h := box.Index(3).Float64() - box.Index(1).Float64()
			if w > 0 && h > 0 {
				return w, h
			}
		}
		v = v.Key("Parent")
	}
	return defaultPageWidth, defaultPageHeight
}

// assembleTokens merges the page's character fragments into word tokens.
// Fragments are bucketed into rows by Y, sorted left to right, then joined
// while the horizontal gap stays below the word threshold. PDF Y grows
// upward; tokens carry the top-down distance instead.
func assembleTokens(texts []pdf.Text, pageWidth, pageHeight float64) []models.PositionedToken {
	var tokens []models.PositionedToken
	for _, row := range groupRows(texts) {
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
		row = trimEmpty(row)
		if len(row) == 0 {
			continue
		}
		// All tokens of a row share one top coordinate so downstream row
		// bucketing sees them as a single line.
		rowTop := pageHeight - row[0].Y

		var cur *models.PositionedToken
		for _, t := range row {
			threshold := wordGapFactor * t.FontSize
			if threshold <= 0 {
				threshold = fallbackWordGap
			}
			if cur != nil && t.X-cur.X1 <= threshold {
				cur.Text += t.S
				cur.X1 = t.X + t.W
				continue
			}
			if cur != nil {
				tokens = append(tokens, *cur)
			}
			cur = &models.PositionedToken{
				Text:      t.S,
				X0:        t.X,
				X1:        t.X + t.W,
				Top:       rowTop,
				PageWidth: pageWidth,
			}
		}
		if cur != nil {
			tokens = append(tokens, *cur)
		}
	}
	return tokens
}

func trimEmpty(row []pdf.Text) []pdf.Text {
	out := make([]pdf.Text, 0, len(row))
	for _, t := range row {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}

// groupRows buckets fragments by Y, highest first so rows come out in
// reading order.
func groupRows(texts []pdf.Text) [][]pdf.Text {
	type bucket struct {
		y     float64
		texts []pdf.Text
	}
	var buckets []bucket
	for _, t := range texts {
		placed := false
		for i := range buckets {
			if t.Y >= buckets[i].y-rowTolerance && t.Y <= buckets[i].y+rowTolerance {
				buckets[i].texts = append(buckets[i].texts, t)
				placed = true
				break
			}
		}
		if !placed {
			buckets = append(buckets, bucket{y: t.Y, texts: []pdf.Text{t}})
		}
	}
	sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].y > buckets[j].y })

	rows := make([][]pdf.Text, len(buckets))
	for i, b := range buckets {
		rows[i] = b.texts
	}
	return rows
}

// pageText renders the assembled tokens as plain text, one visual row per
// line, for the header parser.
func pageText(tokens []models.PositionedToken) string {
	if len(tokens) == 0 {
		return ""
	}

	var sb strings.Builder
	lastTop := tokens[0].Top
	for i, tok := range tokens {
		if i > 0 {
			if tok.Top-lastTop > rowTolerance {
				sb.WriteString("\n")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(tok.Text)
		lastTop = tok.Top
	}
	return sb.String()
}
