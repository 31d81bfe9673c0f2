package models

// CompanyInfo holds the company metadata parsed from the first page of the
// balance. All fields are best-effort: a field the header parser could not
// locate stays empty.
type CompanyInfo struct {
	LegalName        string
	TaxID            string
	BusinessActivity string
	Address          string
	Commune          string
	Period           string
}

// IsEmpty reports whether nothing at all was extracted.
func (c CompanyInfo) IsEmpty() bool {
	return c == CompanyInfo{}
}
