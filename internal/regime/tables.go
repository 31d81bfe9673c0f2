package regime

import (
	"fmt"
	"os"

	"fjacquet/balance-rli/internal/parsererror"

	"gopkg.in/yaml.v3"
)

// LineDef declares one worksheet account line: the code to look up in the
// ledger, a display name used when the ledger has none, the sign the line
// contributes with and the F22 form code it reports under.
type LineDef struct {
	Code     string `yaml:"code"`
	Name     string `yaml:"name"`
	Sign     string `yaml:"sign"`
	FormCode string `yaml:"f22"`
}

// AccountTables holds the account lines of the three worksheet sections and
// the remuneration sub-group, whose lines report jointly under one form
// code.
type AccountTables struct {
	Income            []LineDef `yaml:"income"`
	Expenses          []LineDef `yaml:"expenses"`
	Disallowed        []LineDef `yaml:"disallowed"`
	RemunerationCodes []string  `yaml:"remuneration_codes"`
}

// DefaultTables returns the built-in 14 D N°3 account tables.
func DefaultTables() AccountTables {
	return AccountTables{
		Income: []LineDef{
			{Code: "300101", Name: "Ingresos Del Giro Percibido", Sign: "+", FormCode: "1600"},
			{Code: "311102", Name: "Reajuste", Sign: "+", FormCode: "1588"},
		},
		Expenses: []LineDef{
			{Code: "400101", Name: "Compras netas existencias", Sign: "+", FormCode: "1409"},
			{Code: "410101", Name: "Remuneraciones imponibles", Sign: "+"},
			{Code: "410102", Name: "Leyes sociales", Sign: "+"},
			{Code: "410110", Name: "Remuneraciones no imponibles", Sign: "+"},
			{Code: "410111", Name: "Finiquitos", Sign: "+"},
			{Code: "410106", Name: "Honorarios", Sign: "+", FormCode: "1412"},
			{Code: "410105", Name: "Arriendos", Sign: "+", FormCode: "1415"},
			{Code: "430101", Name: "Impuesto de Primera Categoría", Sign: "+", FormCode: "1422"},
			{Code: "430102", Name: "Multas e Intereses", Sign: "+", FormCode: "1422"},
		},
		Disallowed: []LineDef{
			{Code: "430101", Name: "Impuesto de Primera Categoría", Sign: "+", FormCode: "1431"},
			{Code: "430102", Name: "Multas e Intereses", Sign: "+", FormCode: "1431"},
		},
		RemunerationCodes: []string{"410101", "410102", "410110", "410111"},
	}
}

// LoadTables reads account tables from a YAML file. Sections left empty in
// the file fall back to the built-in defaults, so a file may override only
// the section it cares about.
func LoadTables(path string) (AccountTables, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- table path comes from the user's own config
	if err != nil {
		return AccountTables{}, fmt.Errorf("error reading account tables: %w", err)
	}

	var tables AccountTables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return AccountTables{}, &parsererror.ParseError{
			Stage: "account tables",
			Field: "yaml",
			Value: path,
			Err:   err,
		}
	}

	defaults := DefaultTables()
	if len(tables.Income) == 0 {
		tables.Income = defaults.Income
	}
	if len(tables.Expenses) == 0 {
		tables.Expenses = defaults.Expenses
	}
	if len(tables.Disallowed) == 0 {
		tables.Disallowed = defaults.Disallowed
	}
	if len(tables.RemunerationCodes) == 0 {
		tables.RemunerationCodes = defaults.RemunerationCodes
	}
	return tables, nil
}
