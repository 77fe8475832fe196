package ratessaver

import "github.com/shopspring/decimal"

type (
	// Snapshot is one dated set of currency-to-rate mappings returned by the
	// pricing service. A nil rate means the service published no value for
	// that code on that day.
	Snapshot struct {
		Date  string                      `json:"date"`
		Rates map[string]*decimal.Decimal `json:"rates"`
	}

	// WriteLine is one formatted output line bound to the currency whose
	// file it belongs in.
	WriteLine struct {
		Currency string
		Line     string
	}
)
