package domain

// Product is the ledger side of the system: its Stock and Price columns are
// mutated only through the stock ledger (repository.AdjustStock and the sale
// decrement path). Barcode is optional but unique when present.
type Product struct {
	ID      int64
	Name    string
	Barcode *string
	Price   int
	Stock   int
}

func (p Product) OutOfStock() bool {
	return p.Stock <= 0
}
