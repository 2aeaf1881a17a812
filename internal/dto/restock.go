package dto

type ImportRequest struct {
	Text string `json:"text"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
}

// RestockItem is the order-text parser's output contract: one structured line
// item per physical product line in the raw order text.
type RestockItem struct {
	Barcode     string
	ProductName string
	Price       int
	UnitPrice   int
	Quantity    int
	Subtotal    int
}

// RestockEntryRequest carries a manual restock-history row. ProductID may be
// zero, in which case the service resolves one via barcode or creates a new
// product. Price is a pointer because an absent price must leave the ledger's
// price column untouched.
type RestockEntryRequest struct {
	ProductID   int64  `json:"product_id" validate:"gte=0"`
	ProductName string `json:"product_name"`
	Barcode     string `json:"barcode"`
	UnitPrice   *int   `json:"unit_price"`
	Price       *int   `json:"price"`
	Quantity    int    `json:"quantity"`
	Subtotal    *int   `json:"subtotal"`
	Timestamp   string `json:"timestamp"`
}

type RestockEntryResponse struct {
	ID int64 `json:"id"`
}

type RestockEventDTO struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Barcode     string `json:"barcode"`
	UnitPrice   int    `json:"unit_price"`
	Price       int    `json:"price"`
	Quantity    int    `json:"quantity"`
	Subtotal    int    `json:"subtotal"`
	Timestamp   string `json:"timestamp"`
}
