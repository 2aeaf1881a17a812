package domain

// RestockEvent records stock added via import or manual entry. Unlike
// SaleEvent it can be edited or deleted by the admin surface, so every such
// edit must be mirrored back into Product.Stock by the restock service.
type RestockEvent struct {
	ID          int64
	ProductID   int64
	ProductName string
	Barcode     string
	UnitPrice   int
	Price       int
	Quantity    int
	Subtotal    int
	Timestamp   string
}
