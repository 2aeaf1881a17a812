package domain

// SaleEvent records one unit sold to one member. Member and product names are
// snapshots taken at sale time so later edits to those records do not rewrite
// history. Rows are append-only; nothing in the core mutates them.
type SaleEvent struct {
	ID          int64
	MemberID    int64
	MemberName  string
	ProductID   int64
	ProductName string
	Timestamp   string
}
