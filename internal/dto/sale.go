package dto

type PurchaseRequest struct {
	MemberID   int64   `json:"memberId" validate:"required,gt=0"`
	ProductIDs []int64 `json:"productIds" validate:"required,min=1,dive,gt=0"`
}

// PurchaseResponse returns fresh authoritative snapshots of both collections,
// not deltas; the point-of-sale client replaces its local state with them.
type PurchaseResponse struct {
	Members  []MemberDTO  `json:"members"`
	Products []ProductDTO `json:"products"`
}

type MemberDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ProductDTO struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Barcode *string `json:"barcode"`
	Price   int     `json:"price"`
	Stock   int     `json:"stock"`
}
