package dto

type SettlementRow struct {
	MemberID   int64  `json:"member_id"`
	MemberName string `json:"member_name"`
	Settlement int    `json:"settlement"`
}

type InvoiceSummaryResponse struct {
	Rows []SettlementRow `json:"rows"`
}
