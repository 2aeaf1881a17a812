package dto

type Suggestion struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Barcode        string  `json:"barcode"`
	Price          int     `json:"price"`
	Stock          int     `json:"stock"`
	Sold7d         int     `json:"sold_7d"`
	SoldWindow     int     `json:"sold_nd"`
	WindowDays     int     `json:"window_days"`
	VelocityPerDay float64 `json:"velocity_per_day"`
	DaysOfSupply   float64 `json:"days_of_supply"`
	LastSoldAt     string  `json:"last_sold_at"`
	SuggestedQty   int     `json:"suggested_qty"`
	Reason         string  `json:"reason"`
}

type SuggestionMeta struct {
	Days       int `json:"days"`
	TargetDays int `json:"targetDays"`
	SafetyDays int `json:"safetyDays"`
	MinSold    int `json:"minSold"`
	Limit      int `json:"limit"`
}

type SuggestionsResponse struct {
	Suggestions []Suggestion   `json:"suggestions"`
	Meta        SuggestionMeta `json:"meta"`
}
