package response_models

type Review struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Village  string `json:"village"`
	Rating   int    `json:"rating"`
	Review   string `json:"review"`
	Helpful  int    `json:"helpful"`
	Date     string `json:"date"`
}

type ReviewPage struct {
	Page     int      `json:"page"`
	PageSize int      `json:"pageSize"`
	Items    []Review `json:"items"`
}
