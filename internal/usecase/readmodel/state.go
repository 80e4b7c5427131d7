package readmodel

type CartSummaryRM struct {
	ItemCount int      `json:"item_count"`
	Products  []string `json:"products"`
}

type StoreRM struct {
	Cart     CartSummaryRM `json:"cart"`
	Wishlist []string      `json:"wishlist"`
	Notices  []string      `json:"notices"`
}
