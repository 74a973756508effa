package domain

// Product carries the catalog fields a cart item is built from. The cart
// context keeps its own copy of the type so it stays decoupled from the
// catalog context; the shapes match on purpose.
type Product struct {
	Image    string `json:"image"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Subtitle string `json:"subtitle"`
}

// Item is a cart line. ID is minted at first insertion and stays stable for
// the item's lifetime; Quantity is always at least 1 while the item exists.
type Item struct {
	Product
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}
