package domain

// Product is a catalog entry. The catalog is supplied once at startup and
// never mutated; Name doubles as the merge key for cart items.
type Product struct {
	Image    string `json:"image" yaml:"image"`
	Name     string `json:"name" yaml:"name"`
	Price    string `json:"price" yaml:"price"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
}
