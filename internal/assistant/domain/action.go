package domain

// TypeCartAdd is the only action variant the storefront acts on today.
// Unknown variants are accepted and ignored so the agent can grow new ones
// without breaking this side.
const TypeCartAdd = "cart.add"

// Action is a typed instruction emitted by the conversational agent.
// SelectedProductID is either the string form of a zero-based catalog index
// or a product name.
type Action struct {
	Type              string `json:"type"`
	SelectedProductID string `json:"selectedProductId,omitempty"`
}
