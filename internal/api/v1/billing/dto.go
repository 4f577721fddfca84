package billing

// CheckoutResponse carries the hosted checkout session for the frontend.
type CheckoutResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
