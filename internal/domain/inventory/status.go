package inventory

// Stock statuses derived from quantity.
const (
	StatusAvailable  = "available"
	StatusOutOfStock = "out of stock"
)

// DeriveStatus maps a quantity to its availability status. Stored status is
// never trusted on its own; callers recompute it on every read and after
// every quantity-changing write.
func DeriveStatus(quantity int) string {
	if quantity == 0 {
		return StatusOutOfStock
	}
	return StatusAvailable
}
