package utils

// Ptr returns a pointer to v. It avoids the need for a temporary variable
// when the address of a literal or computed value is required.
//
// Example:
//
//	temperature := utils.Ptr(0.7)
func Ptr[T any](v T) *T {
	return &v
}
