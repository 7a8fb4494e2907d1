package enum

// PaymentMethod represents how a sale was paid for.
// The "Gcash" casing is the value persisted by the existing data set
// and must not be normalized.
type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "cash"
	PaymentMethodGcash PaymentMethod = "Gcash"
)

func (m PaymentMethod) String() string {
	return string(m)
}

// Valid reports whether the payment method is accepted at checkout
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCash || m == PaymentMethodGcash
}
