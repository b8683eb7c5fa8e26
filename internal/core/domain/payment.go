package domain

import "time"

// PaymentMethod is how a payment is settled. The actual charging happens in
// an external processor; this core only stores the reference record.
type PaymentMethod string

const (
	MethodCard         PaymentMethod = "card"
	MethodPaypal       PaymentMethod = "paypal"
	MethodStripe       PaymentMethod = "stripe"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodInApp        PaymentMethod = "inapp"
)

// PaymentStatus is the settlement state reported by the external processor.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment records a charge belonging to one account. Payments are private to
// their owner.
type Payment struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Amount      float64       `json:"amount" bson:"amount"`
	Currency    string        `json:"currency" bson:"currency"`
	Method      PaymentMethod `json:"method" bson:"method"`
	Status      PaymentStatus `json:"status" bson:"status"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	Ownership   `bson:",inline"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
