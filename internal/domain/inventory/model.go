package inventory

import (
	"time"

	"github.com/google/uuid"
)

// Medicine maps to the medicines table. Each row is one stock-keeping batch;
// several batches may share a med_code and are grouped for display.
type Medicine struct {
	ID          uuid.UUID `db:"id" json:"id"`
	MedCode     string    `db:"med_code" json:"med_code"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	MedType     *string   `db:"med_type" json:"med_type,omitempty"`
	Category    *string   `db:"category" json:"category,omitempty"`
	Supplier    *string   `db:"supplier" json:"supplier,omitempty"`
	Quantity    int       `db:"quantity" json:"quantity"`
	ExpiryDate  time.Time `db:"expiry_date" json:"expiry_date"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Expired reports whether the batch is past its expiry date.
func (m *Medicine) Expired(now time.Time) bool {
	return m.ExpiryDate.Before(now)
}

// Release maps to the medicine_releases table. Rows are append-only audit
// entries and are never updated or deleted.
type Release struct {
	ID             uuid.UUID `db:"id" json:"id"`
	MedicineID     uuid.UUID `db:"medicine_id" json:"medicine_id"`
	MedCode        string    `db:"med_code" json:"med_code"`
	Name           string    `db:"name" json:"name"`
	Amount         int       `db:"amount" json:"amount"`
	QuantityBefore int       `db:"quantity_before" json:"quantity_before"`
	QuantityAfter  int       `db:"quantity_after" json:"quantity_after"`
	Barangay       string    `db:"barangay" json:"barangay"`
	ReleasedBy     string    `db:"released_by" json:"released_by"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// ReleaseRequest is the payload for releasing stock from a batch.
type ReleaseRequest struct {
	Amount   int    `json:"amount"`
	Barangay string `json:"barangay"`
}

// RestockRequest is the payload for adding stock to a batch.
type RestockRequest struct {
	Amount int `json:"amount"`
}
