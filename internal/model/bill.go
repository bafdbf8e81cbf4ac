package model

// ParsedBill is the input contract for one audit run. It is produced by an
// upstream OCR/field-parsing collaborator; the engine never reads documents
// itself. Optional numeric fields are pointers so that "absent" and "zero"
// stay distinguishable.
type ParsedBill struct {
	TotalAmount           *float64 `json:"total_amount,omitempty"`
	Subtotal              *float64 `json:"subtotal,omitempty"`
	TaxAmount             *float64 `json:"tax_amount,omitempty"`
	TaxRate               *float64 `json:"tax_rate,omitempty"`
	Discount              *float64 `json:"discount,omitempty"`
	InsurancePaid         *float64 `json:"insurance_paid,omitempty"`
	PatientResponsibility *float64 `json:"patient_responsibility,omitempty"`

	LineItems []LineItem `json:"line_items"`

	InvoiceNumber string `json:"invoice_number,omitempty"`
	PatientName   string `json:"patient_name,omitempty"`
	BillDate      string `json:"bill_date,omitempty"`

	// Region hints
	Region       string `json:"region,omitempty"`   // "US", "IN", "India", "USA"
	Currency     string `json:"currency,omitempty"` // "USD", "INR"
	HospitalName string `json:"hospital_name,omitempty"`
	HospitalType string `json:"hospital_type,omitempty"` // "government", "private", "corporate", ...
	City         string `json:"city,omitempty"`
}

// LineItem is a single charge line. Items have no identity beyond their
// position in the bill; duplicate detection keys on (code, normalized
// description).
type LineItem struct {
	Code        string   `json:"code,omitempty"` // CPT/HCPCS for US bills, usually absent for India
	Description string   `json:"description"`
	Quantity    *float64 `json:"quantity,omitempty"`
	UnitPrice   *float64 `json:"unit_price,omitempty"`
	Total       float64  `json:"total"`
}

// Qty returns the stated quantity, defaulting to 1 when absent.
func (li *LineItem) Qty() float64 {
	if li.Quantity == nil {
		return 1
	}
	return *li.Quantity
}
