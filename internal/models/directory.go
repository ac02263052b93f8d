// Package models holds the external directory entities referenced by the
// notification core but owned by other systems.
package models

// Contractor types.
const (
	ContractorTypeCustomer = "customer"
	ContractorTypeSupplier = "supplier"
)

// Reseller is the business entity on whose behalf notifications are sent.
type Reseller struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Contractor is the client associated with a complaint.
type Contractor struct {
	ID         int    `json:"id"`
	Type       string `json:"type"`
	ResellerID int    `json:"resellerId"`
	Name       string `json:"name"`     // short display name
	FullName   string `json:"fullName"` // preferred display name, may be empty
	Email      string `json:"email"`
	Mobile     string `json:"mobile"`
}

// DisplayName prefers the full name and falls back to the short name.
func (c *Contractor) DisplayName() string {
	if c.FullName != "" {
		return c.FullName
	}
	return c.Name
}

// Employee is an internal staff member named in notification templates.
type Employee struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}
