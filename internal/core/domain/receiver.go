package domain

// Receiver is a destination a country quotes shipments to. Its zone selects
// which rate rows apply.
type Receiver struct {
	ReceiverID string `json:"receiverID"`           // Primary Key (UUID)
	CountryID  string `json:"countryID"`            // FK -> Country.countryID (Not Null)
	Name       string `json:"name"`                 // Display name, used for the receiver_country placeholder
	Zone       string `json:"zone"`                 // Rate-table zone code
	TransitDay *int   `json:"transitDay,omitempty"` // Optional transit-day count for placeholders
	AuditFields
}
