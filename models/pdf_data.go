package models

// BOLPDFData is the payload handed to the bill of lading HTML template.
type BOLPDFData struct {
	Shipment      *Shipment
	GeneratedDate string
	Temperature   string
	DeclaredValue string
	CopyTitle     string
}
