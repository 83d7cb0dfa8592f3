// Package branding holds the product names shown to browsers.
package branding

const (
	// AppName is the customer-facing product name.
	AppName = "Sanjay Consultancy"
	// Tagline follows the name in the navigation bar.
	Tagline = "Passport & Visa Solutions"
	// Mark is the short monogram used as the logo.
	Mark = "SC"
)
