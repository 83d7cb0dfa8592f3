package templates

type homeService struct {
	Icon, Title, Description string
}

type homeHighlight struct {
	Value, Label string
}

type homeStep struct {
	Title, Detail string
}

type homeTestimonial struct {
	Quote, Name, Role string
}

var homeContent = struct {
	Services     []homeService
	Highlights   []homeHighlight
	Steps        []homeStep
	Testimonials []homeTestimonial
}{
	Services: []homeService{
		{Icon: "🛂", Title: "Passport & Visa Documentation", Description: "End-to-end support for new passport applications, renewals, and visa interview preparation with document verification."},
		{Icon: "🌐", Title: "Global Travel Compliance", Description: "Stay compliant with country-specific regulations using our constantly updated advisory and checklist builder."},
		{Icon: "⚡", Title: "Fast-Track Processing", Description: "Priority handling for urgent travel needs with dedicated concierge support and real-time updates."},
	},
	Highlights: []homeHighlight{
		{Value: "12K+", Label: "Applications Processed"},
		{Value: "45+", Label: "Countries Covered"},
		{Value: "98%", Label: "Success Rate"},
		{Value: "48 hrs", Label: "Avg. Processing Time"},
	},
	Steps: []homeStep{
		{Title: "Submit Profile", Detail: "Complete the secure digital form with your personal and travel details in minutes."},
		{Title: "Document Review", Detail: "Our specialists validate every document to avoid embassy rejections or delays."},
		{Title: "Track Progress", Detail: "Receive proactive updates, schedule appointments, and download confirmations instantly."},
	},
	Testimonials: []homeTestimonial{
		{Quote: "“Sanjay Consultancy transformed our visa processing. Their dashboard keeps our team synchronized and compliant.”", Name: "Priya S.", Role: "Travel Manager, VoyageX"},
		{Quote: "“Renewing my passport during peak season was stress-free. The alerts and concierge support were spot on.”", Name: "Mohammed R.", Role: "Frequent Flyer"},
	},
}
