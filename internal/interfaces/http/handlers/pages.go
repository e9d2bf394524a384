// internal/interfaces/http/handlers/pages.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the static informational pages. Content is fixed copy;
// there is nothing dynamic beyond the shared layout.
type PageHandler struct{}

// NewPageHandler creates a new static page handler
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Section is one heading/body block on a static page
type Section struct {
	Heading string
	Body    string
}

// StaticPage is the content of one informational page
type StaticPage struct {
	Title    string
	Intro    string
	Sections []Section
}

var staticPages = map[string]StaticPage{
	"about": {
		Title: "About Us",
		Intro: "We are an online store dedicated to bringing quality products to your doorstep.",
		Sections: []Section{
			{"Our Story", "Founded with a simple idea: shopping online should be easy, fast, and reliable. We partner with trusted suppliers to offer a curated catalog at fair prices."},
			{"Our Mission", "Deliver a great product selection with honest pricing, clear policies, and responsive support."},
		},
	},
	"careers": {
		Title: "Careers",
		Intro: "Join a small team that cares about the details.",
		Sections: []Section{
			{"Open Roles", "We are always interested in hearing from engineers, designers, and support specialists. Send your resume to careers@example.com."},
			{"How We Work", "Remote-friendly, customer-focused, and pragmatic. We ship small improvements every week."},
		},
	},
	"shipping": {
		Title: "Shipping Information",
		Intro: "Orders are processed within one business day.",
		Sections: []Section{
			{"Delivery Times", "Standard shipping takes 3-5 business days. Expedited options are available at checkout."},
			{"Tracking", "You will receive a tracking number by email as soon as your order ships."},
			{"International", "We currently ship within the United States only."},
		},
	},
	"returns": {
		Title: "Returns & Refunds",
		Intro: "Not happy with your purchase? We make returns simple.",
		Sections: []Section{
			{"30-Day Returns", "Items can be returned within 30 days of delivery in their original condition."},
			{"Refunds", "Refunds are issued to the original payment method within 5 business days of receiving the return."},
			{"How to Start a Return", "Visit your order history, select the order, and follow the return instructions, or contact support."},
		},
	},
	"terms": {
		Title: "Terms of Service",
		Intro: "These terms govern your use of this store.",
		Sections: []Section{
			{"Accounts", "You are responsible for maintaining the confidentiality of your account credentials."},
			{"Orders", "All orders are subject to availability and confirmation of the order price."},
			{"Liability", "Products are provided as described; our liability is limited to the purchase price of the items ordered."},
		},
	},
	"privacy": {
		Title: "Privacy Policy",
		Intro: "We collect only what we need to fulfill your orders.",
		Sections: []Section{
			{"What We Collect", "Account details, order history, and the information you provide at checkout."},
			{"What We Don't Do", "We never sell your personal data to third parties."},
			{"Cookies", "A session cookie keeps you signed in; no cross-site tracking cookies are used."},
		},
	},
	"help": {
		Title: "Help Center",
		Intro: "Answers to the most common questions.",
		Sections: []Section{
			{"Where is my order?", "Check your order history for status and tracking details."},
			{"Can I change my order?", "Orders can be modified until they enter processing. Contact support as soon as possible."},
			{"Payment issues", "If a payment fails, no order is created and your cart is preserved."},
		},
	},
	"contact": {
		Title: "Contact Us",
		Intro: "We usually reply within one business day.",
		Sections: []Section{
			{"Email", "support@example.com"},
			{"Phone", "Mon-Fri, 9am-5pm ET: +1 (555) 010-0199"},
			{"Mail", "123 Commerce Street, Suite 400, Springfield, USA"},
		},
	},
}

// Static renders the informational page for the given slug
func (h *PageHandler) Static(slug string) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := staticPages[slug]
		if !ok {
			c.HTML(http.StatusNotFound, "not_found.tmpl", pageData(c, "Not Found", nil))
			return
		}

		c.HTML(http.StatusOK, "static.tmpl", pageData(c, page.Title, gin.H{
			"Page": page,
		}))
	}
}

// NotFound renders the storefront 404 page
func (h *PageHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.tmpl", pageData(c, "Not Found", nil))
}
