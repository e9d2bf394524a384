// internal/infrastructure/commerce/types.go
package commerce

import "time"

// Role values returned by the commerce API
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User represents the authenticated user record returned by the commerce API
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// FullName returns the user's display name
func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	return u.FirstName + " " + u.LastName
}

// Category represents a product category
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// Product represents a catalog product
type Product struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `json:"price"`
	ImageURL      string    `json:"image_url,omitempty"`
	StockQuantity int       `json:"stock_quantity"`
	CategoryID    *int      `json:"category_id,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	Category      *Category `json:"category,omitempty"`
}

// InStock reports whether the product can currently be ordered
func (p *Product) InStock() bool {
	return p.StockQuantity > 0
}

// ProductPage is a paginated product listing
type ProductPage struct {
	Items []Product `json:"items"`
	Total int       `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
	Pages int       `json:"pages"`
}

// ProductQuery holds the supported product listing filters
type ProductQuery struct {
	Search     string
	CategoryID int
	MinPrice   float64
	MaxPrice   float64
	Page       int
	Limit      int
}

// CartItem is a line item in the authenticated user's cart
type CartItem struct {
	ID        int     `json:"id"`
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
}

// OrderItem is a purchased line item within an order
type OrderItem struct {
	ID        int     `json:"id"`
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Product   Product `json:"product"`
}

// Order represents a placed order
type Order struct {
	ID              int         `json:"id"`
	TotalAmount     float64     `json:"total_amount"`
	Status          string      `json:"status"`
	PaymentStatus   string      `json:"payment_status"`
	ShippingAddress string      `json:"shipping_address"`
	BillingAddress  string      `json:"billing_address"`
	CreatedAt       time.Time   `json:"created_at"`
	OrderItems      []OrderItem `json:"order_items"`
}

// RegisterRequest is the payload for account registration
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UserUpdate carries the updatable profile fields; nil fields are omitted
type UserUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// OrderCreateItem is a line item within an order creation request
type OrderCreateItem struct {
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderCreate is the payload for checkout initiation
type OrderCreate struct {
	ShippingAddress string            `json:"shipping_address"`
	BillingAddress  string            `json:"billing_address"`
	OrderItems      []OrderCreateItem `json:"order_items"`
}

// ProductInput is the payload for admin product create/update
type ProductInput struct {
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Price         float64  `json:"price"`
	ImageURL      string   `json:"image_url,omitempty"`
	StockQuantity int      `json:"stock_quantity"`
	CategoryID    *int     `json:"category_id,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

// StatsGroup is a total/active pair within the analytics overview
type StatsGroup struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

// OrderStats summarizes order volume
type OrderStats struct {
	Total        int `json:"total"`
	Recent30Days int `json:"recent_30_days"`
}

// RevenueStats summarizes captured revenue
type RevenueStats struct {
	Total float64 `json:"total"`
}

// Overview is the admin analytics overview
type Overview struct {
	Users    StatsGroup   `json:"users"`
	Products StatsGroup   `json:"products"`
	Orders   OrderStats   `json:"orders"`
	Revenue  RevenueStats `json:"revenue"`
}
