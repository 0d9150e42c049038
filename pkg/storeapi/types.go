package storeapi

import (
	"encoding/json"
	"time"
)

// Amounts travel as JSON numbers; json.Number keeps them exact until the
// caller parses them into a decimal.

type User struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Token     string `json:"token,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type UserInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role,omitempty"`
}

type UserPage struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}

type Product struct {
	ID          string      `json:"_id"`
	Name        string      `json:"productName"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
	ImageURL    string      `json:"imgUrl"`
}

type ProductInput struct {
	Name        string      `json:"productName"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
	ImageURL    string      `json:"imgUrl"`
}

type ProductList struct {
	Products []Product `json:"products"`
}

type ProductPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

type OrderItem struct {
	ProductID string      `json:"_id"`
	Name      string      `json:"productName"`
	Price     json.Number `json:"price"`
	Quantity  int         `json:"qty"`
	ImageURL  string      `json:"imgUrl,omitempty"`
}

type OrderInput struct {
	UserID     string      `json:"userId"`
	Email      string      `json:"email"`
	OrderValue json.Number `json:"orderValue"`
	Items      []OrderItem `json:"items"`
}

type Order struct {
	ID         string      `json:"_id"`
	UserID     string      `json:"userId"`
	Email      string      `json:"email"`
	OrderValue json.Number `json:"orderValue"`
	Items      []OrderItem `json:"items"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
}

type OrderPage struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
}

type StatusUpdate struct {
	Status string `json:"status"`
}

// PageQuery is the paging/filter triple shared by the admin list endpoints.
// Filter is sent as "search" for products and users and as "status" for
// orders.
type PageQuery struct {
	Page   int
	Limit  int
	Filter string
}
