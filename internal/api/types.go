package api

// Wire types for the UaiFood backend. Field names follow the backend's
// JSON contract; prices travel as decimal strings.

type Category struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

type CategoryInput struct {
	Description string `json:"description"`
}

type Item struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	UnitPrice   string `json:"unitPrice"`
	CategoryID  string `json:"categoryId"`
}

type ItemInput struct {
	Description string `json:"description"`
	UnitPrice   string `json:"unitPrice"`
	CategoryID  string `json:"categoryId"`
}

type Address struct {
	ID       string `json:"id"`
	Street   string `json:"street"`
	Number   string `json:"number"`
	District string `json:"district"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
}

type AddressInput struct {
	Street   string `json:"street"`
	Number   string `json:"number"`
	District string `json:"district"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Type  string `json:"type"`
}

type RegisterInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Password     string `json:"password"`
	AcceptsTerms bool   `json:"acceptsTerms"`
}

type ProfileInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type PasswordInput struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// OrderDraft is the order-creation request. Items are sent in cart order.
type OrderDraft struct {
	AddressID     string           `json:"addressId"`
	PaymentMethod string           `json:"paymentMethod"`
	Items         []OrderDraftItem `json:"items"`
}

type OrderDraftItem struct {
	ItemID   string `json:"itemId"`
	Quantity int64  `json:"quantity"`
}

type Order struct {
	ID            string      `json:"id"`
	Status        string      `json:"status"`
	PaymentMethod string      `json:"paymentMethod"`
	CreatedAt     string      `json:"createdAt"`
	OrderItems    []OrderItem `json:"orderItems"`
}

type OrderItem struct {
	ID        string       `json:"id"`
	Quantity  int64        `json:"quantity"`
	UnitPrice string       `json:"unitPrice"`
	Item      OrderItemRef `json:"item"`
}

type OrderItemRef struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}
