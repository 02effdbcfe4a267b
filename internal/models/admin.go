package models

import "time"

// AdminSession es la marca de sesión del panel de administración
type AdminSession struct {
	Authenticated bool      `json:"authenticated"`
	Timestamp     time.Time `json:"timestamp"`
}

type Customer struct {
	ID         string    `json:"id" csv:"id"`
	Name       string    `json:"name" csv:"name" binding:"required"`
	Email      string    `json:"email" csv:"email" binding:"omitempty,email"`
	Phone      string    `json:"phone" csv:"phone"`
	City       string    `json:"city" csv:"city"`
	Orders     int       `json:"orders" csv:"orders" binding:"gte=0"`
	TotalSpent int       `json:"total_spent" csv:"total_spent" binding:"gte=0"`
	JoinedAt   time.Time `json:"joined_at" csv:"joined_at"`
}

func (c Customer) RecordID() string       { return c.ID }
func (c Customer) SearchFields() []string { return []string{c.Name, c.Email, c.Phone} }

// CustomerUpdate representa los campos actualizables de un cliente
type CustomerUpdate struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone      *string `json:"phone,omitempty"`
	City       *string `json:"city,omitempty"`
	Orders     *int    `json:"orders,omitempty" binding:"omitempty,gte=0"`
	TotalSpent *int    `json:"total_spent,omitempty" binding:"omitempty,gte=0"`
}

// Apply copia sobre c los campos presentes en u
func (u CustomerUpdate) Apply(c *Customer) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
	if u.City != nil {
		c.City = *u.City
	}
	if u.Orders != nil {
		c.Orders = *u.Orders
	}
	if u.TotalSpent != nil {
		c.TotalSpent = *u.TotalSpent
	}
}

type Review struct {
	ID       string    `json:"id"`
	Product  string    `json:"product"`
	Customer string    `json:"customer"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
	Date     time.Time `json:"date"`
	Approved bool      `json:"approved"`
}

func (r Review) RecordID() string       { return r.ID }
func (r Review) SearchFields() []string { return []string{r.Product, r.Customer, r.Comment} }

type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name" binding:"required"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	ProductCount int    `json:"product_count" binding:"gte=0"`
}

func (c Category) RecordID() string       { return c.ID }
func (c Category) SearchFields() []string { return []string{c.Name, c.Slug} }

// MediaItem es un archivo de la biblioteca de medios. Las carpetas se
// simulan con un item marcador (IsFolder).
type MediaItem struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	Folder     string    `json:"folder"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
	IsFolder   bool      `json:"is_folder,omitempty"`
}

func (m MediaItem) RecordID() string       { return m.ID }
func (m MediaItem) SearchFields() []string { return []string{m.Name, m.Folder} }

type SocialLinks struct {
	Instagram string `json:"instagram,omitempty" binding:"omitempty,url"`
	Facebook  string `json:"facebook,omitempty" binding:"omitempty,url"`
	YouTube   string `json:"youtube,omitempty" binding:"omitempty,url"`
}

// Settings son los ajustes generales de la tienda
type Settings struct {
	StoreName         string      `json:"store_name" binding:"required"`
	Tagline           string      `json:"tagline"`
	ContactEmail      string      `json:"contact_email" binding:"omitempty,email"`
	ContactPhone      string      `json:"contact_phone"`
	WhatsAppNumber    string      `json:"whatsapp_number" binding:"required"`
	Address           string      `json:"address"`
	Currency          string      `json:"currency" binding:"required"`
	FreeShippingAbove int         `json:"free_shipping_above" binding:"gte=0"`
	ShippingFee       int         `json:"shipping_fee" binding:"gte=0"`
	Social            SocialLinks `json:"social"`
	Maintenance       bool        `json:"maintenance"`
}
