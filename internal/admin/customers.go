package admin

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"

	"eyewear-store/internal/kvstore"
	"eyewear-store/internal/models"
)

type Customers struct {
	*Table[models.Customer]
	now func() time.Time
}

func NewCustomers(store *kvstore.Store) *Customers {
	return &Customers{
		Table: NewTable(store, KeyCustomers, seedCustomers),
		now:   time.Now,
	}
}

// Create asigna id y fecha de alta antes de insertar
func (c *Customers) Create(ctx context.Context, customer models.Customer) models.Customer {
	customer.ID = uuid.NewString()
	customer.Name = strings.TrimSpace(customer.Name)
	if customer.JoinedAt.IsZero() {
		customer.JoinedAt = c.now()
	}
	c.Insert(ctx, customer)
	return customer
}

func (c *Customers) Patch(ctx context.Context, id string, update models.CustomerUpdate) (models.Customer, bool) {
	return c.Update(ctx, id, func(customer *models.Customer) { update.Apply(customer) })
}

// ExportCSV escribe los clientes que coinciden con q en formato CSV
func (c *Customers) ExportCSV(ctx context.Context, q string, w io.Writer) error {
	customers := c.Search(ctx, q)
	if err := gocsv.Marshal(&customers, w); err != nil {
		return fmt.Errorf("export customers: %w", err)
	}
	return nil
}
