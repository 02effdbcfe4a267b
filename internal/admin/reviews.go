package admin

import (
	"context"
	"strings"

	"github.com/montanaflynn/stats"

	"eyewear-store/internal/kvstore"
	"eyewear-store/internal/models"
)

// Reviews no tiene alta desde la tienda; solo aprobar y borrar
type Reviews struct {
	*Table[models.Review]
}

func NewReviews(store *kvstore.Store) *Reviews {
	return &Reviews{Table: NewTable(store, KeyReviews, seedReviews)}
}

// ToggleApproval invierte la marca de aprobación
func (r *Reviews) ToggleApproval(ctx context.Context, id string) (models.Review, bool) {
	return r.Update(ctx, id, func(review *models.Review) { review.Approved = !review.Approved })
}

// Approved retorna las reseñas aprobadas; product vacío = todas
func (r *Reviews) Approved(ctx context.Context, product string) []models.Review {
	out := make([]models.Review, 0)
	for _, review := range r.Load(ctx) {
		if !review.Approved {
			continue
		}
		if product != "" && !strings.EqualFold(review.Product, product) {
			continue
		}
		out = append(out, review)
	}
	return out
}

// AverageRating es el promedio de las reseñas aprobadas (0 si no hay)
func (r *Reviews) AverageRating(ctx context.Context, product string) float64 {
	approved := r.Approved(ctx, product)
	ratings := make(stats.Float64Data, 0, len(approved))
	for _, review := range approved {
		ratings = append(ratings, float64(review.Rating))
	}
	mean, err := stats.Mean(ratings)
	if err != nil {
		return 0
	}
	rounded, _ := stats.Round(mean, 1)
	return rounded
}
