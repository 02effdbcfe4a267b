package blog

import (
	"sort"
	"strings"
	"time"

	"eyewear-store/internal/models"
)

// Blog contiene los artículos estáticos, del más reciente al más antiguo
type Blog struct {
	posts []models.BlogPost
}

func New(posts []models.BlogPost) *Blog {
	sorted := append([]models.BlogPost(nil), posts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
	})
	return &Blog{posts: sorted}
}

func Default() *Blog {
	return New(seedPosts())
}

// List retorna los artículos sin cuerpo; tag vacío = todos
func (b *Blog) List(tag string) []models.BlogPost {
	out := make([]models.BlogPost, 0, len(b.posts))
	for _, p := range b.posts {
		if tag != "" && !hasTag(p, tag) {
			continue
		}
		p.Body = ""
		out = append(out, p)
	}
	return out
}

func (b *Blog) BySlug(slug string) (models.BlogPost, bool) {
	for _, p := range b.posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.BlogPost{}, false
}

// Search busca en título y resumen
func (b *Blog) Search(q string) []models.BlogPost {
	return b.Find("", q)
}

// Find combina el filtro por tag con la búsqueda; ambos vacíos = List("")
func (b *Blog) Find(tag, q string) []models.BlogPost {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]models.BlogPost, 0)
	for _, p := range b.List(tag) {
		if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Excerpt), q) {
			out = append(out, p)
		}
	}
	return out
}

// Tags retorna las etiquetas usadas, ordenadas
func (b *Blog) Tags() []string {
	seen := map[string]bool{}
	out := make([]string, 0)
	for _, p := range b.posts {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	sort.Strings(out)
	return out
}

func hasTag(p models.BlogPost, tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func seedPosts() []models.BlogPost {
	return []models.BlogPost{
		{
			Slug:        "choosing-frames-for-your-face-shape",
			Title:       "Choosing Frames for Your Face Shape",
			Excerpt:     "Round, square or oval: a quick guide to the frames that suit you best.",
			Body:        "Start with your face shape. Round faces pair well with angular rectangle frames, square faces soften with round or oval frames, and oval faces can wear almost anything. When in doubt, pick a frame slightly wider than the widest part of your face.",
			Author:      "Manshu Opticals",
			PublishedAt: time.Date(2025, time.May, 4, 0, 0, 0, 0, time.UTC),
			Tags:        []string{"guide", "frames"},
			CoverImage:  "/images/blog/face-shapes.jpg",
		},
		{
			Slug:        "blue-light-glasses-do-they-work",
			Title:       "Blue Light Glasses: Do They Work?",
			Excerpt:     "What blue-light filtering lenses can and cannot do for screen fatigue.",
			Body:        "Blue-light filtering lenses reduce glare and can make long screen sessions more comfortable. They are not a substitute for regular breaks: follow the 20-20-20 rule and get your eyes tested every year.",
			Author:      "Manshu Opticals",
			PublishedAt: time.Date(2025, time.July, 19, 0, 0, 0, 0, time.UTC),
			Tags:        []string{"lenses", "health"},
			CoverImage:  "/images/blog/blue-light.jpg",
		},
		{
			Slug:        "why-polarized-sunglasses",
			Title:       "Why Polarized Sunglasses Are Worth It",
			Excerpt:     "Polarized lenses cut reflected glare from roads, water and glass.",
			Body:        "Polarized lenses block horizontally reflected light, which is what makes water and wet roads so blinding. Combine polarization with UV400 protection for everyday driving and beach days.",
			Author:      "Manshu Opticals",
			PublishedAt: time.Date(2025, time.August, 28, 0, 0, 0, 0, time.UTC),
			Tags:        []string{"sunglasses", "lenses"},
			CoverImage:  "/images/blog/polarized.jpg",
		},
	}
}
