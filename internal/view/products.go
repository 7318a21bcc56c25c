// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package view

import (
	"context"
	"net/url"

	"folio/internal/models"
	"folio/internal/reveal"
	"folio/internal/transform"
)

// Budget names used in partial URLs.
const (
	BudgetWide   = "wide"
	BudgetNarrow = "narrow"
)

// BudgetChars maps a budget name to its character count. Unknown names
// fall back to the wide budget.
func BudgetChars(name string) int {
	if name == BudgetNarrow {
		return transform.NarrowBudget
	}
	return transform.WideBudget
}

// DefaultProductImage replaces a missing product image.
const DefaultProductImage = "/static/img/product.svg"

// maxOtherTechs is how many technology badges an "other" card shows.
const maxOtherTechs = 3

// Description is a product description in its collapsed or expanded form.
type Description struct {
	ProductID string
	Budget    string
	Text      string
	Expanded  bool
	// Toggleable is false when the full text fits the budget, in which
	// case no read more control is shown.
	Toggleable bool
}

// NewDescription renders text for the given budget and expanded state.
func NewDescription(productID, text, budget string, expanded bool) Description {
	short, cut := transform.Truncate(text, BudgetChars(budget))
	d := Description{
		ProductID:  productID,
		Budget:     budget,
		Text:       short,
		Expanded:   expanded && cut,
		Toggleable: cut,
	}
	if d.Expanded {
		d.Text = text
	}
	return d
}

// ToggleURL is the partial that flips this description.
func (d Description) ToggleURL() string {
	q := url.Values{}
	q.Set("budget", d.Budget)
	if !d.Expanded {
		q.Set("expanded", "true")
	} else {
		q.Set("expanded", "false")
	}
	return "/products/" + url.PathEscape(d.ProductID) + "/description?" + q.Encode()
}

// ProductCard is one product ready for a carousel.
type ProductCard struct {
	models.Product
	ImageURL    string
	Description Description
	Techs       []string
	ExtraTechs  int

	// FallbackURL flips this card's description without scripts.
	FallbackURL string
}

// ProductsView is the products page.
type ProductsView struct {
	Phase            Phase
	Featured         []ProductCard
	Other            []ProductCard
	FeaturedCarousel Carousel
	OtherCarousel    Carousel
	Expanded         transform.ExpandedSet
}

// LoadProducts fetches products and partitions them.
func LoadProducts(ctx context.Context, src Source, expanded transform.ExpandedSet) ProductsView {
	var (
		l        Loader
		products []models.Product
	)
	_ = l.Run(ctx, func(ctx context.Context) { products = src.Products(ctx) })

	if expanded == nil {
		expanded = transform.ExpandedSet{}
	}
	featured, other := transform.PartitionProducts(products)

	v := ProductsView{
		Phase:    l.Phase(),
		Expanded: expanded,
		FeaturedCarousel: Carousel{
			ID:                "featured-carousel",
			Responsive:        true,
			AlwaysShowButtons: len(featured) > 1,
		},
		OtherCarousel: Carousel{ID: "other-carousel", Step: OtherStep},
	}
	for _, p := range featured {
		v.Featured = append(v.Featured, v.card(p, BudgetWide, len(p.Technologies)))
	}
	for _, p := range other {
		v.Other = append(v.Other, v.card(p, BudgetNarrow, maxOtherTechs))
	}
	return v
}

func (v ProductsView) card(p models.Product, budget string, maxTechs int) ProductCard {
	c := ProductCard{
		Product:     p,
		ImageURL:    p.Image,
		Description: NewDescription(p.ID, p.Description, budget, v.Expanded.Has(p.ID)),
		Techs:       p.Technologies,
	}
	if c.ImageURL == "" {
		c.ImageURL = DefaultProductImage
	}
	if len(c.Techs) > maxTechs {
		c.ExtraTechs = len(c.Techs) - maxTechs
		c.Techs = c.Techs[:maxTechs]
	}

	toggled := transform.ExpandedSet{}
	for id := range v.Expanded {
		toggled[id] = struct{}{}
	}
	toggled.Toggle(p.ID)
	c.FallbackURL = "/products"
	if enc := toggled.Encode(); enc != "" {
		c.FallbackURL += "?expanded=" + url.QueryEscape(enc)
	}
	return c
}

// Empty reports whether there is nothing to show.
func (v ProductsView) Empty() bool {
	return len(v.Featured) == 0 && len(v.Other) == 0
}

// Reveal staggers every card, featured first.
func (v ProductsView) Reveal() []reveal.Step {
	ids := make([]string, 0, len(v.Featured)+len(v.Other))
	for _, c := range v.Featured {
		ids = append(ids, c.ID)
	}
	for _, c := range v.Other {
		ids = append(ids, c.ID)
	}
	return reveal.Plan(ids, reveal.ProductsStep)
}

// FindProduct returns the product with id from products.
func FindProduct(products []models.Product, id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
