// Package present maps reconciled catalog state to the external response
// shapes. Pure projection, no I/O: every field of the output is guaranteed
// present using the zero/empty defaults the reconcile package establishes.
package present

import (
	"comparador_server/structs"
	"comparador_server/structs/tables"
)

// Options controls the assembly of a ProductView.
type Options struct {
	// IncludeHistory trades payload size for completeness: listings omit
	// the timeline, single-product detail includes it.
	IncludeHistory bool

	DefaultCategory  string
	PlaceholderImage string
}

// StoreOffer projects one latest-by-store row into the external offer shape.
func StoreOffer(o tables.PriceObservation) structs.StoreOffer {
	return structs.StoreOffer{
		Name:          o.Store,
		Price:         o.Price,
		OriginalPrice: nil,
		Shipping:      "Consultar",
		Rating:        0,
		Reviews:       0,
		AffiliateLink: o.AffiliateURL,
		InStock:       o.InStock(),
	}
}

// Product assembles the full external record for one product key. Cover
// fields (name, image, category) come from the representative offer with
// configured fallbacks, so they are never empty.
func Product(
	key string,
	latest []tables.PriceObservation,
	representative tables.PriceObservation,
	history []structs.PricePoint,
	stats structs.PriceStats,
	description string,
	opts Options,
) structs.ProductView {
	stores := make([]structs.StoreOffer, 0, len(latest))
	for _, o := range latest {
		stores = append(stores, StoreOffer(o))
	}

	name := representative.RawName
	if name == "" {
		name = key
	}

	image := representative.ImageURL
	if image == "" {
		image = opts.PlaceholderImage
	}

	category := representative.Category
	if category == "" {
		category = opts.DefaultCategory
	}

	if history == nil || !opts.IncludeHistory {
		history = []structs.PricePoint{}
	}

	return structs.ProductView{
		ID:           key,
		Name:         name,
		Image:        image,
		Category:     category,
		Description:  description,
		Stores:       stores,
		PriceHistory: history,
		MinPrice:     stats.Min,
		AvgPrice:     stats.Avg,
	}
}
