package service

import "errors"

// Domain error taxonomy. Repositories return absence sentinels or raw store
// errors; this layer is the only place that turns them into domain errors,
// and the HTTP layer only maps these to status codes.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrAIContentNotFound = errors.New("ai content not found")
	ErrDuplicateSKU      = errors.New("a product with this sku already exists")
	ErrGenerationFailed  = errors.New("listing generation failed")
)
