package ports

import "kiwiforge/internal/types"

type ProductSpecPort interface {
	LoadProduct(path string) (types.Spec, error)
}
