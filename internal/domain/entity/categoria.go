package entity

// Categoria agrupa productos. Admite un solo nivel de anidamiento: una subcategoría
// (ParentID != nil) no puede tener hijas.
type Categoria struct {
	ID             int64  `json:"id"`
	Nombre         string `json:"nombre"`
	Estado         Estado `json:"estado"`
	ParentID       *int64 `json:"parent_id,omitempty"`
	Imagen         string `json:"imagen,omitempty"`
	ImagenURL      string `json:"imagen_url,omitempty"`
	ProductosCount int    `json:"productos_count,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// EsSubcategoria indica si la categoría cuelga de otra.
func (c Categoria) EsSubcategoria() bool {
	return c.ParentID != nil
}
