package entity

// Etiqueta es un sello visual (ej. "Nuevo", "Vegano") asociable a productos.
type Etiqueta struct {
	ID             int64  `json:"id"`
	Nombre         string `json:"nombre"`
	Slug           string `json:"etiqueta_slug"`
	Estado         Estado `json:"estado"`
	Imagen         string `json:"imagen,omitempty"`
	ImagenURL      string `json:"imagen_url,omitempty"`
	ProductosCount int    `json:"productos_count,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}
