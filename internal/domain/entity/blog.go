package entity

import "encoding/json"

// Blog es una entrada del blog de la tienda. ContenidoFlexible es JSON libre definido por el front.
type Blog struct {
	ID                int64           `json:"id"`
	Titulo            string          `json:"titulo"`
	Slug              string          `json:"blog_slug"`
	MetaTitle         string          `json:"meta_title,omitempty"`
	MetaDescription   string          `json:"meta_description,omitempty"`
	Portada           string          `json:"portada,omitempty"`
	PortadaURL        string          `json:"portada_url,omitempty"`
	Resumen           string          `json:"resumen,omitempty"`
	ContenidoFlexible json.RawMessage `json:"contenido_flexible,omitempty"`
	Estado            Estado          `json:"estado"`
	CreadoEn          string          `json:"creado_en,omitempty"`
}
