package dto

import "github.com/jhoicas/tienda-admin/internal/domain/entity"

// ClientesPaginados forma cruda del listado de clientes.
type ClientesPaginados struct {
	Clientes   []entity.Cliente `json:"clientes"`
	Pagination Paginacion       `json:"pagination"`
}

// PaginadorReclamaciones es el paginador Laravel que llega en data.
type PaginadorReclamaciones struct {
	Data []entity.Reclamacion `json:"data"`
	Paginacion
}

// PaginaReclamaciones listado normalizado más las estadísticas del libro.
type PaginaReclamaciones struct {
	Pagina[entity.Reclamacion]
	Estadisticas *entity.EstadisticasReclamaciones `json:"estadisticas,omitempty"`
}
