package entity

import "github.com/shopspring/decimal"

// DashboardStats son los contadores de la pantalla de inicio.
type DashboardStats struct {
	Productos struct {
		Total    int `json:"total"`
		Activos  int `json:"activos"`
		SinStock int `json:"sin_stock"`
	} `json:"productos"`
	Categorias struct {
		Total   int `json:"total"`
		Activas int `json:"activas"`
	} `json:"categorias"`
	Clientes struct {
		Total       int `json:"total"`
		Registrados int `json:"registrados"`
		Invitados   int `json:"invitados"`
	} `json:"clientes"`
	Pedidos struct {
		Total      int `json:"total"`
		Pendientes int `json:"pendientes"`
		Pagados    int `json:"pagados"`
		Enviados   int `json:"enviados"`
	} `json:"pedidos"`
	Ventas struct {
		Total decimal.Decimal `json:"total"`
		Hoy   decimal.Decimal `json:"hoy"`
		Mes   decimal.Decimal `json:"mes"`
	} `json:"ventas"`
}
