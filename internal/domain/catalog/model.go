package catalog

// Service es una oferta de la tienda (tarjeta de servicio en la página).
type Service struct {
	ID    string  `toml:"id" json:"id"`
	Name  string  `toml:"name" json:"name"`
	Price float64 `toml:"price" json:"price"`
}

type file struct {
	Services []Service `toml:"services"`
}
