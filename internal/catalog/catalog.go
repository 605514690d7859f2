// Package catalog is the static listing of offered installation services.
package catalog

type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	PriceFrom   int    `json:"price_from"`
	PriceTo     int    `json:"price_to"`
	Unit        string `json:"unit"`
}

var services = []Service{
	{
		ID:          "electrical-wiring",
		Name:        "House Wiring",
		Category:    "electrical",
		Description: "Full or partial rewiring of residential buildings, including distribution boards and earthing.",
		PriceFrom:   150000,
		PriceTo:     800000,
		Unit:        "NGN",
	},
	{
		ID:          "electrical-repair",
		Name:        "Electrical Fault Repair",
		Category:    "electrical",
		Description: "Diagnosis and repair of faulty circuits, sockets, and lighting.",
		PriceFrom:   15000,
		PriceTo:     120000,
		Unit:        "NGN",
	},
	{
		ID:          "solar-residential",
		Name:        "Residential Solar Installation",
		Category:    "solar",
		Description: "Rooftop panels, inverter, and battery bank sized for household load.",
		PriceFrom:   900000,
		PriceTo:     4500000,
		Unit:        "NGN",
	},
	{
		ID:          "solar-maintenance",
		Name:        "Solar System Maintenance",
		Category:    "solar",
		Description: "Panel cleaning, battery health check, and inverter servicing.",
		PriceFrom:   25000,
		PriceTo:     150000,
		Unit:        "NGN",
	},
	{
		ID:          "hybrid-audit",
		Name:        "Energy Audit & Hybrid Setup",
		Category:    "both",
		Description: "Load audit plus combined grid and solar installation plan.",
		PriceFrom:   50000,
		PriceTo:     300000,
		Unit:        "NGN",
	},
}

// Services returns the catalog. Callers must not mutate the result.
func Services() []Service {
	return services
}
