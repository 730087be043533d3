package circuit

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all circuit endpoints onto the given router under
// the /circuit prefix.
func RegisterRoutes(r chi.Router) {
	r.Route("/circuit", func(r chi.Router) {
		r.Get("/reference", Reference)
		r.Get("/reference/chart", ReferenceChart)

		r.Route("/{calculator}", func(r chi.Router) {
			r.Post("/", Evaluate)
			r.Get("/defaults", Defaults)
			r.Post("/chart", Chart)
			r.Post("/report.pdf", Report)
			r.Post("/export.xlsx", Export)
		})
	})
}
