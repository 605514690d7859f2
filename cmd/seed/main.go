// Seeds the configured store with fake service requests, technician
// applications, and quotes for local development.
package main

import (
	"context"
	"fmt"
	"time"

	gofakeit "github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog/log"

	"github.com/voltline/backend/internal/config"
	"github.com/voltline/backend/internal/db"
	"github.com/voltline/backend/internal/lifecycle"
	"github.com/voltline/backend/internal/models"
)

const (
	numRequests     = 25
	numApplications = 10
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if cfg.StoreDriver != "postgres" {
		log.Fatal().Msg("seeding requires DATABASE_URL (the in-memory store is per-process)")
	}

	ctx := context.Background()
	st, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect db")
	}
	defer st.Close()

	if err := st.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}

	gofakeit.Seed(0)
	serviceTypes := []string{"electrical", "solar", "both"}

	var requestIDs []int64
	for i := 0; i < numRequests; i++ {
		r := models.ServiceRequest{
			FullName:    gofakeit.Name(),
			Email:       gofakeit.Email(),
			Phone:       gofakeit.Phone(),
			Address:     gofakeit.Address().Address,
			ServiceType: gofakeit.RandomString(serviceTypes),
			Description: gofakeit.Sentence(12),
			Urgency:     gofakeit.RandomString([]string{"", "low", "medium", "high"}),
			Status:      gofakeit.RandomString(lifecycle.Statuses(lifecycle.KindRequest)),
			CreatedAt:   time.Now().UTC().Add(-time.Duration(gofakeit.Number(0, 720)) * time.Hour),
		}
		if err := st.CreateServiceRequest(ctx, &r); err != nil {
			log.Fatal().Err(err).Msg("seed service request")
		}
		requestIDs = append(requestIDs, r.ID)
	}

	for i := 0; i < numApplications; i++ {
		a := models.TechnicianApplication{
			FullName:        gofakeit.Name(),
			Email:           gofakeit.Email(),
			Phone:           gofakeit.Phone(),
			Specialization:  gofakeit.RandomString(serviceTypes),
			YearsExperience: gofakeit.Number(0, 20),
			Certifications:  gofakeit.BuzzWord(),
			CoverLetter:     gofakeit.Paragraph(1, 3, 12, " "),
			Status:          gofakeit.RandomString(lifecycle.Statuses(lifecycle.KindApplication)),
			CreatedAt:       time.Now().UTC().Add(-time.Duration(gofakeit.Number(0, 720)) * time.Hour),
		}
		if err := st.CreateApplication(ctx, &a); err != nil {
			log.Fatal().Err(err).Msg("seed application")
		}

		// a couple of quotes per technician against random requests
		for j := 0; j < gofakeit.Number(1, 3); j++ {
			labor := gofakeit.Float64Range(5000, 200000)
			material := gofakeit.Float64Range(10000, 900000)
			q := models.Quote{
				RequestID:    requestIDs[gofakeit.Number(0, len(requestIDs)-1)],
				TechnicianID: fmt.Sprintf("tech-%d", a.ID),
				Amount:       labor + material,
				LaborCost:    &labor,
				MaterialCost: &material,
				Description:  gofakeit.Sentence(10),
				ValidUntil:   time.Now().UTC().AddDate(0, 0, 7),
				Status:       gofakeit.RandomString(lifecycle.Statuses(lifecycle.KindQuote)),
				CreatedAt:    time.Now().UTC(),
			}
			if err := st.CreateQuote(ctx, &q); err != nil {
				log.Fatal().Err(err).Msg("seed quote")
			}
		}
	}

	log.Info().Int("requests", numRequests).Int("applications", numApplications).Msg("seed complete")
}
