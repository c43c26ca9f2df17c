package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ayane-kurokawa/waggle/api/internal/handler"
	inngestfn "github.com/ayane-kurokawa/waggle/api/internal/inngest"
	"github.com/ayane-kurokawa/waggle/api/internal/middleware"
	"github.com/ayane-kurokawa/waggle/api/internal/repository"
	"github.com/ayane-kurokawa/waggle/api/internal/service"
	"github.com/ayane-kurokawa/waggle/api/internal/timeutil"
)

func main() {
	ctx := context.Background()
	loc := timeutil.AppLocation()

	db, err := repository.NewPool(ctx)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	cache, err := service.NewJSONCacheFromEnv()
	if err != nil {
		log.Printf("redis unavailable, caching disabled: %v", err)
		cache = service.NoopJSONCache{}
	}

	coach := service.NewCoachClient()
	resend := service.NewResendClient()
	discoverer := service.NewDiscoverer()
	eventPublisher, err := service.NewEventPublisher()
	if err != nil {
		log.Fatalf("event publisher: %v", err)
	}

	userRepo := repository.NewUserRepo(db)
	dogRepo := repository.NewDogRepo(db)
	scheduleRepo := repository.NewScheduleRepo(db)
	discoveredRepo := repository.NewDiscoveredActivityRepo(db)
	quizRepo := repository.NewQuizResultRepo(db)
	configRepo := repository.NewDiscoveryConfigRepo(db)
	journalRepo := repository.NewJournalRepo(db)
	streakRepo := repository.NewStreakRepo(db)

	internalH := &handler.InternalHandler{Users: userRepo}
	dogH := &handler.DogHandler{Repo: dogRepo, QuizRepo: quizRepo}
	scheduleH := &handler.ScheduleHandler{
		Dogs:      dogRepo,
		Schedules: scheduleRepo,
		Streaks:   streakRepo,
		Publisher: eventPublisher,
		Loc:       loc,
	}
	activityH := &handler.ActivityHandler{
		Dogs:       dogRepo,
		Discovered: discoveredRepo,
		Quiz:       quizRepo,
		Cache:      cache,
		Discoverer: discoverer,
		Publisher:  eventPublisher,
		Loc:        loc,
	}
	quizH := &handler.QuizHandler{Dogs: dogRepo, Results: quizRepo}
	progressH := &handler.ProgressHandler{
		Dogs:       dogRepo,
		Schedules:  scheduleRepo,
		Discovered: discoveredRepo,
		Streaks:    streakRepo,
		Loc:        loc,
	}
	journalH := &handler.JournalHandler{Dogs: dogRepo, Journal: journalRepo, Loc: loc}
	settingsH := &handler.SettingsHandler{Configs: configRepo}
	coachH := &handler.CoachHandler{Dogs: dogRepo, Results: quizRepo, Coach: coach}

	inngestHandler := inngestfn.NewHandler(db, discoverer, resend, loc)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	})
	r.Handle("/metrics", promhttp.Handler())

	// Inngest serve endpoint, unauthenticated.
	r.Mount("/api/inngest", inngestHandler)

	// Called by the auth frontend only, protected by X-Internal-Secret.
	r.Post("/api/internal/users/upsert", internalH.UpsertUser)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth)

		r.Route("/dogs", func(r chi.Router) {
			r.Get("/", dogH.List)
			r.Post("/", dogH.Create)
			r.Get("/{id}", dogH.Get)
			r.Patch("/{id}", dogH.Update)
			r.Delete("/{id}", dogH.Delete)

			r.Get("/{id}/schedule", scheduleH.List)
			r.Post("/{id}/schedule", scheduleH.Create)
			r.Patch("/{id}/schedule/{scheduleID}/complete", scheduleH.Complete)
			r.Delete("/{id}/schedule/{scheduleID}", scheduleH.Delete)

			r.Post("/{id}/quiz", quizH.Submit)
			r.Get("/{id}/quiz", quizH.Get)
			r.Get("/{id}/progress", progressH.Weekly)
			r.Get("/{id}/journal", journalH.List)
			r.Post("/{id}/journal", journalH.Create)
			r.Post("/{id}/coach/chat", coachH.Chat)
		})

		r.Route("/activities", func(r chi.Router) {
			r.Get("/", activityH.List)
			r.Get("/weights", activityH.Weights)
			r.Post("/discover", activityH.Discover)
			r.Get("/discovered/pending", activityH.Pending)
			r.Patch("/discovered/{id}", activityH.SetApproval)
		})

		r.Get("/quiz/questions", quizH.Questions)

		r.Route("/settings", func(r chi.Router) {
			r.Get("/discovery", settingsH.GetDiscovery)
			r.Put("/discovery", settingsH.PutDiscovery)
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("api listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
