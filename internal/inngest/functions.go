package inngest

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/inngest/inngestgo"
	"github.com/inngest/inngestgo/step"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ayane-kurokawa/waggle/api/internal/catalog"
	"github.com/ayane-kurokawa/waggle/api/internal/model"
	"github.com/ayane-kurokawa/waggle/api/internal/observability"
	"github.com/ayane-kurokawa/waggle/api/internal/repository"
	"github.com/ayane-kurokawa/waggle/api/internal/service"
	"github.com/ayane-kurokawa/waggle/api/internal/timeutil"
)

// NewHandler registers all Inngest functions and returns the HTTP handler.
func NewHandler(db *pgxpool.Pool, discoverer *service.Discoverer, resend *service.ResendClient, loc *time.Location) http.Handler {
	client, err := inngestgo.NewClient(inngestgo.ClientOpts{
		AppID: "waggle-api",
	})
	if err != nil {
		log.Fatalf("inngest client: %v", err)
	}

	register := func(f inngestgo.ServableFunction, err error) {
		if err != nil {
			log.Fatalf("register function: %v", err)
		}
	}

	register(autoDiscoverFn(client, db, discoverer, loc))
	register(verifyDiscoveredFn(client, db))
	register(sendRemindersFn(client, db, resend, loc))

	return client.Serve()
}

// cron/auto-discover — hourly; runs content discovery for every user whose
// weekly or monthly window has elapsed.
func autoDiscoverFn(client inngestgo.Client, db *pgxpool.Pool, discoverer *service.Discoverer, loc *time.Location) (inngestgo.ServableFunction, error) {
	configRepo := repository.NewDiscoveryConfigRepo(db)
	discoveredRepo := repository.NewDiscoveredActivityRepo(db)
	dogRepo := repository.NewDogRepo(db)

	return inngestgo.CreateFunction(
		client,
		inngestgo.FunctionOpts{ID: "auto-discover", Name: "Auto Discover Activities"},
		inngestgo.CronTrigger("0 * * * *"),
		func(ctx context.Context, input inngestgo.Input[any]) (any, error) {
			now := time.Now().In(loc)
			configs, err := configRepo.ListDue(ctx, now)
			if err != nil {
				return nil, fmt.Errorf("list due configs: %w", err)
			}

			totalCreated := 0
			for _, cfg := range configs {
				observability.RecordDiscoveryRun()

				breed := ""
				if cfg.BreedSpecific {
					if dogs, err := dogRepo.List(ctx, cfg.UserID); err == nil && len(dogs) > 0 {
						breed = dogs[0].Breed
					}
				}

				created := 0
				for _, source := range cfg.Sources {
					if created >= cfg.MaxPerRun {
						break
					}
					candidates, err := discoverer.FetchCandidates(ctx, source, breed, now)
					if err != nil {
						log.Printf("auto-discover fetch %s user=%s: %v", source, cfg.UserID, err)
						continue
					}
					for _, c := range candidates {
						if created >= cfg.MaxPerRun {
							break
						}
						approval := model.ApprovalPending
						if c.QualityScore >= cfg.QualityThreshold {
							approval = model.ApprovalApproved
						}
						id := uuid.NewString()
						ok, err := discoveredRepo.Upsert(ctx, repository.DiscoveredActivityInput{
							ID:              id,
							UserID:          cfg.UserID,
							Title:           c.Title,
							Pillar:          c.Pillar,
							Difficulty:      c.Difficulty,
							DurationMinutes: c.DurationMinutes,
							Tags:            c.Tags,
							SourceURL:       c.SourceURL,
							QualityScore:    c.QualityScore,
							Approval:        approval,
						})
						if err != nil {
							log.Printf("auto-discover upsert %s: %v", c.SourceURL, err)
							continue
						}
						if !ok {
							continue
						}
						created++
						observability.RecordDiscoveredActivity(string(approval))
						if _, err := client.Send(ctx, inngestgo.Event{
							Name: "activity/discovered",
							Data: map[string]any{
								"activity_id": id,
								"user_id":     cfg.UserID,
								"source_url":  c.SourceURL,
							},
						}); err != nil {
							log.Printf("send activity/discovered: %v", err)
						}
					}
				}
				if err := configRepo.StampLastRun(ctx, cfg.UserID, now); err != nil {
					log.Printf("auto-discover stamp user=%s: %v", cfg.UserID, err)
				}
				totalCreated += created
			}
			return map[string]int{"users": len(configs), "created": totalCreated}, nil
		},
	)
}

// event/verify-discovered — checks that a discovered activity's source URL is
// still reachable and marks it verified.
func verifyDiscoveredFn(client inngestgo.Client, db *pgxpool.Pool) (inngestgo.ServableFunction, error) {
	discoveredRepo := repository.NewDiscoveredActivityRepo(db)

	type EventData struct {
		ActivityID string `json:"activity_id"`
		UserID     string `json:"user_id"`
		SourceURL  string `json:"source_url"`
	}

	return inngestgo.CreateFunction(
		client,
		inngestgo.FunctionOpts{ID: "verify-discovered", Name: "Verify Discovered Activity"},
		inngestgo.EventTrigger("activity/discovered", nil),
		func(ctx context.Context, input inngestgo.Input[EventData]) (any, error) {
			data := input.Event.Data

			reachable, err := step.Run(ctx, "check-url", func(ctx context.Context) (bool, error) {
				req, err := http.NewRequestWithContext(ctx, http.MethodHead, data.SourceURL, nil)
				if err != nil {
					return false, nil
				}
				httpClient := &http.Client{Timeout: 15 * time.Second}
				resp, err := httpClient.Do(req)
				if err != nil {
					return false, nil
				}
				resp.Body.Close()
				return resp.StatusCode < 400, nil
			})
			if err != nil {
				return nil, err
			}

			if err := discoveredRepo.SetVerified(ctx, data.ActivityID, reachable); err != nil {
				return nil, fmt.Errorf("set verified %s: %w", data.ActivityID, err)
			}
			return map[string]any{"activity_id": data.ActivityID, "verified": reachable}, nil
		},
	)
}

// cron/send-reminders — every evening, mails owners tomorrow's reminder-flagged
// activities that are still open.
func sendRemindersFn(client inngestgo.Client, db *pgxpool.Pool, resend *service.ResendClient, loc *time.Location) (inngestgo.ServableFunction, error) {
	scheduleRepo := repository.NewScheduleRepo(db)
	dogRepo := repository.NewDogRepo(db)
	discoveredRepo := repository.NewDiscoveredActivityRepo(db)

	titleFor := func(ctx context.Context, activityID string) (title string, pillar model.Pillar) {
		for _, a := range catalog.Library() {
			if a.ID == activityID {
				return a.Title, a.Pillar
			}
		}
		if a, err := discoveredRepo.Get(ctx, activityID); err == nil {
			return a.Title, a.Pillar
		}
		return activityID, ""
	}

	return inngestgo.CreateFunction(
		client,
		inngestgo.FunctionOpts{ID: "send-reminders", Name: "Send Daily Reminders"},
		inngestgo.CronTrigger("0 18 * * *"),
		func(ctx context.Context, input inngestgo.Input[any]) (any, error) {
			if !resend.Enabled() {
				return map[string]any{"skipped": "resend not configured"}, nil
			}

			tomorrow := timeutil.FormatDate(time.Now().In(loc).AddDate(0, 0, 1))
			entries, err := scheduleRepo.ListRemindersForDate(ctx, tomorrow)
			if err != nil {
				return nil, fmt.Errorf("list reminders: %w", err)
			}
			if len(entries) == 0 {
				return map[string]int{"sent": 0}, nil
			}

			dogs, emailByDogID, err := dogRepo.ListAllWithOwners(ctx)
			if err != nil {
				return nil, fmt.Errorf("list dogs: %w", err)
			}
			dogByID := map[string]*model.Dog{}
			for i := range dogs {
				dogByID[dogs[i].ID] = &dogs[i]
			}

			itemsByDog := map[string][]service.ReminderItem{}
			for _, e := range entries {
				title, pillar := titleFor(ctx, e.ActivityID)
				itemsByDog[e.DogID] = append(itemsByDog[e.DogID], service.ReminderItem{
					ActivityTitle: title,
					Pillar:        pillar,
					Notes:         e.Notes,
				})
			}

			sent := 0
			failed := 0
			for dogID, items := range itemsByDog {
				dog, ok := dogByID[dogID]
				if !ok {
					continue
				}
				to, ok := emailByDogID[dogID]
				if !ok || to == "" {
					continue
				}
				if err := resend.SendReminder(ctx, to, dog, tomorrow, items); err != nil {
					failed++
					log.Printf("send reminder dog=%s: %v", dogID, err)
					continue
				}
				sent++
			}
			return map[string]int{"sent": sent, "failed": failed}, nil
		},
	)
}
