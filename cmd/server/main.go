// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/linkedlift/engagement-backend/internal/config"
	"github.com/linkedlift/engagement-backend/internal/controller"
	"github.com/linkedlift/engagement-backend/internal/db"
	"github.com/linkedlift/engagement-backend/internal/generator"
	"github.com/linkedlift/engagement-backend/internal/handler"
	"github.com/linkedlift/engagement-backend/internal/queue"
	"github.com/linkedlift/engagement-backend/internal/repository"
	"github.com/linkedlift/engagement-backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}

	conn, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to DB:", err)
	}
	defer conn.Close()

	ruleRepo := &repository.RuleRepository{DB: conn}
	campaignRepo := &repository.CampaignRepository{DB: conn}
	targetRepo := &repository.TargetRepository{DB: conn}
	queueRepo := &repository.QueueRepository{DB: conn}
	historyRepo := &repository.HistoryRepository{DB: conn}

	gen := generator.NewClient(cfg.Generator)
	rnd := service.NewRand()

	processor := service.NewProcessorService(queueRepo, targetRepo, historyRepo, gen)

	// With an AMQP broker the worker binary consumes scheduled items; without
	// one, an in-memory subscriber processes them in this process.
	var q queue.Queue
	if cfg.Queue.URL != "" {
		amqpQueue, err := queue.NewAMQPQueue(cfg.Queue.URL, cfg.Queue.Topic)
		if err != nil {
			log.Fatal("failed to connect to RabbitMQ:", err)
		}
		defer amqpQueue.Close()
		q = amqpQueue
	} else {
		memQueue := queue.NewInMemoryQueue()
		queue.StartEngagementSubscriber(memQueue, func(id string) error {
			_, err := processor.ProcessQueueItem(context.Background(), id)
			return err
		})
		q = memQueue
	}

	scheduler := &service.SchedulerService{
		RuleRepo:   ruleRepo,
		TargetRepo: targetRepo,
		QueueRepo:  queueRepo,
		Trigger:    service.NewTriggerEvaluator(rnd),
		Rand:       rnd,
	}

	// The dispatcher feeds due items into the execution queue; scheduled items
	// wait in the table until their scheduled_for passes.
	dispatcher := &service.DispatcherService{QueueRepo: queueRepo, Queue: q}
	go dispatcher.Start(time.Minute, 100, make(chan struct{}))

	campaignService := &service.CampaignService{CampaignRepo: campaignRepo}

	schedulerController := &controller.SchedulerController{Scheduler: scheduler}
	queueController := &controller.QueueController{Processor: processor}
	generateController := &controller.GenerateController{Generator: gen, Rand: rnd}

	ruleHandler := handler.NewRuleHandler(ruleRepo)
	campaignHandler := handler.NewCampaignHandler(campaignService)
	targetHandler := handler.NewTargetHandler(targetRepo)
	historyHandler := handler.NewHistoryHandler(historyRepo)

	r := chi.NewRouter()

	// Automation entry points
	r.Post("/scheduler/run", schedulerController.RunScheduler)
	r.Post("/queue/process", queueController.ProcessQueueItem)
	r.Post("/generate", generateController.HandleGenerate)

	// Dashboard CRUD
	r.Post("/rules", ruleHandler.CreateRuleHandler)
	r.Get("/rules", ruleHandler.ListRulesHandler)
	r.Get("/rules/{id}", ruleHandler.GetRuleHandler)
	r.Patch("/rules/{id}/active", ruleHandler.SetRuleActiveHandler)

	r.Post("/campaigns", campaignHandler.CreateCampaignHandler)
	r.Get("/campaigns", campaignHandler.ListCampaignsHandler)
	r.Get("/campaigns/{id}", campaignHandler.GetCampaignHandler)
	r.Get("/campaigns/{id}/targets", targetHandler.ListTargetsHandler)

	r.Post("/targets", targetHandler.CreateTargetHandler)
	r.Get("/history", historyHandler.ListHistoryHandler)

	r.Handle("/metrics", promhttp.Handler())

	log.Println("🚀 Server running on :" + cfg.Server.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Server.Port, r))
}
