package main

import (
	"encoding/json"
	"log"

	"github.com/streadway/amqp"

	"github.com/linkedlift/engagement-backend/internal/config"
	"github.com/linkedlift/engagement-backend/internal/db"
	"github.com/linkedlift/engagement-backend/internal/generator"
	"github.com/linkedlift/engagement-backend/internal/repository"
	"github.com/linkedlift/engagement-backend/internal/service"
)

type QueueJob struct {
	QueueItemID string `json:"queue_item_id"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}
	if cfg.Queue.URL == "" {
		log.Fatal("AMQP_URL is required for the worker")
	}

	conn, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to DB:", err)
	}
	defer conn.Close()

	targetRepo := &repository.TargetRepository{DB: conn}
	queueRepo := &repository.QueueRepository{DB: conn}
	historyRepo := &repository.HistoryRepository{DB: conn}

	gen := generator.NewClient(cfg.Generator)
	processor := service.NewProcessorService(queueRepo, targetRepo, historyRepo, gen)

	jobChan := make(chan string, 16)
	worker := service.NewWorker(processor, jobChan)
	go worker.Start()

	// Connect to RabbitMQ
	mq, err := amqp.Dial(cfg.Queue.URL)
	if err != nil {
		log.Fatal("Failed to connect to RabbitMQ:", err)
	}
	defer mq.Close()

	ch, err := mq.Channel()
	if err != nil {
		log.Fatal("Failed to open a channel:", err)
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		cfg.Queue.Topic,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		log.Fatal("Failed to declare queue:", err)
	}

	msgs, err := ch.Consume(
		q.Name,
		"",
		false, // autoAck
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Fatal("Failed to register consumer:", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var job QueueJob
			if err := json.Unmarshal(d.Body, &job); err != nil {
				log.Println("Invalid job:", err)
				d.Ack(false)
				continue
			}
			if job.QueueItemID == "" {
				log.Println("Job missing queue_item_id")
				d.Ack(false)
				continue
			}

			// Failed items stay failed; there is no requeue.
			jobChan <- job.QueueItemID
			d.Ack(false)
		}
	}()

	log.Println("Worker running, waiting for messages...")
	<-forever
}
