package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"amparo-api/core/constants"
	"amparo-api/core/logger"
	"amparo-api/core/utils"

	"github.com/hibiken/asynq"
)

// MagicLinkEmailPayload is the task payload for sign-in link delivery.
type MagicLinkEmailPayload struct {
	Email string `json:"email"`
	Link  string `json:"link"`
}

// Client enqueues background tasks.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, redisPassword string, redisDB int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		}),
	}
}

// EnqueueMagicLinkEmail queues the sign-in email so the request handler does
// not block on SMTP.
func (c *Client) EnqueueMagicLinkEmail(ctx context.Context, email, link string) error {
	payload, err := json.Marshal(MagicLinkEmailPayload{Email: email, Link: link})
	if err != nil {
		return err
	}

	task := asynq.NewTask(constants.TaskTypeMagicLinkEmail, payload, asynq.MaxRetry(0))
	if _, err := c.client.EnqueueContext(ctx, task); err != nil {
		logger.Error("Worker:EnqueueMagicLinkEmail:Error:", err)
		return err
	}
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// Server processes queued tasks.
type Server struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

func NewServer(redisAddr, redisPassword string, redisDB int) *Server {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr, Password: redisPassword, DB: redisDB},
		asynq.Config{Concurrency: 2},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(constants.TaskTypeMagicLinkEmail, handleMagicLinkEmail)

	return &Server{server: srv, mux: mux}
}

func (s *Server) Start() error {
	return s.server.Start(s.mux)
}

func (s *Server) Shutdown() {
	s.server.Shutdown()
}

func handleMagicLinkEmail(ctx context.Context, t *asynq.Task) error {
	var payload MagicLinkEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to decode magic link payload: %w", err)
	}

	body := fmt.Sprintf(
		"Hello,\n\nUse the link below to sign in. It expires in %d minutes and can only be used once.\n\n%s\n",
		constants.MagicLinkTTLMinutes, payload.Link,
	)

	if err := utils.SendMail([]string{payload.Email}, "Your sign-in link", body); err != nil {
		logger.Error("Worker:handleMagicLinkEmail:SendMail:Error:", err)
		return err
	}

	logger.Info("Worker:handleMagicLinkEmail:Sent", "email", payload.Email)
	return nil
}
