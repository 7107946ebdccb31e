package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"changemakers-go/internal/model"
)

const (
	defaultAPIBase = "https://api.telegram.org"
	messageLimit   = 4096
)

// Sender forwards notifications to a Telegram chat from a single worker,
// keeping at least minInterval between messages.
type Sender struct {
	token    string
	chat     string
	threadID *int
	apiBase  string
	logger   *zap.Logger

	client       *http.Client
	queue        chan string
	minInterval  time.Duration
	lastSentTime time.Time

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

type Option func(*Sender)

func WithAPIBase(base string) Option {
	return func(s *Sender) { s.apiBase = base }
}

func WithHTTPClient(client *http.Client) Option {
	return func(s *Sender) { s.client = client }
}

func WithMinInterval(d time.Duration) Option {
	return func(s *Sender) { s.minInterval = d }
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Sender) { s.logger = logger }
}

func NewSender(token, chat string, threadID *int, options ...Option) *Sender {
	s := &Sender{
		token:       token,
		chat:        chat,
		threadID:    threadID,
		apiBase:     defaultAPIBase,
		logger:      zap.NewNop(),
		client:      &http.Client{Timeout: 15 * time.Second},
		queue:       make(chan string, 100),
		minInterval: 1200 * time.Millisecond,
		done:        make(chan struct{}),
	}
	for _, option := range options {
		option(s)
	}

	go s.worker()
	return s
}

// Notify queues n for delivery. After Close it drops n.
func (s *Sender) Notify(n model.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		s.logger.Warn("telegram sender closed; dropping notification", zap.String("title", n.Title))
		return
	}
	for _, part := range splitMessage(formatMessage(n), messageLimit) {
		s.queue <- part
	}
}

// Close stops accepting messages and waits for the queue to drain.
func (s *Sender) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()
	<-s.done
}

func (s *Sender) worker() {
	defer close(s.done)
	for msg := range s.queue {
		s.sendWithRateLimit(msg)
	}
}

func (s *Sender) sendWithRateLimit(text string) {
	wait := time.Until(s.lastSentTime.Add(s.minInterval))
	if wait > 0 {
		time.Sleep(wait)
	}

	retryAfter, err := s.postMessage(text)
	if err != nil {
		if retryAfter > 0 {
			s.logger.Warn("telegram rate limit hit", zap.Duration("retry_after", retryAfter))
			time.Sleep(retryAfter)
			if _, retryErr := s.postMessage(text); retryErr != nil {
				s.logger.Error("telegram retry failed", zap.Error(retryErr))
				return
			}
			s.lastSentTime = time.Now()
			s.logger.Info("telegram notification sent after retry")
			return
		}

		s.logger.Error("telegram send failed", zap.Error(err))
		return
	}

	s.lastSentTime = time.Now()
	s.logger.Debug("telegram notification sent")
}

func (s *Sender) postMessage(text string) (time.Duration, error) {
	payload := map[string]any{
		"chat_id":    s.chat,
		"text":       text,
		"parse_mode": "HTML",
	}
	if s.threadID != nil {
		payload["message_thread_id"] = *s.threadID
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("%s/bot%s/sendMessage", s.apiBase, s.token), bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var parsed telegramResponse
	_ = json.NewDecoder(resp.Body).Decode(&parsed)

	if resp.StatusCode == http.StatusTooManyRequests && parsed.Parameters.RetryAfter > 0 {
		return time.Duration(parsed.Parameters.RetryAfter) * time.Second, fmt.Errorf("rate limited")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("telegram error: %d %s", resp.StatusCode, parsed.Description)
	}

	return 0, nil
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
	Parameters  struct {
		RetryAfter int `json:"retry_after"`
	} `json:"parameters"`
}

func formatMessage(n model.Notification) string {
	message := fmt.Sprintf("<b>%s</b>\n%s\n", html.EscapeString(n.Title), html.EscapeString(n.Message))
	if n.Project != nil {
		message += fmt.Sprintf("📁 Project: %s %s\n", html.EscapeString(n.Project.Name), n.Project.Emoji)
	}
	if n.User != nil {
		message += fmt.Sprintf("👤 From: %s %s\n", html.EscapeString(n.User.Name), n.User.Emoji)
	}
	if n.Amount != nil {
		message += "💰 Amount: $" + strconv.FormatFloat(*n.Amount, 'f', -1, 64) + "\n"
	}
	message += "🏷 " + string(n.Type)
	return message
}

func splitMessage(message string, limit int) []string {
	runes := []rune(message)
	if len(runes) <= limit {
		return []string{message}
	}

	parts := []string{}
	for start := 0; start < len(runes); start += limit {
		end := start + limit
		if end > len(runes) {
			end = len(runes)
		}
		parts = append(parts, string(runes[start:end]))
	}
	return parts
}
