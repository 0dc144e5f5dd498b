// Package extract implements the scene extractor against an
// OpenAI-compatible chat completion API.
package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/cloudywalnut/ai-production-scheduler/core/logger"
	"github.com/cloudywalnut/ai-production-scheduler/core/model"
)

const systemPrompt = `You are a film production script breakdown assistant.
The user message contains a screenplay fragment. Identify every scene and
respond with ONLY a JSON object of the form
{"scenes":[{"scene_number":1,"scene_heading":"INT. DINER - DAY",
"location_type":"INT","location_name":"DINER","sub_location_name":"",
"time_of_day":"DAY","characters":[],"props":[],"wardrobe":[],
"set_dressing":[],"vehicles":[],"vfx":[],"sfx":[],"stunts":[],"extras":[],
"estimatedTime":1.5,"scene_summary":""}]}.
location_type is one of INT, EXT, INT/EXT, I/E or UNKNOWN; time_of_day is
DAY, NIGHT or UNKNOWN; estimatedTime is the estimated shooting time in
hours. Do not wrap the JSON in markdown fences or add commentary.`

// Config holds the connection settings for the extraction service.
type Config struct {
	APIKey         string `json:"api_key"`
	BaseURL        string `json:"base_url"`
	Model          string `json:"model"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	MaxRetries     int    `json:"max_retries"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 120
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("extractor api_key is required")
	}
	return nil
}

// Client calls the extraction model and parses its JSON reply. The reply
// is cleaned of markdown artifacts before parsing because models regularly
// wrap JSON in code fences despite instructions.
type Client struct {
	client     *openai.Client
	model      string
	timeout    time.Duration
	maxRetries int
	log        logger.Logger
}

// New creates a Client from the configuration.
func New(cfg Config, log logger.Logger) (*Client, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	return &Client{
		client:     openai.NewClientWithConfig(oc),
		model:      cfg.Model,
		timeout:    time.Duration(cfg.TimeoutSeconds) * time.Second,
		maxRetries: cfg.MaxRetries,
		log:        log,
	}, nil
}

// Extract implements extract.Extractor. Transient API errors and
// unparseable replies are retried up to MaxRetries times; each attempt
// gets its own timeout.
func (c *Client) Extract(ctx context.Context, fragment []byte) ([]model.Scene, error) {
	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		scenes, err := c.extractOnce(ctx, fragment)
		if err == nil {
			return scenes, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
		if c.log != nil {
			c.log.Warnf("extraction attempt %d/%d failed: %v", attempt, c.maxRetries, err)
		}
	}
	return nil, fmt.Errorf("extract scenes: %w", lastErr)
}

func (c *Client) extractOnce(ctx context.Context, fragment []byte) ([]model.Scene, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: string(fragment)},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("empty completion")
	}
	cleaned := extractJSONContent(resp.Choices[0].Message.Content)
	var batch model.SceneBatch
	if err := json.Unmarshal([]byte(cleaned), &batch); err != nil {
		return nil, fmt.Errorf("parse scene payload: %w", err)
	}
	for i := range batch.Scenes {
		batch.Scenes[i].Normalize()
	}
	return batch.Scenes, nil
}
