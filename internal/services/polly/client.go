// Package polly wraps AWS Polly speech synthesis.
package polly

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	awspolly "github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/polly/pollyiface"
)

// TextType selects how Polly interprets the input text.
type TextType string

const (
	TextTypeText TextType = "text"
	TextTypeSSML TextType = "ssml"
)

const defaultEngine = "generative"

// Config captures the runtime settings for the speech provider.
type Config struct {
	Region string
	Engine string
}

// Client synthesizes MP3 audio from text or SSML.
type Client struct {
	api    pollyiface.PollyAPI
	engine string
}

// Option customizes the client.
type Option func(*Client)

// WithAPI overrides the underlying Polly API, mainly for tests.
func WithAPI(api pollyiface.PollyAPI) Option {
	return func(c *Client) {
		if api != nil {
			c.api = api
		}
	}
}

// NewClient constructs a speech client. Credentials come from the default
// AWS chain (environment, shared config, instance role).
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	client := &Client{engine: strings.TrimSpace(cfg.Engine)}
	if client.engine == "" {
		client.engine = defaultEngine
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.api == nil {
		region := strings.TrimSpace(cfg.Region)
		if region == "" {
			return nil, errors.New("speech: region required")
		}
		sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
		if err != nil {
			return nil, fmt.Errorf("speech: create session: %w", err)
		}
		client.api = awspolly.New(sess)
	}
	return client, nil
}

// Synthesize renders the input as MP3 audio using the given voice.
func (c *Client) Synthesize(ctx context.Context, text, voice string, textType TextType) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("speech: text required")
	}
	if strings.TrimSpace(voice) == "" {
		return nil, errors.New("speech: voice required")
	}
	if textType != TextTypeText && textType != TextTypeSSML {
		return nil, fmt.Errorf("speech: unsupported text type %q", textType)
	}

	out, err := c.api.SynthesizeSpeechWithContext(ctx, &awspolly.SynthesizeSpeechInput{
		Engine:       aws.String(c.engine),
		OutputFormat: aws.String(awspolly.OutputFormatMp3),
		Text:         aws.String(text),
		TextType:     aws.String(string(textType)),
		VoiceId:      aws.String(voice),
	})
	if err != nil {
		return nil, fmt.Errorf("speech: synthesize with voice %s: %w", voice, err)
	}
	defer out.AudioStream.Close()

	audio, err := io.ReadAll(out.AudioStream)
	if err != nil {
		return nil, fmt.Errorf("speech: read audio stream: %w", err)
	}
	if len(audio) == 0 {
		return nil, errors.New("speech: empty audio stream")
	}
	return audio, nil
}
