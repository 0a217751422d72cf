package polly

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	awspolly "github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/polly/pollyiface"
)

type fakePolly struct {
	pollyiface.PollyAPI

	lastInput *awspolly.SynthesizeSpeechInput
	audio     []byte
	err       error
}

func (f *fakePolly) SynthesizeSpeechWithContext(_ aws.Context, input *awspolly.SynthesizeSpeechInput, _ ...request.Option) (*awspolly.SynthesizeSpeechOutput, error) {
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	return &awspolly.SynthesizeSpeechOutput{
		AudioStream: io.NopCloser(bytes.NewReader(f.audio)),
	}, nil
}

func TestSynthesizePassesVoiceAndFormat(t *testing.T) {
	fake := &fakePolly{audio: []byte("mp3-bytes")}
	client, err := NewClient(Config{}, WithAPI(fake))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	audio, err := client.Synthesize(context.Background(), "<speak>hi</speak>", "Joanna", TextTypeSSML)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if string(audio) != "mp3-bytes" {
		t.Errorf("audio = %q", audio)
	}
	if got := aws.StringValue(fake.lastInput.VoiceId); got != "Joanna" {
		t.Errorf("voice = %q", got)
	}
	if got := aws.StringValue(fake.lastInput.TextType); got != "ssml" {
		t.Errorf("text type = %q", got)
	}
	if got := aws.StringValue(fake.lastInput.OutputFormat); got != "mp3" {
		t.Errorf("output format = %q", got)
	}
	if got := aws.StringValue(fake.lastInput.Engine); got != "generative" {
		t.Errorf("engine = %q", got)
	}
}

func TestSynthesizeRejectsBlankText(t *testing.T) {
	client, err := NewClient(Config{}, WithAPI(&fakePolly{}))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.Synthesize(context.Background(), "  ", "Joanna", TextTypeText); err == nil {
		t.Fatal("expected error for blank text")
	}
}

func TestSynthesizeRejectsUnknownTextType(t *testing.T) {
	client, err := NewClient(Config{}, WithAPI(&fakePolly{}))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.Synthesize(context.Background(), "hello", "Joanna", TextType("xml")); err == nil {
		t.Fatal("expected error for unknown text type")
	}
}

func TestSynthesizeRejectsEmptyStream(t *testing.T) {
	client, err := NewClient(Config{}, WithAPI(&fakePolly{audio: nil}))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.Synthesize(context.Background(), "hello", "Joanna", TextTypeText); err == nil {
		t.Fatal("expected error for empty audio stream")
	}
}

func TestNewClientRequiresRegionWithoutOverride(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Fatal("expected error when region missing")
	}
}
