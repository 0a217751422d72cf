package config

const (
	defaultUploadDir    = "~/.local/share/coursecast/uploads"
	defaultConvertedDir = "~/.local/share/coursecast/converted"
	defaultLogDir       = "~/.local/share/coursecast/logs"
	defaultSceneDir     = "~/.local/share/coursecast/scenes"

	defaultLLMBaseURL       = "https://api.openai.com/v1"
	defaultLLMModel         = "gpt-4o-mini"
	defaultLLMTimeout       = 60
	defaultImagesBaseURL    = "https://api.openai.com/v1"
	defaultImagesModel      = "dall-e-3"
	defaultImageSize        = "1024x1024"
	defaultImageQuality     = "standard"
	defaultSpeechRegion     = "us-east-1"
	defaultSpeechEngine     = "generative"
	defaultSpeechMaxChars   = 2500
	defaultVideoWidth       = 1280
	defaultVideoHeight      = 720
	defaultVideoFrameRate   = 1
	defaultWorkers          = 2
	defaultPollInterval     = 5
	defaultNtfyTimeout      = 10
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultSceneBucket      = "coursecast-video-scenes"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			UploadDir:    defaultUploadDir,
			ConvertedDir: defaultConvertedDir,
			LogDir:       defaultLogDir,
		},
		LLM: LLM{
			BaseURL:        defaultLLMBaseURL,
			Model:          defaultLLMModel,
			TimeoutSeconds: defaultLLMTimeout,
		},
		Speech: Speech{
			Region:          defaultSpeechRegion,
			Engine:          defaultSpeechEngine,
			PodcastVoices:   []string{"Matthew", "Danielle", "Joanna"},
			NarrationVoices: []string{"Matthew", "Joanna", "Stephen"},
			MaxChars:        defaultSpeechMaxChars,
		},
		Images: Images{
			BaseURL: defaultImagesBaseURL,
			Model:   defaultImagesModel,
			Size:    defaultImageSize,
			Quality: defaultImageQuality,
		},
		Scenes: SceneStorage{
			Backend: "local",
			Dir:     defaultSceneDir,
			Bucket:  defaultSceneBucket,
		},
		FFmpeg: FFmpeg{
			FFmpegBin:  "ffmpeg",
			FFprobeBin: "ffprobe",
			Width:      defaultVideoWidth,
			Height:     defaultVideoHeight,
			FrameRate:  defaultVideoFrameRate,
		},
		Workflow: Workflow{
			Workers:      defaultWorkers,
			PollInterval: defaultPollInterval,
		},
		Notifications: Notifications{
			TimeoutSeconds: defaultNtfyTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
