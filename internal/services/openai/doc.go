// Package openai wraps an OpenAI-compatible chat completion API and carries
// the prompt templates for every generated content kind.
package openai
