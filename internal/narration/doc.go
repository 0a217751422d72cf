// Package narration turns scripts into spoken audio. It selects voices,
// wraps text in SSML for pacing, and drives a speech synthesizer per
// dialogue line or text chunk, concatenating the MP3 segments in order.
package narration
