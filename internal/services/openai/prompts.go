package openai

// Prompt templates for the content kinds the pipeline generates. Each takes
// the combined study material and returns a ready-to-send prompt.

// SummaryPrompt asks for a concise study summary.
func SummaryPrompt(material string) string {
	return `Summarize the following study materials clearly and concisely.
Focus on key concepts and important takeaways.

Materials:
` + material
}

// PodcastPrompt asks for a strict two-speaker dialogue script with
// [[SECTION_BREAK]] markers between major topics.
func PodcastPrompt(material string) string {
	return `You are an educational podcast writer.

Create a spoken, TWO-SPEAKER podcast script based on the study material below.

STRICT FORMAT RULES (you MUST follow these exactly):
- Every spoken line MUST start with either "A:" or "B:"
- Speakers A and B should alternate naturally, like a real conversation
- Write in clear, natural spoken English
- Use normal punctuation (commas, periods, question marks)
- Each line should be one speaker talking (no long paragraphs)
- When transitioning to a NEW MAJOR TOPIC or SECTION, insert the token [[SECTION_BREAK]] on its own line
- Do NOT insert [[SECTION_BREAK]] inside a sentence
- Do NOT include stage directions (no "intro music", "host", "your name", etc.)
- Do NOT label sections or topics
- Do NOT explain that breaks exist
- Do NOT mention speaker names beyond "A:" and "B:"
- Do NOT include anything except the spoken dialogue and [[SECTION_BREAK]]

STYLE & TONE:
- Calm, professional, and engaging
- Designed for a student listener
- Smooth explanations, not robotic
- Sounds like two people teaching together, not reading notes

Study material:

` + material
}

// NarrationPrompt asks for a plain single-voice narration script using the
// same [[SECTION_BREAK]] convention so pauses land between topics.
func NarrationPrompt(material string) string {
	return `You are an audiobook narrator preparing a spoken study guide.

Rewrite the study material below as flowing spoken narration.

RULES:
- Plain spoken English, complete sentences
- No headings, bullet lists, or markdown
- When moving to a NEW MAJOR TOPIC, insert the token [[SECTION_BREAK]] on its own line
- Do NOT include anything except the narration text and [[SECTION_BREAK]]

Study material:

` + material
}

// SlidesPrompt asks for a slide outline in the "Slide N:" line format the
// slide parser understands.
func SlidesPrompt(material string) string {
	return `You are a teacher creating a slideshow for students.

Convert the study material below into a slideshow outline.

STRICT RULES:
- Each slide must have a short, clear title
- Bullet points must be short and student-friendly
- No paragraphs
- No extra commentary
- Do not repeat ideas across slides

LENIENT RULES:
- Have around 4 bullets per slide (strictly between 3 and 5)
- Create enough slides to cover all key concepts
- For each slide, also provide a short visual description suitable for an illustration.

REQUIRED FORMAT (VERY IMPORTANT FOLLOW EXACTLY):

Slide 1: Title here
- Bullet 1
- Bullet 2
- Bullet 3
- Bullet 4
Image: short description of an illustration

Slide 2: Title here
- Bullet 1
- Bullet 2
- Bullet 3
- Bullet 4
Image: short description of an illustration

Study material:

` + material
}

// ScenesPrompt asks for a video scene outline in the delimiter-separated
// Narration:/Illustration: format the scene parser understands.
func ScenesPrompt(material string) string {
	return `You are a scriptwriter turning study material into a short narrated video.

Break the material below into 4-8 scenes. Each scene has spoken narration and
one illustration idea.

REQUIRED FORMAT (VERY IMPORTANT FOLLOW EXACTLY):

Narration: two or three spoken sentences for this scene
Illustration: short description of a single illustrative image
---
Narration: two or three spoken sentences for the next scene
Illustration: short description of a single illustrative image
---

RULES:
- Separate scenes with a line containing only ---
- Every scene needs BOTH a Narration and an Illustration line
- No scene numbers, headings, or commentary

Study material:

` + material
}

// QuizPrompt asks for a five-question multiple-choice quiz as structured JSON.
func QuizPrompt(material string) string {
	return `You are a quiz master for students.

Generate a 5-question multiple-choice quiz based on the study material below.

STRICT RULES:
- Each question must have 4 answer choices labeled A, B, C, and D.
- Only one answer choice is correct per question.
- Do not provide explanations for the answers.
- Do not include any commentary or additional text.

Respond with JSON only, in this shape:

{"questions": [{"question": "...", "choices": {"A": "...", "B": "...", "C": "...", "D": "..."}, "answer": "A"}]}

Study material:

` + material
}
