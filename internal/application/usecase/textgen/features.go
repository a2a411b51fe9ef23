package textgen

import (
	"sort"
	"text/template"

	"github.com/xeipuuv/gojsonschema"
)

// Feature is one generator: a prompt template over free-form string
// parameters and the schema its reply must satisfy.
type Feature struct {
	Name   string
	prompt *template.Template
	schema *gojsonschema.Schema
}

var catalog = map[string]*Feature{}

func register(name, prompt, schema string) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic("textgen: schema for " + name + ": " + err.Error())
	}
	catalog[name] = &Feature{
		Name:   name,
		prompt: template.Must(template.New(name).Option("missingkey=zero").Parse(prompt)),
		schema: s,
	}
}

// Features lists the registered feature names in lexical order.
func Features() []string {
	names := make([]string, 0, len(catalog))
	for n := range catalog {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func init() {
	register("jokes", jokesPrompt, jokesSchema)
	register("quotes", quotesPrompt, quotesSchema)
	register("nicknames", nicknamesPrompt, nicknamesSchema)
	register("names", namesPrompt, namesSchema)
	register("blog-ideas", blogIdeasPrompt, blogIdeasSchema)
	register("birthday-wishes", birthdayPrompt, birthdaySchema)
	register("instagram-captions", captionsPrompt, captionsSchema)
	register("event-captions", eventCaptionsPrompt, stringListSchema)
	register("gift-messages", giftPrompt, stringListSchema)
	register("letter", letterPrompt, letterSchema)
	register("speech", speechPrompt, speechSchema)
	register("story", storyPrompt, storySchema)
	register("creative-writing", creativePrompt, creativeSchema)
}

const jokesPrompt = `Generate 6 family-friendly, appropriate jokes based on these parameters:
- Joke Type: {{or .JokeType "Any"}}
- Target Audience: {{or .Audience "Everyone"}}
- Topic: {{or .Topic "Anything"}}
- Style: {{or .Style "Playful"}}
- Language: {{or .Language "English"}}

All jokes must be appropriate for all ages. Avoid stereotypes, appearances, violence and adult themes.

Return only a JSON array. Each element is one of:
{"type": "standard", "setup": "...", "punchline": "..."}
{"type": "oneliner", "content": "..."}
{"type": "riddle", "question": "...", "answer": "..."}
Non-English jokes add a "translation" field with the English translation.`

const jokesSchema = `{
  "type": "array",
  "minItems": 1,
  "items": {
    "oneOf": [
      {
        "type": "object",
        "properties": {"type": {"const": "standard"}, "setup": {"type": "string"}, "punchline": {"type": "string"}, "translation": {"type": "string"}},
        "required": ["type", "setup", "punchline"]
      },
      {
        "type": "object",
        "properties": {"type": {"const": "oneliner"}, "content": {"type": "string"}, "translation": {"type": "string"}},
        "required": ["type", "content"]
      },
      {
        "type": "object",
        "properties": {"type": {"const": "riddle"}, "question": {"type": "string"}, "answer": {"type": "string"}, "translation": {"type": "string"}},
        "required": ["type", "question", "answer"]
      }
    ]
  }
}`

const quotesPrompt = `Generate 5 unique quotes with these parameters:
- Category: {{or .Category "Inspiration"}}
- Mood: {{or .Mood "Uplifting"}}
- Target Audience: {{or .Audience "General"}}
- Topic/Theme: {{or .Topic "Life"}}
- Context: {{or .Context "None"}}

Each quote must be original, memorable and relevant to the audience.

Return only JSON of the form:
{"quotes": [{"text": "...", "analysis": "...", "usage": "..."}]}`

const quotesSchema = `{
  "type": "object",
  "properties": {
    "quotes": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "properties": {"text": {"type": "string"}, "analysis": {"type": "string"}, "usage": {"type": "string"}},
        "required": ["text"]
      }
    }
  },
  "required": ["quotes"]
}`

const nicknamesPrompt = `Generate 10 unique, culturally appropriate nicknames for a person:
- Name: {{.Name}}
- Age: {{or .Age "unknown"}}
- Gender: {{or .Gender "unspecified"}}
- Nature/Personality: {{or .Nature "friendly"}}
- Relationship: {{or .Relationship "friend"}}

Each nickname must be derived from the name "{{.Name}}", respect its cultural origin and suit the relationship.

Return only JSON of the form:
{"nicknames": [{"nickname": "...", "meaning": "..."}]}`

const nicknamesSchema = `{
  "type": "object",
  "properties": {
    "nicknames": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "properties": {"nickname": {"type": "string"}, "meaning": {"type": "string"}},
        "required": ["nickname", "meaning"]
      }
    }
  },
  "required": ["nicknames"]
}`

const namesPrompt = `Generate 10 unique baby names that are {{or .Gender "unisex"}} names
{{- with .Country}} popular in {{.}}{{end}}
{{- with .Types}} and are considered {{.}}{{end}}
{{- with .StartingLetter}} starting with the letter {{.}}{{end}}
{{- with .Themes}}. The names should be related to {{.}}{{end}}.
For each name, provide its meaning and cultural significance.

Return only JSON of the form:
{"names": [{"name": "...", "meaning": "...", "significance": "..."}]}`

const namesSchema = `{
  "type": "object",
  "properties": {
    "names": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "properties": {"name": {"type": "string"}, "meaning": {"type": "string"}, "significance": {"type": "string"}},
        "required": ["name", "meaning"]
      }
    }
  },
  "required": ["names"]
}`

const blogIdeasPrompt = `Generate 5 blog post ideas based on these parameters:

Blog Name: {{or .BlogName "Not specified"}}
Niche: {{or .Niche "Not specified"}}
Target Audience: {{or .Audience "Not specified"}}
Tone: {{or .Tone "Not specified"}}
Keywords: {{or .Keywords "Not specified"}}

Return only a JSON array of objects with this structure:
{"title": "string", "description": "string", "outline": ["string"], "keywords": ["string"],
 "estimatedWordCount": number, "targetAudience": "string", "suggestedImages": ["string"]}`

const blogIdeasSchema = `{
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "properties": {
      "title": {"type": "string"},
      "description": {"type": "string"},
      "outline": {"type": "array", "items": {"type": "string"}},
      "keywords": {"type": "array", "items": {"type": "string"}},
      "estimatedWordCount": {"type": "number"},
      "targetAudience": {"type": "string"},
      "suggestedImages": {"type": "array", "items": {"type": "string"}}
    },
    "required": ["title", "description", "outline"]
  }
}`

const birthdayPrompt = `Generate 10 unique and creative birthday wishes:
- Name: {{.Name}}
- Age: {{or .Age "unknown"}}
- Language: {{or .Language "English"}}
- Type of Wish: {{or .WishType "Heartfelt"}}
- Relationship: {{or .Relationship "Friend"}}
- Special Occasion: {{or .Occasion "Regular Birthday"}}

Make each wish personal and age-appropriate. Non-English wishes include a pronunciation guide.

Return only a JSON array of strings, containing just the wishes.`

const birthdaySchema = stringListSchema

// stringListSchema accepts a non-empty array of non-empty strings.
const stringListSchema = `{
  "type": "array",
  "minItems": 1,
  "items": {"type": "string", "minLength": 1}
}`

const captionsPrompt = `Generate 5 Instagram captions for a photo:
- Length: {{or .Length "short"}}
- Background: {{or .Background "none"}}
- Group photo: {{or .GroupPhoto "no"}}
{{- with .GroupMembers}}
- Group members: {{.}}{{end}}
- Gender: {{or .Gender "unspecified"}}
- Mood: {{or .Mood "happy"}}

Short captions stay under 15 words, long ones under 60. Add up to 3 relevant hashtags and emojis where they fit.

Return only JSON of the form:
{"captions": [{"caption": "...", "hashtags": ["#..."]}]}`

const captionsSchema = `{
  "type": "object",
  "properties": {
    "captions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "properties": {"caption": {"type": "string", "minLength": 1}, "hashtags": {"type": "array", "items": {"type": "string"}}},
        "required": ["caption"]
      }
    }
  },
  "required": ["captions"]
}`

const eventCaptionsPrompt = `Create 8 professional and appropriate social media captions for a {{or .EventType "community"}} event.

Event Details:
- Event Name: {{.EventName}}
- Location: {{or .Location "Not specified"}}
- Atmosphere: {{or .Mood "Friendly"}}
- Intended Audience: {{or .Audience "General"}}
- Writing Style: {{or .Style "Informative"}}
- Communication Tone: {{or .Tone "Professional"}}
- Preferred Language: {{or .Language "English"}}
- Hashtag Amount: {{or .Hashtags "Few"}}

Keep the language inclusive and concise, mention the location where relevant and add a call to action when it fits.

Return only a JSON array of strings, containing just the captions.`

const giftPrompt = `Generate 8 unique, thoughtful gift messages:
- Recipient Name: {{.RecipientName}}
- Age: {{or .Age "unknown"}}
- Occasion: {{or .Occasion "Just Because"}}
- Gift Type: {{or .GiftType "Not specified"}}
- Relationship: {{or .Relationship "Friend"}}
- Tone: {{or .Tone "Warm"}}
- Language: {{or .Language "English"}}
- Sentiment Level: {{or .Sentiment "Moderate"}}

Mention the gift with subtlety and focus on its meaning rather than its value. Non-English messages include pronunciation in parentheses.

Return only a JSON array of strings, containing just the messages.`

const letterPrompt = `Generate a {{or .LetterType "formal letter"}} with the following details:
From: {{.SenderName}}{{with .SenderTitle}} ({{.}}){{end}}{{with .SenderOrganization}}, {{.}}{{end}}
To: {{.RecipientName}}{{with .RecipientTitle}} ({{.}}){{end}}{{with .RecipientOrganization}}, {{.}}{{end}}
Subject: {{.Subject}}
{{- with .Date}}
Date: {{.}}{{end}}
Language: {{or .Language "English"}}
Tone: {{or .Tone "Professional"}}
Format: {{or .Format "Block"}}

Purpose: {{.Purpose}}
{{- with .Details}}
Additional Details: {{.}}{{end}}

Return only JSON of the form:
{"content": "the complete letter text", "formatting": "formatting instructions"}`

const letterSchema = `{
  "type": "object",
  "properties": {"content": {"type": "string", "minLength": 1}, "formatting": {"type": "string"}},
  "required": ["content"]
}`

const speechPrompt = `Create a respectful, professional speech suitable for all audiences.

Speech Parameters:
- Event Type: {{or .Occasion "General gathering"}}
- Audience: {{or .Audience "General"}}
- Speaking Style: {{or .Tone "Warm"}}
- Length: {{or .Duration "5 minutes"}}
- Speaker Position: {{or .SpeakerRole "Guest"}}
- Preferred Language: {{or .Language "English"}}
- Main Subject: {{.Topic}}
- Essential Points: {{or .KeyPoints "None"}}
- Additional Elements: {{or .Elements "None"}}

Structure it with a welcoming introduction, clear main points, supporting examples and a positive conclusion.

Return only JSON of the form:
{"versions": [{"speech": "...", "speakerNotes": "..."}]}`

const speechSchema = `{
  "type": "object",
  "properties": {
    "versions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "properties": {"speech": {"type": "string", "minLength": 1}, "speakerNotes": {"type": "string"}},
        "required": ["speech"]
      }
    }
  },
  "required": ["versions"]
}`

const storyPrompt = `Generate a family-friendly story:
- Genre: {{or .Genre "Adventure"}}
- Target Audience: {{or .Audience "Children"}}
- Length: {{or .Length "Short"}}
- Setting: {{or .Setting "Anywhere"}}
- Theme: {{or .Theme "Friendship"}}
- Main Character Type: {{or .Character "Child"}}
- Mood: {{or .Mood "Cheerful"}}
- Language: {{or .Language "English"}}

Keep it age-appropriate with no violence or frightening scenes. Give it a clear beginning, middle and end, a relatable main character and a positive lesson. Put each speaker's dialog on a new line.

Return only JSON of the form:
{"title": "...", "story": "...", "translation": "English translation when the story is not in English"}`

const storySchema = `{
  "type": "object",
  "properties": {"title": {"type": "string"}, "story": {"type": "string", "minLength": 1}, "translation": {"type": "string"}},
  "required": ["title", "story"]
}`

const creativePrompt = `Create a creative writing piece:
- Content Type: {{or .ContentType "Short story"}}
- Genre: {{or .Genre "Literary"}}
- Writing Style: {{or .Style "Descriptive"}}
- Length: {{or .Length "Short"}}
- Target Audience: {{or .Audience "General"}}
- Theme: {{or .Theme "Hope"}}
- Tone: {{or .Tone "Reflective"}}
- Main Idea: {{.MainIdea}}
{{- with .Details}}
- Additional Details: {{.}}{{end}}
{{- with .Elements}}
- Literary Elements to Include: {{.}}{{end}}

Open with a strong hook, develop the ideas with vivid language and close with a satisfying conclusion.

Return only JSON of the form:
{"versions": [{"content": "...", "notes": "writing techniques used", "outline": "structure and key elements"}]}`

const creativeSchema = `{
  "type": "object",
  "properties": {
    "versions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "properties": {"content": {"type": "string", "minLength": 1}, "notes": {"type": "string"}, "outline": {"type": "string"}},
        "required": ["content"]
      }
    }
  },
  "required": ["versions"]
}`
