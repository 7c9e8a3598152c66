package curriculum

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Pack file DTOs. The JSON wire format stays decoupled from the domain
// types so the curriculum can evolve without breaking shipped packs.

type packFile struct {
	Version  int           `json:"version"`
	Sections []packSection `json:"sections"`
	Lessons  []packLesson  `json:"lessons"`
}

type packSection struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Units []packUnit `json:"units"`
}

type packUnit struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []string `json:"lessons"`
}

type packLesson struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Type          string     `json:"type"`
	Category      string     `json:"category"`
	Difficulty    string     `json:"difficulty"`
	EstimatedMins int        `json:"estimated_mins"`
	XPReward      int        `json:"xp_reward"`
	Steps         []packStep `json:"steps"`
	Prerequisites []string   `json:"prerequisites,omitempty"`
	Unlocks       []string   `json:"unlocks,omitempty"`
}

type packStep struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Instructions string  `json:"instructions"`
	DurationMins int     `json:"duration_mins"`
	Required     bool    `json:"required"`
	Threshold    float64 `json:"threshold,omitempty"`
}

// packSchema is the JSON Schema every pack file must satisfy before the
// structural DAG validation runs. Schema failures produce precise field
// errors; DAG failures produce IntegrityError.
var packSchema = map[string]any{
	"type":     "object",
	"required": []any{"version", "sections", "lessons"},
	"properties": map[string]any{
		"version": map[string]any{"type": "integer", "minimum": 1},
		"sections": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "title", "units"},
				"properties": map[string]any{
					"id":    map[string]any{"type": "string", "minLength": 1},
					"title": map[string]any{"type": "string", "minLength": 1},
					"units": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type":     "object",
							"required": []any{"id", "title", "lessons"},
							"properties": map[string]any{
								"id":      map[string]any{"type": "string", "minLength": 1},
								"title":   map[string]any{"type": "string", "minLength": 1},
								"lessons": map[string]any{"type": "array", "minItems": 1, "items": map[string]any{"type": "string"}},
							},
							"additionalProperties": false,
						},
					},
				},
				"additionalProperties": false,
			},
		},
		"lessons": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "title", "description", "type", "category", "difficulty", "estimated_mins", "xp_reward", "steps"},
				"properties": map[string]any{
					"id":             map[string]any{"type": "string", "minLength": 1},
					"title":          map[string]any{"type": "string", "minLength": 1},
					"description":    map[string]any{"type": "string"},
					"type":           map[string]any{"type": "string", "enum": []any{"practice", "theory", "challenge"}},
					"category":       map[string]any{"type": "string"},
					"difficulty":     map[string]any{"type": "string", "enum": []any{"beginner", "intermediate", "advanced"}},
					"estimated_mins": map[string]any{"type": "integer", "minimum": 1},
					"xp_reward":      map[string]any{"type": "integer", "minimum": 1},
					"steps": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type":     "object",
							"required": []any{"id", "title", "instructions", "duration_mins", "required"},
							"properties": map[string]any{
								"id":            map[string]any{"type": "string", "minLength": 1},
								"title":         map[string]any{"type": "string", "minLength": 1},
								"instructions":  map[string]any{"type": "string"},
								"duration_mins": map[string]any{"type": "integer", "minimum": 1},
								"required":      map[string]any{"type": "boolean"},
								"threshold":     map[string]any{"type": "number", "minimum": 0, "maximum": 1},
							},
							"additionalProperties": false,
						},
					},
					"prerequisites": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"unlocks":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
				"additionalProperties": false,
			},
		},
	},
	"additionalProperties": false,
}

// LoadPack reads and validates a curriculum pack file.
func LoadPack(path string) (Content, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("read pack: %w", err)
	}
	return ParsePack(raw)
}

// ParsePack validates raw pack JSON against the schema and maps it to
// Content. The structural DAG checks run later, in New.
func ParsePack(raw []byte) (Content, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Content{}, fmt.Errorf("invalid pack JSON: %w", err)
	}

	compiled, err := compilePackSchema()
	if err != nil {
		return Content{}, fmt.Errorf("compile pack schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return Content{}, fmt.Errorf("pack schema validation failed: %w", err)
	}

	var pf packFile
	if err := json.Unmarshal(raw, &pf); err != nil {
		return Content{}, fmt.Errorf("decode pack: %w", err)
	}
	return pf.toContent(), nil
}

func compilePackSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(packSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://curriculum-pack.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}

func (pf packFile) toContent() Content {
	c := Content{}

	for _, ps := range pf.Sections {
		sec := Section{ID: ps.ID, Title: ps.Title}
		for _, pu := range ps.Units {
			sec.Units = append(sec.Units, Unit{
				ID:        pu.ID,
				Title:     pu.Title,
				LessonIDs: pu.Lessons,
			})
		}
		c.Sections = append(c.Sections, sec)
	}

	for _, pl := range pf.Lessons {
		l := Lesson{
			ID:            pl.ID,
			Title:         pl.Title,
			Description:   pl.Description,
			Type:          LessonType(pl.Type),
			Category:      Category(pl.Category),
			Difficulty:    Difficulty(pl.Difficulty),
			EstimatedMins: pl.EstimatedMins,
			XPReward:      pl.XPReward,
			Prerequisites: pl.Prerequisites,
			Unlocks:       pl.Unlocks,
		}
		for _, st := range pl.Steps {
			l.Steps = append(l.Steps, Step{
				ID:           st.ID,
				Title:        st.Title,
				Instructions: st.Instructions,
				DurationMins: st.DurationMins,
				Required:     st.Required,
				Threshold:    st.Threshold,
			})
		}
		c.Lessons = append(c.Lessons, l)
	}

	return c
}
