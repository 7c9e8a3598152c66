package curriculum

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validPackJSON = `{
  "version": 1,
  "sections": [
    {
      "id": "s1",
      "title": "Starter",
      "units": [
        {"id": "u1", "title": "Unit 1", "lessons": ["a", "b", "c", "d"]}
      ]
    }
  ],
  "lessons": [
    {
      "id": "a", "title": "A", "description": "first", "type": "practice",
      "category": "line-work", "difficulty": "beginner",
      "estimated_mins": 5, "xp_reward": 50,
      "steps": [{"id": "a1", "title": "Do A", "instructions": "draw", "duration_mins": 5, "required": true}],
      "unlocks": ["b"]
    },
    {
      "id": "b", "title": "B", "description": "second", "type": "practice",
      "category": "shapes-and-form", "difficulty": "beginner",
      "estimated_mins": 5, "xp_reward": 50,
      "steps": [{"id": "b1", "title": "Do B", "instructions": "draw", "duration_mins": 5, "required": true, "threshold": 0.85}],
      "prerequisites": ["a"], "unlocks": ["c"]
    },
    {
      "id": "c", "title": "C", "description": "third", "type": "theory",
      "category": "light-and-shading", "difficulty": "intermediate",
      "estimated_mins": 10, "xp_reward": 75,
      "steps": [{"id": "c1", "title": "Do C", "instructions": "study", "duration_mins": 10, "required": true}],
      "prerequisites": ["b"], "unlocks": ["d"]
    },
    {
      "id": "d", "title": "D", "description": "fourth", "type": "challenge",
      "category": "perspective", "difficulty": "advanced",
      "estimated_mins": 15, "xp_reward": 100,
      "steps": [{"id": "d1", "title": "Do D", "instructions": "draw", "duration_mins": 15, "required": true}],
      "prerequisites": ["c"]
    }
  ]
}`

func TestParsePack_ValidPack(t *testing.T) {
	content, err := ParsePack([]byte(validPackJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g, err := New(content)
	if err != nil {
		t.Fatalf("parsed pack should build a graph: %v", err)
	}
	if got := len(g.Lessons()); got != 4 {
		t.Errorf("got %d lessons, want 4", got)
	}

	b, err := g.Lesson("b")
	if err != nil {
		t.Fatalf("lesson b missing: %v", err)
	}
	if b.Steps[0].CompletionThreshold() != 0.85 {
		t.Errorf("step threshold = %f, want 0.85", b.Steps[0].CompletionThreshold())
	}
	if b.XPReward != 50 {
		t.Errorf("xp_reward = %d, want 50", b.XPReward)
	}
}

func TestParsePack_RejectsMalformedJSON(t *testing.T) {
	_, err := ParsePack([]byte(`{not json`))
	if err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
	if !strings.Contains(err.Error(), "invalid pack JSON") {
		t.Errorf("error should mention invalid JSON, got: %v", err)
	}
}

func TestParsePack_SchemaRejectsMissingField(t *testing.T) {
	// Drop the required xp_reward from lesson a.
	raw := strings.Replace(validPackJSON, `"xp_reward": 50,`, "", 1)
	_, err := ParsePack([]byte(raw))
	if err == nil {
		t.Fatal("expected schema error for missing xp_reward, got nil")
	}
	if !strings.Contains(err.Error(), "schema validation failed") {
		t.Errorf("error should come from schema validation, got: %v", err)
	}
}

func TestParsePack_SchemaRejectsBadEnum(t *testing.T) {
	raw := strings.Replace(validPackJSON, `"type": "practice"`, `"type": "quiz"`, 1)
	_, err := ParsePack([]byte(raw))
	if err == nil {
		t.Fatal("expected schema error for unknown lesson type, got nil")
	}
}

func TestParsePack_SchemaRejectsUnknownField(t *testing.T) {
	raw := strings.Replace(validPackJSON, `"version": 1,`, `"version": 1, "extra": true,`, 1)
	_, err := ParsePack([]byte(raw))
	if err == nil {
		t.Fatal("expected schema error for unknown top-level field, got nil")
	}
}

func TestLoadPack_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.json")
	if err := os.WriteFile(path, []byte(validPackJSON), 0o644); err != nil {
		t.Fatalf("write pack: %v", err)
	}

	content, err := LoadPack(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(content.Lessons) != 4 {
		t.Errorf("got %d lessons, want 4", len(content.Lessons))
	}
}

func TestLoadPack_MissingFile(t *testing.T) {
	_, err := LoadPack(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
