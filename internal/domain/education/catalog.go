package education

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

type catalogSpec struct {
	Chapters []Chapter          `yaml:"chapters"`
	Theory   theoryTemplateSpec `yaml:"theory"`
}

type theoryTemplateSpec struct {
	ChapterTitleFormat string       `yaml:"chapterTitleFormat"`
	CurrentTheoryID    int          `yaml:"currentTheoryId"`
	Items              []TheoryItem `yaml:"items"`
}

// Catalog holds the static chapter list and theory template. It is read-only
// after construction and safe for concurrent use; every accessor returns copies.
type Catalog struct {
	chapters []Chapter
	theory   theoryTemplateSpec
}

// DefaultCatalog parses the embedded fixture.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogYAML)
}

func ParseCatalog(raw []byte) (*Catalog, error) {
	var spec catalogSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := spec.validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &Catalog{
		chapters: append([]Chapter(nil), spec.Chapters...),
		theory: theoryTemplateSpec{
			ChapterTitleFormat: spec.Theory.ChapterTitleFormat,
			CurrentTheoryID:    spec.Theory.CurrentTheoryID,
			Items:              append([]TheoryItem(nil), spec.Theory.Items...),
		},
	}, nil
}

func (s catalogSpec) validate() error {
	if len(s.Chapters) == 0 {
		return errors.New("at least one chapter is required")
	}
	seen := make(map[int]struct{}, len(s.Chapters))
	for _, ch := range s.Chapters {
		if strings.TrimSpace(ch.Title) == "" {
			return fmt.Errorf("chapter %d has an empty title", ch.ChapterID)
		}
		if _, dup := seen[ch.ChapterID]; dup {
			return fmt.Errorf("duplicate chapterId %d", ch.ChapterID)
		}
		seen[ch.ChapterID] = struct{}{}
	}

	format := s.Theory.ChapterTitleFormat
	if strings.Count(format, "%d") != 1 || strings.Count(format, "%") != 1 {
		return fmt.Errorf("theory.chapterTitleFormat must contain exactly one %%d, got %q", format)
	}
	if len(s.Theory.Items) == 0 {
		return errors.New("at least one theory item is required")
	}
	ids := make(map[int]struct{}, len(s.Theory.Items))
	for _, it := range s.Theory.Items {
		if _, dup := ids[it.ID]; dup {
			return fmt.Errorf("duplicate theory id %d", it.ID)
		}
		ids[it.ID] = struct{}{}
	}
	return nil
}

// Chapters returns the chapter list in fixture order.
func (c *Catalog) Chapters() []Chapter {
	return append([]Chapter(nil), c.chapters...)
}

// EnterTheory builds the theory bundle for chapterID. Only chapterId and
// chapterTitle depend on the argument; unknown ids are echoed, not rejected.
func (c *Catalog) EnterTheory(chapterID int) TheoryBundle {
	return TheoryBundle{
		ChapterID:       chapterID,
		ChapterTitle:    fmt.Sprintf(c.theory.ChapterTitleFormat, chapterID),
		CurrentTheoryID: c.theory.CurrentTheoryID,
		Theories:        append([]TheoryItem(nil), c.theory.Items...),
	}
}
