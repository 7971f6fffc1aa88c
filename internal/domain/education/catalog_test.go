package education

import (
	"strconv"
	"strings"
	"testing"
)

func mustDefault(t *testing.T) *Catalog {
	t.Helper()
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	return c
}

func TestDefaultCatalogChapters(t *testing.T) {
	t.Parallel()
	chapters := mustDefault(t).Chapters()

	want := []struct {
		id     int
		theory bool
		quiz   bool
	}{
		{1, false, false},
		{2, true, false},
		{3, false, false},
		{4, false, false},
	}
	if len(chapters) != len(want) {
		t.Fatalf("chapters=%d want=%d", len(chapters), len(want))
	}
	for i, w := range want {
		ch := chapters[i]
		if ch.ChapterID != w.id || ch.IsTheoryCompleted != w.theory || ch.IsQuizCompleted != w.quiz {
			t.Fatalf("chapter[%d]=%+v want id=%d theory=%v quiz=%v", i, ch, w.id, w.theory, w.quiz)
		}
		if strings.TrimSpace(ch.Title) == "" {
			t.Fatalf("chapter[%d] has empty title", i)
		}
	}
	if chapters[0].Title != "🚀 주식 기초 이해하기 (실제 API 데이터!)" {
		t.Fatalf("chapter[0].title=%q", chapters[0].Title)
	}
}

func TestChaptersReturnsCopies(t *testing.T) {
	t.Parallel()
	c := mustDefault(t)

	first := c.Chapters()
	first[0].Title = "mutated"
	first[1].IsQuizCompleted = true

	second := c.Chapters()
	if second[0].Title == "mutated" || second[1].IsQuizCompleted {
		t.Fatalf("catalog state leaked through a returned slice: %+v", second[:2])
	}
}

func TestEnterTheoryEchoesChapterID(t *testing.T) {
	t.Parallel()
	c := mustDefault(t)

	for _, id := range []int{7, 0, -3, 1} {
		b := c.EnterTheory(id)
		if b.ChapterID != id {
			t.Fatalf("chapterId=%d want=%d", b.ChapterID, id)
		}
		if want := "챕터 " + strconv.Itoa(id) + " 이론"; !strings.Contains(b.ChapterTitle, want) {
			t.Fatalf("chapterTitle=%q want substring %q", b.ChapterTitle, want)
		}
		if b.CurrentTheoryID != 101 {
			t.Fatalf("currentTheoryId=%d", b.CurrentTheoryID)
		}
		if len(b.Theories) != 2 || b.Theories[0].ID != 101 || b.Theories[1].ID != 102 {
			t.Fatalf("unexpected theories: %+v", b.Theories)
		}
	}
}

func TestEnterTheoryReturnsFreshItems(t *testing.T) {
	t.Parallel()
	c := mustDefault(t)

	b := c.EnterTheory(1)
	b.Theories[0].Content = "mutated"

	if got := c.EnterTheory(1).Theories[0].Content; got == "mutated" {
		t.Fatal("theory template leaked through a returned bundle")
	}
}

func TestParseCatalogValidation(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		raw  string
	}{
		{"not yaml", "chapters: [\n"},
		{"no chapters", "theory:\n  chapterTitleFormat: \"c %d\"\n  items:\n    - id: 1\n"},
		{"duplicate chapter", `
chapters:
  - {chapterId: 1, title: a}
  - {chapterId: 1, title: b}
theory:
  chapterTitleFormat: "c %d"
  items: [{id: 1}]
`},
		{"empty title", `
chapters:
  - {chapterId: 1, title: " "}
theory:
  chapterTitleFormat: "c %d"
  items: [{id: 1}]
`},
		{"format without verb", `
chapters:
  - {chapterId: 1, title: a}
theory:
  chapterTitleFormat: "chapter"
  items: [{id: 1}]
`},
		{"format with extra verb", `
chapters:
  - {chapterId: 1, title: a}
theory:
  chapterTitleFormat: "chapter %d %s"
  items: [{id: 1}]
`},
		{"no items", `
chapters:
  - {chapterId: 1, title: a}
theory:
  chapterTitleFormat: "c %d"
`},
		{"duplicate item", `
chapters:
  - {chapterId: 1, title: a}
theory:
  chapterTitleFormat: "c %d"
  items: [{id: 1}, {id: 1}]
`},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ParseCatalog([]byte(tc.raw)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
