package education

// Chapter is a unit of content with completion flags for its theory and quiz parts.
type Chapter struct {
	ChapterID         int    `json:"chapterId" yaml:"chapterId"`
	Title             string `json:"title" yaml:"title"`
	IsTheoryCompleted bool   `json:"isTheoryCompleted" yaml:"isTheoryCompleted"`
	IsQuizCompleted   bool   `json:"isQuizCompleted" yaml:"isQuizCompleted"`
}

type TheoryItem struct {
	ID      int    `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// TheoryBundle is returned when a client enters the theory section of a chapter.
type TheoryBundle struct {
	ChapterID       int          `json:"chapterId"`
	ChapterTitle    string       `json:"chapterTitle"`
	CurrentTheoryID int          `json:"currentTheoryId"`
	Theories        []TheoryItem `json:"theories"`
}
