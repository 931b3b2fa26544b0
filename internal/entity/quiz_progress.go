package entity

// QuizProgress is the resumable cursor of a level's quiz.
type QuizProgress struct {
	Level        int        `json:"level"`
	CurrentIndex int        `json:"currentIndex"`
	TotalWords   int        `json:"totalWords"`
	Stats        LevelStats `json:"stats"`
}
