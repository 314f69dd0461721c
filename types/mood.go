package types

import "strings"

type MoodType string

const (
	MoodVeryHappy MoodType = "VERY_HAPPY"
	MoodHappy     MoodType = "HAPPY"
	MoodNeutral   MoodType = "NEUTRAL"
	MoodSad       MoodType = "SAD"
	MoodVerySad   MoodType = "VERY_SAD"
)

var moodValues = map[MoodType]int{
	MoodVeryHappy: 5,
	MoodHappy:     4,
	MoodNeutral:   3,
	MoodSad:       2,
	MoodVerySad:   1,
}

// Value maps the mood onto the 1..5 scale; unknown moods are 0.
func (m MoodType) Value() int {
	return moodValues[m]
}

func (m MoodType) Valid() bool {
	_, ok := moodValues[m]
	return ok
}

// ParseMood accepts any case and dashes or spaces for underscores.
func ParseMood(s string) (MoodType, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	m := MoodType(s)
	return m, m.Valid()
}

type MoodEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Mood      MoodType  `json:"mood"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt Timestamp `json:"createdAt"`
}

func (m MoodEntry) Key() int64 { return m.ID }

type MoodEntryRequest struct {
	Date  string   `json:"date"`
	Mood  MoodType `json:"mood"`
	Notes string   `json:"notes,omitempty"`
}

type MoodSummary struct {
	AverageMood  float64          `json:"averageMood"`
	MoodCounts   map[MoodType]int `json:"moodCounts"`
	TotalEntries int              `json:"totalEntries"`
	StartDate    string           `json:"startDate"`
	EndDate      string           `json:"endDate"`
}
