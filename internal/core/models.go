package core

import "time"

type UserRecord struct {
	ID       string
	Username string
}

// ExerciseMessage is a validated request to log one exercise. A nil Date
// means the exercise happened today.
type ExerciseMessage struct {
	Description string
	Duration    float64
	Date        *time.Time
}

// ExerciseRecord carries the owning user's id, not the exercise's own id.
type ExerciseRecord struct {
	UserID      string
	Username    string
	Description string
	Duration    float64
	Date        time.Time
}

// LogQuery bounds are inclusive calendar dates. Limit 0 is unbounded.
type LogQuery struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

type LogEntry struct {
	Description string
	Duration    float64
	Date        time.Time
}

type ExerciseLog struct {
	UserID   string
	Username string
	Count    int
	Log      []LogEntry
}
