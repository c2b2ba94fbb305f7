package dto

import (
	"encoding/json"
	"reflect"
	"strings"
)

// Submission is the request body shared by every question endpoint. Only the shape of Answers differs.
// The "senario" spelling is part of the wire format.
type Submission[T any] struct {
	Name    string `json:"name" binding:"notblank" example:"Takanori Ugai"`
	Senario string `json:"senario" binding:"notblank" example:"Senario1"`
	Answers T      `json:"answers" binding:"notblank"`
}

// AnswerCount reports how many answers the submission carries.
func (s Submission[T]) AnswerCount() int {
	v := reflect.ValueOf(s.Answers)
	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return v.Len()
	default:
		return 0
	}
}

// NamedCount is a name/number pair (Q1, Q2).
type NamedCount struct {
	Name   string `json:"name" example:"Kitchen"`
	Number int    `json:"number" example:"2"`
}

// RoomObservation is a timestamped room/object record (Q5).
type RoomObservation struct {
	Time   string     `json:"time" example:"2022-01-01T00:00:20.005"`
	Room   string     `json:"room" example:"LivingRoom"`
	Obj    StringList `json:"obj" swaggertype:"array,string" example:"Cup"`
	Name   string     `json:"name,omitempty"`
	Change string     `json:"change,omitempty"`
	Number *int       `json:"number,omitempty"`
}

// Relation is an object/object/relation triple (Q7).
type Relation struct {
	Obj1     string `json:"obj1" example:"Table"`
	Obj2     string `json:"obj2" example:"Cup"`
	Relation string `json:"relation" example:"ON"`
}

// ObjectChange lists the state changes of one object (Q8).
type ObjectChange struct {
	Name   string        `json:"name" example:"Table"`
	Change []StateChange `json:"change"`
}

// StateChange is a place/status record inside an ObjectChange.
type StateChange struct {
	Place  []float64 `json:"place" example:"1.1,2.5,3.2"`
	Status []string  `json:"status" example:"ON,CLEAN"`
}

// StringList decodes either a JSON array of strings or a single string.
// A blank single string decodes to an empty list.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if strings.TrimSpace(single) == "" {
			*l = StringList{}
			return nil
		}
		*l = StringList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = many
	return nil
}

type (
	Q1Answer = Submission[[]NamedCount]
	Q2Answer = Submission[[]NamedCount]
	Q3Answer = Submission[[]string]
	Q4Answer = Submission[[]string]
	Q5Answer = Submission[[]RoomObservation]
	Q6Answer = Submission[StringList]
	Q7Answer = Submission[[]Relation]
	Q8Answer = Submission[[]ObjectChange]
)
