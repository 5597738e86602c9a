package workouts

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/2beens/fitdash/internal/fitness"
)

var ErrInvalidWorkout = errors.New("invalid workout")

// FormNumber accepts both JSON numbers and numeric strings, as sent by HTML forms.
type FormNumber string

func (n *FormNumber) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = FormNumber(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("not a number: %s", b)
	}
	*n = FormNumber(num.String())
	return nil
}

// Form is a workout submission before validation.
// ID is optional; clients set it to make resubmissions of the same workout idempotent.
type Form struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	DurationMinutes FormNumber `json:"duration_minutes"`
	CaloriesBurned  FormNumber `json:"calories_burned"`
	Difficulty      string     `json:"difficulty"`
	Notes           string     `json:"notes"`
	BodyParts       []string   `json:"body_parts"`
}

type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid workout: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidWorkout
}

func parsePositive(n FormNumber) (int, string) {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return 0, "required"
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, "must be a whole number"
	}
	if v < 1 {
		return 0, "must be at least 1"
	}
	return v, ""
}

// Workout validates the form and builds the record to insert.
func (f Form) Workout(userID uuid.UUID, completedAt time.Time) (fitness.Workout, error) {
	fields := make(map[string]string)

	name := strings.TrimSpace(f.Name)
	if name == "" {
		fields["name"] = "required"
	}

	duration, msg := parsePositive(f.DurationMinutes)
	if msg != "" {
		fields["duration_minutes"] = msg
	}
	calories, msg := parsePositive(f.CaloriesBurned)
	if msg != "" {
		fields["calories_burned"] = msg
	}

	difficulty, err := fitness.ParseDifficulty(f.Difficulty)
	if err != nil {
		fields["difficulty"] = "must be one of Beginner, Intermediate, Advanced"
	}

	var bodyParts []fitness.BodyPart
	for _, raw := range f.BodyParts {
		part, err := fitness.ParseBodyPart(raw)
		if err != nil {
			fields["body_parts"] = fmt.Sprintf("unknown body part %q", raw)
			break
		}
		if !slices.Contains(bodyParts, part) {
			bodyParts = append(bodyParts, part)
		}
	}
	if len(f.BodyParts) == 0 {
		fields["body_parts"] = "select at least one body part"
	}

	if userID == uuid.Nil {
		fields["user_id"] = "required"
	}

	id := uuid.New()
	if raw := strings.TrimSpace(f.ID); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil || parsed == uuid.Nil {
			fields["id"] = "must be a UUID"
		} else {
			id = parsed
		}
	}

	if len(fields) > 0 {
		return fitness.Workout{}, &ValidationError{Fields: fields}
	}

	var notes *string
	if n := strings.TrimSpace(f.Notes); n != "" {
		notes = &n
	}

	return fitness.Workout{
		ID:              id,
		UserID:          userID,
		Name:            name,
		DurationMinutes: duration,
		CaloriesBurned:  calories,
		Difficulty:      difficulty,
		Notes:           notes,
		BodyParts:       bodyParts,
		CompletedAt:     completedAt,
	}, nil
}

// ParseForm reads a workout form from a JSON or urlencoded request body.
func ParseForm(r *http.Request) (Form, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return Form{}, fmt.Errorf("invalid content type: %w", err)
	}

	switch mediaType {
	case "application/json":
		var f Form
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
			return Form{}, fmt.Errorf("decode workout json: %w", err)
		}
		return f, nil
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return Form{}, fmt.Errorf("parse form: %w", err)
		}
		return Form{
			ID:              r.PostForm.Get("id"),
			Name:            r.PostForm.Get("name"),
			DurationMinutes: FormNumber(r.PostForm.Get("duration_minutes")),
			CaloriesBurned:  FormNumber(r.PostForm.Get("calories_burned")),
			Difficulty:      r.PostForm.Get("difficulty"),
			Notes:           r.PostForm.Get("notes"),
			BodyParts:       r.PostForm["body_parts"],
		}, nil
	default:
		return Form{}, fmt.Errorf("unsupported content type: %s", mediaType)
	}
}
